package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/loan/model"
	"library-backend/internal/domains/loan/service"
	"library-backend/internal/shared/response"

	bookmodel "library-backend/internal/domains/book/model"
	membermodel "library-backend/internal/domains/member/model"
)

type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new loan handler.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateLoan handles POST /api/v1/loans
func (h *Handler) CreateLoan(c *gin.Context) {
	var req model.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	loan, err := h.service.CreateLoan(c.Request.Context(), &req)
	if err != nil {
		switch {
		case model.IsValidationError(err):
			response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		case bookmodel.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Book not found", err.Error())
		case membermodel.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Member not found", err.Error())
		case bookmodel.IsConflictError(err):
			response.Error(c, http.StatusConflict, "Book not available", err.Error())
		case model.IsConflictError(err):
			response.Error(c, http.StatusConflict, "Loan conflict", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create loan", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, "Loan created successfully", loan)
}

// GetLoanByID handles GET /api/v1/loans/:id
func (h *Handler) GetLoanByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	loan, err := h.service.GetLoanByID(c.Request.Context(), id)
	if err != nil {
		if model.IsNotFoundError(err) {
			response.Error(c, http.StatusNotFound, "Loan not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get loan", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Loan retrieved successfully", loan)
}

// ListLoans handles GET /api/v1/loans with optional status, book_id and
// member_id query filters.
func (h *Handler) ListLoans(c *gin.Context) {
	var filter model.LoanFilter

	if raw := c.Query("status"); raw != "" {
		status := model.LoanStatus(raw)
		switch status {
		case model.StatusActive, model.StatusReturned, model.StatusOverdue:
			filter.Status = &status
		default:
			response.Error(c, http.StatusBadRequest, "Invalid status filter", "status must be ACTIVE, RETURNED or OVERDUE")
			return
		}
	}

	if raw := c.Query("book_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid book_id filter", err.Error())
			return
		}
		filter.BookID = &id
	}

	if raw := c.Query("member_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid member_id filter", err.Error())
			return
		}
		filter.MemberID = &id
	}

	loans, err := h.service.ListLoans(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list loans", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Loans retrieved successfully", loans)
}

// ReturnLoan handles POST /api/v1/loans/:id/return
func (h *Handler) ReturnLoan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	loan, err := h.service.ReturnLoan(c.Request.Context(), id)
	if err != nil {
		switch {
		case model.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Loan not found", err.Error())
		case model.IsConflictError(err):
			response.Error(c, http.StatusConflict, "Loan is not active", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to return loan", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Loan returned successfully", loan)
}

// SweepOverdue handles POST /api/v1/loans/sweep-overdue. The same sweep
// also runs on a schedule in the worker; this endpoint triggers it on
// demand.
func (h *Handler) SweepOverdue(c *gin.Context) {
	result, err := h.service.SweepOverdue(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to sweep overdue loans", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Overdue sweep completed", result)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid loan ID format", err.Error())
		return uuid.Nil, false
	}
	return id, true
}
