package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/service"
	"library-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new book handler.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateBook handles POST /api/v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		if model.IsValidationError(err) {
			response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create book", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", book)
}

// GetBookByID handles GET /api/v1/books/:id
func (h *Handler) GetBookByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.service.GetBookByID(c.Request.Context(), id)
	if err != nil {
		if model.IsNotFoundError(err) {
			response.Error(c, http.StatusNotFound, "Book not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get book", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", book)
}

// ListBooks handles GET /api/v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list books", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", books)
}

// UpdateBook handles PUT /api/v1/books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case model.IsValidationError(err):
			response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		case model.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Book not found", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update book", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", book)
}

// DeleteBook handles DELETE /api/v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		switch {
		case model.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Book not found", err.Error())
		case errors.Is(err, model.ErrBookOnLoan):
			response.Error(c, http.StatusConflict, "Book has copies on loan", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete book", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully", nil)
}

// CheckAvailability handles GET /api/v1/books/:id/availability
func (h *Handler) CheckAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	availability, err := h.service.CheckAvailability(c.Request.Context(), id)
	if err != nil {
		if model.IsNotFoundError(err) {
			response.Error(c, http.StatusNotFound, "Book not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to check availability", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Availability retrieved successfully", availability)
}

// BorrowCopy handles POST /api/v1/books/:id/borrow
func (h *Handler) BorrowCopy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.service.BorrowCopy(c.Request.Context(), id)
	if err != nil {
		switch {
		case model.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Book not found", err.Error())
		case errors.Is(err, model.ErrBookNotAvailable):
			response.Error(c, http.StatusConflict, "Book not available", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to borrow copy", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Copy borrowed successfully", book)
}

// ReturnCopy handles POST /api/v1/books/:id/return
func (h *Handler) ReturnCopy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.service.ReturnCopy(c.Request.Context(), id)
	if err != nil {
		switch {
		case model.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Book not found", err.Error())
		case errors.Is(err, model.ErrAllCopiesIn):
			response.Error(c, http.StatusConflict, "All copies are already available", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to return copy", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Copy returned successfully", book)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid book ID format", err.Error())
		return uuid.Nil, false
	}
	return id, true
}
