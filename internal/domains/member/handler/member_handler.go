package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/member/model"
	"library-backend/internal/domains/member/service"
	"library-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new member handler.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateMember handles POST /api/v1/members
func (h *Handler) CreateMember(c *gin.Context) {
	var req model.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	member, err := h.service.CreateMember(c.Request.Context(), &req)
	if err != nil {
		if model.IsValidationError(err) {
			response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register member", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Member registered successfully", member)
}

// GetMemberByID handles GET /api/v1/members/:id
func (h *Handler) GetMemberByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	member, err := h.service.GetMemberByID(c.Request.Context(), id)
	if err != nil {
		if model.IsNotFoundError(err) {
			response.Error(c, http.StatusNotFound, "Member not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get member", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Member retrieved successfully", member)
}

// ListMembers handles GET /api/v1/members
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list members", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Members retrieved successfully", members)
}

// UpdateMember handles PUT /api/v1/members/:id
func (h *Handler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	member, err := h.service.UpdateMember(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case model.IsValidationError(err):
			response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		case model.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Member not found", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update member", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Member updated successfully", member)
}

// DeleteMember handles DELETE /api/v1/members/:id
func (h *Handler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMember(c.Request.Context(), id); err != nil {
		switch {
		case model.IsNotFoundError(err):
			response.Error(c, http.StatusNotFound, "Member not found", err.Error())
		case errors.Is(err, model.ErrMemberHasActiveLoans):
			response.Error(c, http.StatusConflict, "Member has active loans", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete member", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Member deleted successfully", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid member ID format", err.Error())
		return uuid.Nil, false
	}
	return id, true
}
