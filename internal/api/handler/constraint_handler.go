package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/service"
	"medroster/backend/pkg/response"
)

// ConstraintHandler serves the per-roster rule configuration endpoints.
type ConstraintHandler struct {
	constraintSvc service.ConstraintService
}

// NewConstraintHandler creates a ConstraintHandler.
func NewConstraintHandler(constraintSvc service.ConstraintService) *ConstraintHandler {
	return &ConstraintHandler{constraintSvc: constraintSvc}
}

// ListConstraints lists a roster's rule configurations.
// GET /api/v1/rosters/:id/constraints
func (h *ConstraintHandler) ListConstraints(c *gin.Context) {
	rosterID, ok := pathID(c, "id")
	if !ok {
		return
	}

	constraints, err := h.constraintSvc.ListByRoster(c.Request.Context(), rosterID)
	if err != nil {
		h.handleConstraintError(c, err)
		return
	}

	response.OK(c, gin.H{"list": constraints})
}

// PutConstraint stores one rule configuration, replacing any existing value
// for the same key.
// PUT /api/v1/rosters/:id/constraints
func (h *ConstraintHandler) PutConstraint(c *gin.Context) {
	rosterID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PutConstraintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	if err := h.constraintSvc.Put(c.Request.Context(), rosterID, &req); err != nil {
		h.handleConstraintError(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true})
}

// handleConstraintError maps constraint module business errors to HTTP
// responses.
func (h *ConstraintHandler) handleConstraintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRosterNotFound):
		response.NotFound(c, 11001, "roster not found")
	case errors.Is(err, service.ErrInvalidConstraintValue):
		response.BadRequest(c, 14001, "constraint value must be valid JSON")
	default:
		response.InternalError(c)
	}
}
