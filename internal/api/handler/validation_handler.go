package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medroster/backend/internal/service"
	"medroster/backend/pkg/response"
)

// ValidationHandler serves the constraint validation endpoint.
type ValidationHandler struct {
	validationSvc service.ValidationService
}

// NewValidationHandler creates a ValidationHandler.
func NewValidationHandler(validationSvc service.ValidationService) *ValidationHandler {
	return &ValidationHandler{validationSvc: validationSvc}
}

// ValidateRoster runs the constraint rules and returns violations and stats.
// POST /api/v1/rosters/:id/validate
func (h *ValidationHandler) ValidateRoster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.validationSvc.ValidateRoster(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRosterNotFound) {
			response.NotFound(c, 11001, "roster not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
