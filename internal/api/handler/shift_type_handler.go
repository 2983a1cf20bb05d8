package handler

import (
	"github.com/gin-gonic/gin"

	"medroster/backend/internal/service"
	"medroster/backend/pkg/response"
)

// ShiftTypeHandler serves the shift type catalog endpoints.
type ShiftTypeHandler struct {
	shiftTypeSvc service.ShiftTypeService
}

// NewShiftTypeHandler creates a ShiftTypeHandler.
func NewShiftTypeHandler(shiftTypeSvc service.ShiftTypeService) *ShiftTypeHandler {
	return &ShiftTypeHandler{shiftTypeSvc: shiftTypeSvc}
}

// ListShiftTypes lists the global shift type catalog.
// GET /api/v1/shift-types
func (h *ShiftTypeHandler) ListShiftTypes(c *gin.Context) {
	types, err := h.shiftTypeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": types})
}
