package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/service"
	"medroster/backend/pkg/response"
)

// AvailabilityHandler serves the per-person unavailability endpoints.
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// ListBlocks lists a person's unavailability intervals.
// GET /api/v1/people/:id/availability
func (h *AvailabilityHandler) ListBlocks(c *gin.Context) {
	personID, ok := pathID(c, "id")
	if !ok {
		return
	}

	blocks, err := h.availabilitySvc.ListByPerson(c.Request.Context(), personID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, gin.H{"list": blocks})
}

// CreateBlock marks a person unavailable over a date interval.
// POST /api/v1/people/:id/availability
func (h *AvailabilityHandler) CreateBlock(c *gin.Context) {
	personID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateAvailabilityBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	block, err := h.availabilitySvc.Create(c.Request.Context(), personID, &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.Created(c, block)
}

// DeleteBlock removes one unavailability interval.
// DELETE /api/v1/people/:id/availability/:blockId
func (h *AvailabilityHandler) DeleteBlock(c *gin.Context) {
	personID, ok := pathID(c, "id")
	if !ok {
		return
	}
	blockID, ok := pathID(c, "blockId")
	if !ok {
		return
	}

	if err := h.availabilitySvc.Delete(c.Request.Context(), personID, blockID); err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true})
}

// handleAvailabilityError maps availability module business errors to HTTP
// responses.
func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		response.NotFound(c, 12001, "person not found")
	case errors.Is(err, service.ErrBlockNotFound):
		response.NotFound(c, 13001, "availability block not found")
	case errors.Is(err, service.ErrBlockWrongPerson):
		response.NotFound(c, 13001, "availability block not found")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13002, "dates must be formatted YYYY-MM-DD")
	case errors.Is(err, service.ErrInvalidDateRange):
		response.BadRequest(c, 13003, "date_to must not precede date_from")
	default:
		response.InternalError(c)
	}
}
