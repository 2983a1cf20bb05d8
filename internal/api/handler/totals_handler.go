package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"medroster/backend/internal/service"
	"medroster/backend/pkg/response"
)

// TotalsHandler serves the workload totals endpoint.
type TotalsHandler struct {
	totalsSvc service.TotalsService
}

// NewTotalsHandler creates a TotalsHandler.
func NewTotalsHandler(totalsSvc service.TotalsService) *TotalsHandler {
	return &TotalsHandler{totalsSvc: totalsSvc}
}

// GetTotals returns per-person, per-shift-type and optional per-day
// aggregates for a roster.
// GET /api/v1/rosters/:id/totals?daily=true&person_daily=false
func (h *TotalsHandler) GetTotals(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	includeDaily := queryBool(c, "daily", true)
	includePersonDaily := queryBool(c, "person_daily", false)

	totals, err := h.totalsSvc.Totals(c.Request.Context(), id, includeDaily, includePersonDaily)
	if err != nil {
		if errors.Is(err, service.ErrRosterNotFound) {
			response.NotFound(c, 11001, "roster not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, totals)
}

// queryBool reads a boolean query flag with a default.
func queryBool(c *gin.Context, name string, def bool) bool {
	raw, exists := c.GetQuery(name)
	if !exists {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
