package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/service"
	"medroster/backend/pkg/response"
)

// RosterHandler serves the roster endpoints, including bulk assignment
// mutations.
type RosterHandler struct {
	rosterSvc     service.RosterService
	assignmentSvc service.AssignmentService
}

// NewRosterHandler creates a RosterHandler.
func NewRosterHandler(rosterSvc service.RosterService, assignmentSvc service.AssignmentService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc, assignmentSvc: assignmentSvc}
}

// ListRosters lists rosters, newest month first.
// GET /api/v1/rosters?month=YYYY-MM
func (h *RosterHandler) ListRosters(c *gin.Context) {
	rosters, err := h.rosterSvc.List(c.Request.Context(), c.Query("month"))
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": rosters})
}

// GetRoster returns a roster with its people, enabled shift types and
// assignments.
// GET /api/v1/rosters/:id
func (h *RosterHandler) GetRoster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.rosterSvc.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, detail)
}

// CreateRoster creates a roster with its enabled shift type order.
// POST /api/v1/rosters
func (h *RosterHandler) CreateRoster(c *gin.Context) {
	var req dto.CreateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	roster, err := h.rosterSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.Created(c, roster)
}

// UpsertAssignments bulk-inserts or refreshes assignments.
// PUT /api/v1/rosters/:id/assignments
func (h *RosterHandler) UpsertAssignments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpsertAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	if err := h.assignmentSvc.Upsert(c.Request.Context(), id, &req); err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true})
}

// DeleteAssignments bulk-deletes assignments by exact tuple match.
// DELETE /api/v1/rosters/:id/assignments
func (h *RosterHandler) DeleteAssignments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DeleteAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	deleted, err := h.assignmentSvc.Delete(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, dto.DeleteAssignmentsResponse{Deleted: deleted})
}

// handleRosterError maps roster module business errors to HTTP responses.
func (h *RosterHandler) handleRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRosterNotFound):
		response.NotFound(c, 11001, "roster not found")
	case errors.Is(err, service.ErrInvalidMonth):
		response.BadRequest(c, 11002, "month must be formatted YYYY-MM")
	case errors.Is(err, service.ErrMonthTaken):
		response.UnprocessableEntity(c, 11003, "a roster for this month already exists")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 11004, "assignment date must be formatted YYYY-MM-DD")
	case errors.Is(err, service.ErrUnknownPerson):
		response.BadRequest(c, 11005, "unknown person")
	case errors.Is(err, service.ErrUnknownShiftType):
		response.BadRequest(c, 11006, "unknown shift type")
	case errors.Is(err, service.ErrShiftTypeNotEnabled):
		response.UnprocessableEntity(c, 11007, "shift type not enabled for this roster")
	default:
		response.InternalError(c)
	}
}
