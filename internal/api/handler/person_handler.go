package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/service"
	"medroster/backend/pkg/response"
)

// PersonHandler serves the staff endpoints.
type PersonHandler struct {
	personSvc service.PersonService
}

// NewPersonHandler creates a PersonHandler.
func NewPersonHandler(personSvc service.PersonService) *PersonHandler {
	return &PersonHandler{personSvc: personSvc}
}

// ListPeople lists staff, optionally only active.
// GET /api/v1/people?active=true
func (h *PersonHandler) ListPeople(c *gin.Context) {
	activeOnly := queryBool(c, "active", false)

	people, err := h.personSvc.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": people})
}

// CreatePerson adds a staff member.
// POST /api/v1/people
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	person, err := h.personSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}

	response.Created(c, person)
}

// UpdatePerson updates a staff member's name or active flag.
// PUT /api/v1/people/:id
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	person, err := h.personSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}

	response.OK(c, person)
}

// handlePersonError maps staff module business errors to HTTP responses.
func (h *PersonHandler) handlePersonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		response.NotFound(c, 12001, "person not found")
	case errors.Is(err, service.ErrCodeTaken):
		response.UnprocessableEntity(c, 12002, "person code already in use")
	default:
		response.InternalError(c)
	}
}
