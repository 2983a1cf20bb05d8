package dto

// ── assignment module DTOs ──

// AssignmentInput is one (date, person, shift type) tuple in a batch request.
type AssignmentInput struct {
	Date        string `json:"date"          binding:"required"`
	PersonID    uint   `json:"person_id"     binding:"required"`
	ShiftTypeID uint   `json:"shift_type_id" binding:"required"`
}

// UpsertAssignmentsRequest is the PUT /rosters/:id/assignments body.
type UpsertAssignmentsRequest struct {
	Assignments []AssignmentInput `json:"assignments" binding:"required,min=1,dive"`
}

// DeleteAssignmentsRequest is the DELETE /rosters/:id/assignments body.
type DeleteAssignmentsRequest struct {
	Assignments []AssignmentInput `json:"assignments" binding:"required,min=1,dive"`
}

// DeleteAssignmentsResponse reports how many rows were removed.
type DeleteAssignmentsResponse struct {
	Deleted int64 `json:"deleted"`
}

// AssignmentResponse is one stored assignment.
type AssignmentResponse struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	PersonID    uint   `json:"person_id"`
	ShiftTypeID uint   `json:"shift_type_id"`
}
