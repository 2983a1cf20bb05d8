package dto

// ── roster module DTOs ──

// CreateRosterRequest creates a roster with its enabled shift type order.
type CreateRosterRequest struct {
	Month      string                  `json:"month" binding:"required"` // YYYY-MM
	Name       string                  `json:"name"`
	ShiftTypes []RosterShiftTypeConfig `json:"shift_types"`
}

// RosterShiftTypeConfig enables one shift type at a grid column position.
type RosterShiftTypeConfig struct {
	ShiftTypeID    uint  `json:"shift_type_id" binding:"required"`
	Position       uint  `json:"position"`
	RequiredPerDay *uint `json:"required_per_day,omitempty"`
}

// RosterResponse is the roster descriptor used across responses.
type RosterResponse struct {
	ID        uint   `json:"id"`
	Month     string `json:"month"` // YYYY-MM-DD, first of month
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// RosterDetailResponse is the GET /rosters/:id payload: the roster plus the
// reference data and assignments the UI grid needs.
type RosterDetailResponse struct {
	Roster      RosterResponse       `json:"roster"`
	People      []PersonResponse     `json:"people"`
	ShiftTypes  []ShiftTypeResponse  `json:"shiftTypes"`
	Assignments []AssignmentResponse `json:"assignments"`
}
