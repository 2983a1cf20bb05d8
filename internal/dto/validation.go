package dto

// ── validation module DTOs ──

// ViolationCell pinpoints one grid cell in a violation.
type ViolationCell struct {
	Date        string `json:"date"` // YYYY-MM-DD
	PersonID    uint   `json:"person_id"`
	ShiftCode   string `json:"shift_code"`
	ShiftTypeID uint   `json:"shift_type_id"`
}

// ViolationTarget points at a person when no single cell is the culprit.
type ViolationTarget struct {
	PersonID uint `json:"person_id"`
}

// Violation is one rule violation. Exactly one of Cell, Cells or Target is
// set, depending on the rule.
type Violation struct {
	Rule     string                 `json:"rule"`
	Severity string                 `json:"severity"` // error | warn
	Message  string                 `json:"message"`
	Cell     *ViolationCell         `json:"cell,omitempty"`
	Cells    []ViolationCell        `json:"cells,omitempty"`
	Target   *ViolationTarget       `json:"target,omitempty"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// ValidationStats summarizes a validation run.
type ValidationStats struct {
	AssignmentsCount int `json:"assignments_count"`
}

// ValidateRosterResponse is the POST /rosters/:id/validate payload.
type ValidateRosterResponse struct {
	Roster     RosterResponse  `json:"roster"`
	Violations []Violation     `json:"violations"`
	Stats      ValidationStats `json:"stats"`
}
