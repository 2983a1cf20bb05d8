package dto

// ShiftTypeResponse is one shift type from the catalog. Position and
// RequiredPerDay are set when returned in a roster's enabled list.
type ShiftTypeResponse struct {
	ID             uint    `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Category       string  `json:"category,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
	Color          string  `json:"color,omitempty"`
	Position       *uint   `json:"position,omitempty"`
	RequiredPerDay *uint   `json:"required_per_day,omitempty"`
}
