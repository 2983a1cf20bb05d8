package dto

// ── availability module DTOs ──

// CreateAvailabilityBlockRequest marks a person unavailable over a closed
// date interval.
type CreateAvailabilityBlockRequest struct {
	DateFrom string `json:"date_from" binding:"required"`
	DateTo   string `json:"date_to"   binding:"required"`
	Reason   string `json:"reason"    binding:"omitempty,max=255"`
}

// AvailabilityBlockResponse is one unavailability interval.
type AvailabilityBlockResponse struct {
	ID       uint   `json:"id"`
	PersonID uint   `json:"person_id"`
	DateFrom string `json:"date_from"` // YYYY-MM-DD
	DateTo   string `json:"date_to"`   // YYYY-MM-DD
	Reason   string `json:"reason,omitempty"`
}
