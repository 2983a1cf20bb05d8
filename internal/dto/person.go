package dto

// ── staff module DTOs ──

// CreatePersonRequest creates a staff member.
type CreatePersonRequest struct {
	Code   string `json:"code" binding:"required,max=16"`
	Name   string `json:"name" binding:"required,max=128"`
	Active *bool  `json:"active"`
}

// UpdatePersonRequest updates name or active flag; the code is immutable identity.
type UpdatePersonRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=128"`
	Active *bool   `json:"active"`
}

// PersonResponse is one staff member.
type PersonResponse struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
