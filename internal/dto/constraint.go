package dto

import "encoding/json"

// ── constraint configuration DTOs ──

// PutConstraintRequest stores one rule configuration on a roster.
type PutConstraintRequest struct {
	Key   string          `json:"key"   binding:"required,max=64"`
	Value json.RawMessage `json:"value" binding:"required"`
}

// ConstraintResponse is one stored rule configuration.
type ConstraintResponse struct {
	ID       uint            `json:"id"`
	RosterID uint            `json:"roster_id"`
	Key      string          `json:"key"`
	Value    json.RawMessage `json:"value"`
}
