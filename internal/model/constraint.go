package model

import "encoding/json"

// Constraint is a per-roster rule configuration (table constraints).
// Key names the validation rule (availability_conflicts, max_total_shifts,
// incompatible_same_day, ...); Value carries the rule-specific JSON config.
// Unique per (roster, key); a missing key means rule defaults or skip.
type Constraint struct {
	ID       uint            `gorm:"primaryKey"                json:"id"`
	RosterID uint            `gorm:"not null"                  json:"roster_id"`
	Key      string          `gorm:"type:varchar(64);not null" json:"key"`
	Value    json.RawMessage `gorm:"type:jsonb;not null"       json:"value"`
	Timestamps
}

func (Constraint) TableName() string { return "constraints" }
