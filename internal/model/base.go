package model

import "time"

// Timestamps holds the audit columns every table carries.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// DateLayout is the wire format for all roster dates.
const DateLayout = "2006-01-02"
