package model

import "time"

// Roster is one calendar month of scheduling (table rosters).
// Month is stored as the first day of the month and is unique.
type Roster struct {
	ID    uint      `gorm:"primaryKey"                     json:"id"`
	Month time.Time `gorm:"type:date;not null;uniqueIndex" json:"month"`
	Name  *string   `gorm:"type:varchar(128)"              json:"name,omitempty"`
	Timestamps

	// associations
	ShiftTypes  []RosterShiftType `gorm:"foreignKey:RosterID" json:"shift_types,omitempty"`
	Assignments []Assignment      `gorm:"foreignKey:RosterID" json:"assignments,omitempty"`
	Constraints []Constraint      `gorm:"foreignKey:RosterID" json:"constraints,omitempty"`
}

func (Roster) TableName() string { return "rosters" }

// DisplayName returns the roster name, defaulting to "Roster".
func (r *Roster) DisplayName() string {
	if r.Name != nil && *r.Name != "" {
		return *r.Name
	}
	return "Roster"
}

// RosterShiftType is the ordered roster/shift-type association, table
// roster_shift_types. Position drives column order in the exported grid.
type RosterShiftType struct {
	ID             uint  `gorm:"primaryKey"          json:"id"`
	RosterID       uint  `gorm:"not null"            json:"roster_id"`
	ShiftTypeID    uint  `gorm:"not null"            json:"shift_type_id"`
	Position       uint  `gorm:"not null;default:0"  json:"position"`
	RequiredPerDay *uint `json:"required_per_day,omitempty"`
	Timestamps

	ShiftType *ShiftType `gorm:"foreignKey:ShiftTypeID;references:ID" json:"shift_type,omitempty"`
}

func (RosterShiftType) TableName() string { return "roster_shift_types" }
