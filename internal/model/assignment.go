package model

import "time"

// Assignment records that a person works a shift type on a date within a
// roster (table assignments). Unique per (roster, date, person, shift_type).
type Assignment struct {
	ID          uint      `gorm:"primaryKey"        json:"id"`
	RosterID    uint      `gorm:"not null"          json:"roster_id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	PersonID    uint      `gorm:"not null"          json:"person_id"`
	ShiftTypeID uint      `gorm:"not null"          json:"shift_type_id"`
	Timestamps

	Person    *Person    `gorm:"foreignKey:PersonID;references:ID"    json:"person,omitempty"`
	ShiftType *ShiftType `gorm:"foreignKey:ShiftTypeID;references:ID" json:"shift_type,omitempty"`
}

func (Assignment) TableName() string { return "assignments" }
