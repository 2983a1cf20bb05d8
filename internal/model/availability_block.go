package model

import "time"

// AvailabilityBlock is a closed date interval [DateFrom, DateTo] during which
// a person is unavailable (table availability_blocks). Independent of any
// roster; owned by the person's lifecycle.
type AvailabilityBlock struct {
	ID       uint      `gorm:"primaryKey"         json:"id"`
	PersonID uint      `gorm:"not null"           json:"person_id"`
	DateFrom time.Time `gorm:"type:date;not null" json:"date_from"`
	DateTo   time.Time `gorm:"type:date;not null" json:"date_to"`
	Reason   *string   `gorm:"type:varchar(255)"  json:"reason,omitempty"`
	Timestamps

	Person *Person `gorm:"foreignKey:PersonID;references:ID" json:"person,omitempty"`
}

func (AvailabilityBlock) TableName() string { return "availability_blocks" }
