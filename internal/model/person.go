package model

// Person is a staff member (table people).
// Code is the short label shown in roster grid cells.
type Person struct {
	ID     uint   `gorm:"primaryKey"                             json:"id"`
	Code   string `gorm:"type:varchar(16);not null;uniqueIndex"  json:"code"`
	Name   string `gorm:"type:varchar(128);not null"             json:"name"`
	Active bool   `gorm:"not null;default:true"                  json:"active"`
	Timestamps
}

func (Person) TableName() string { return "people" }
