package model

// ShiftType is a duty category (WARD, OPD, CLINIC, NIGHT, ...), table
// shift_types. Global catalog; rosters enable a subset via roster_shift_types.
type ShiftType struct {
	ID       uint    `gorm:"primaryKey"                             json:"id"`
	Code     string  `gorm:"type:varchar(24);not null;uniqueIndex"  json:"code"`
	Name     string  `gorm:"type:varchar(64);not null"              json:"name"`
	Category string  `gorm:"type:varchar(24);not null;default:day"  json:"category"`
	Weight   float64 `gorm:"type:numeric(4,1);not null;default:1.0" json:"weight"`
	Color    *string `gorm:"type:varchar(16)"                       json:"color,omitempty"`
	Timestamps
}

func (ShiftType) TableName() string { return "shift_types" }
