package repository

import "gorm.io/gorm"

// Repository aggregates all data access interfaces.
type Repository struct {
	Roster       RosterRepository
	Person       PersonRepository
	ShiftType    ShiftTypeRepository
	Assignment   AssignmentRepository
	Availability AvailabilityBlockRepository
	Constraint   ConstraintRepository
}

// NewRepository builds the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Roster:       NewRosterRepo(db),
		Person:       NewPersonRepo(db),
		ShiftType:    NewShiftTypeRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Availability: NewAvailabilityBlockRepo(db),
		Constraint:   NewConstraintRepo(db),
	}
}
