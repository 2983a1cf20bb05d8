package handler

import "medroster/backend/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Roster       *RosterHandler
	Totals       *TotalsHandler
	Validation   *ValidationHandler
	Export       *ExportHandler
	Person       *PersonHandler
	ShiftType    *ShiftTypeHandler
	Availability *AvailabilityHandler
	Constraint   *ConstraintHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Roster:       NewRosterHandler(svc.Roster, svc.Assignment),
		Totals:       NewTotalsHandler(svc.Totals),
		Validation:   NewValidationHandler(svc.Validation),
		Export:       NewExportHandler(svc.Export),
		Person:       NewPersonHandler(svc.Person),
		ShiftType:    NewShiftTypeHandler(svc.ShiftType),
		Availability: NewAvailabilityHandler(svc.Availability),
		Constraint:   NewConstraintHandler(svc.Constraint),
	}
}
