package service

import (
	"go.uber.org/zap"

	"medroster/backend/config"
	"medroster/backend/internal/repository"
	"medroster/backend/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Roster       RosterService
	Assignment   AssignmentService
	Person       PersonService
	ShiftType    ShiftTypeService
	Availability AvailabilityService
	Constraint   ConstraintService
	Validation   ValidationService
	Totals       TotalsService
	Export       ExportService
}

// NewService builds the service aggregate. rdb may be nil; the export cache
// and rate limiter then degrade gracefully.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Roster:       NewRosterService(repo, logger),
		Assignment:   NewAssignmentService(repo, rdb, logger),
		Person:       NewPersonService(repo, logger),
		ShiftType:    NewShiftTypeService(repo, logger),
		Availability: NewAvailabilityService(repo, logger),
		Constraint:   NewConstraintService(repo, logger),
		Validation:   NewValidationService(repo, logger),
		Totals:       NewTotalsService(repo, logger),
		Export:       NewExportService(cfg, repo, rdb, logger),
	}
}
