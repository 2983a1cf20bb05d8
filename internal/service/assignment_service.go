package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/model"
	"medroster/backend/internal/repository"
	"medroster/backend/pkg/redis"
)

// ── assignment module business errors ──

var (
	ErrInvalidDate         = errors.New("assignment date must be formatted YYYY-MM-DD")
	ErrUnknownPerson       = errors.New("unknown person")
	ErrShiftTypeNotEnabled = errors.New("shift type not enabled for this roster")
)

// AssignmentService handles bulk assignment mutations.
//
// Both operations validate the whole batch up front and apply it in a single
// statement; there is no partial success. Every mutation invalidates the
// roster's cached export.
type AssignmentService interface {
	Upsert(ctx context.Context, rosterID uint, req *dto.UpsertAssignmentsRequest) error
	Delete(ctx context.Context, rosterID uint, req *dto.DeleteAssignmentsRequest) (int64, error)
}

type assignmentService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAssignmentService creates an AssignmentService.
func NewAssignmentService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, rdb: rdb, logger: logger}
}

// ────────────────────── Upsert ──────────────────────

func (s *assignmentService) Upsert(ctx context.Context, rosterID uint, req *dto.UpsertAssignmentsRequest) error {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return err
	}

	rows := make([]model.Assignment, 0, len(req.Assignments))
	personIDs := uniqueIDs(req.Assignments, func(a dto.AssignmentInput) uint { return a.PersonID })
	shiftTypeIDs := uniqueIDs(req.Assignments, func(a dto.AssignmentInput) uint { return a.ShiftTypeID })

	for _, a := range req.Assignments {
		date, err := parseDate(a.Date)
		if err != nil {
			return ErrInvalidDate
		}
		rows = append(rows, model.Assignment{
			RosterID:    roster.ID,
			Date:        date,
			PersonID:    a.PersonID,
			ShiftTypeID: a.ShiftTypeID,
		})
	}

	ok, err := s.repo.Person.ExistByIDs(ctx, personIDs)
	if err != nil {
		s.logger.Error("check people failed", zap.Error(err))
		return err
	}
	if !ok {
		return ErrUnknownPerson
	}
	ok, err = s.repo.ShiftType.ExistByIDs(ctx, shiftTypeIDs)
	if err != nil {
		s.logger.Error("check shift types failed", zap.Error(err))
		return err
	}
	if !ok {
		return ErrUnknownShiftType
	}

	// the whole batch is rejected when any shift type is not enabled
	assocs, err := s.repo.Roster.ListEnabledShiftTypes(ctx, rosterID)
	if err != nil {
		s.logger.Error("load enabled shift types failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return err
	}
	enabled := make(map[uint]bool, len(assocs))
	for _, a := range assocs {
		enabled[a.ShiftTypeID] = true
	}
	for _, id := range shiftTypeIDs {
		if !enabled[id] {
			return ErrShiftTypeNotEnabled
		}
	}

	if err := s.repo.Assignment.BulkUpsert(ctx, rows); err != nil {
		s.logger.Error("upsert assignments failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return err
	}

	s.invalidateExport(ctx, rosterID)
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, rosterID uint, req *dto.DeleteAssignmentsRequest) (int64, error) {
	if _, err := s.repo.Roster.GetByID(ctx, rosterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return 0, err
	}

	keys := make([]repository.AssignmentKey, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		date, err := parseDate(a.Date)
		if err != nil {
			return 0, ErrInvalidDate
		}
		keys = append(keys, repository.AssignmentKey{
			Date:        date,
			PersonID:    a.PersonID,
			ShiftTypeID: a.ShiftTypeID,
		})
	}

	deleted, err := s.repo.Assignment.BulkDelete(ctx, rosterID, keys)
	if err != nil {
		s.logger.Error("delete assignments failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return 0, err
	}

	s.invalidateExport(ctx, rosterID)
	return deleted, nil
}

// ── internal helpers ──

func (s *assignmentService) invalidateExport(ctx context.Context, rosterID uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.InvalidateExport(ctx, rosterID); err != nil {
		s.logger.Warn("invalidate export cache failed", zap.Uint("roster_id", rosterID), zap.Error(err))
	}
}

func uniqueIDs(inputs []dto.AssignmentInput, pick func(dto.AssignmentInput) uint) []uint {
	seen := make(map[uint]bool, len(inputs))
	var ids []uint
	for _, in := range inputs {
		id := pick(in)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
