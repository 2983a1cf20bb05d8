package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/model"
	"medroster/backend/internal/repository"
)

// TotalsService computes workload aggregates over a roster's assignments.
type TotalsService interface {
	// Totals returns per-person and per-shift-type aggregates, plus per-day
	// and per-person-per-day breakdowns when the flags request them.
	Totals(ctx context.Context, rosterID uint, includeDaily, includePersonDaily bool) (*dto.RosterTotalsResponse, error)
}

type totalsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTotalsService creates a TotalsService.
func NewTotalsService(repo *repository.Repository, logger *zap.Logger) TotalsService {
	return &totalsService{repo: repo, logger: logger}
}

func (s *totalsService) Totals(ctx context.Context, rosterID uint, includeDaily, includePersonDaily bool) (*dto.RosterTotalsResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, err
	}

	flat, err := s.repo.Assignment.ListFlatByRoster(ctx, rosterID, nil)
	if err != nil {
		s.logger.Error("load assignments failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, err
	}

	totals := dto.Totals{
		PerPerson:    computePerPerson(flat),
		PerShiftType: computePerShiftType(flat),
	}
	if includeDaily {
		totals.PerDay = computePerDay(flat)
	}
	if includePersonDaily {
		totals.PerPersonDay = computePerPersonDay(flat)
	}

	return &dto.RosterTotalsResponse{
		Roster: toRosterResponse(roster),
		Totals: totals,
	}, nil
}

// ── aggregate computations ──

func computePerPerson(flat []repository.FlatAssignment) map[uint]dto.PersonTotals {
	out := make(map[uint]dto.PersonTotals)
	for _, a := range flat {
		t := out[a.PersonID]
		t.ShiftsCount++
		t.LoadSum += a.Weight
		out[a.PersonID] = t
	}
	return out
}

func computePerShiftType(flat []repository.FlatAssignment) map[uint]dto.ShiftTypeTotals {
	out := make(map[uint]dto.ShiftTypeTotals)
	for _, a := range flat {
		t := out[a.ShiftTypeID]
		t.ShiftsCount++
		out[a.ShiftTypeID] = t
	}
	return out
}

func computePerDay(flat []repository.FlatAssignment) map[string]dto.DayTotals {
	out := make(map[string]dto.DayTotals)
	for _, a := range flat {
		day := a.Date.Format(model.DateLayout)
		t := out[day]
		t.ShiftsCount++
		out[day] = t
	}
	return out
}

func computePerPersonDay(flat []repository.FlatAssignment) map[uint]map[string]dto.PersonDayTotals {
	out := make(map[uint]map[string]dto.PersonDayTotals)
	for _, a := range flat {
		day := a.Date.Format(model.DateLayout)
		if out[a.PersonID] == nil {
			out[a.PersonID] = make(map[string]dto.PersonDayTotals)
		}
		t := out[a.PersonID][day]
		t.ShiftsCount++
		t.LoadSum += a.Weight
		out[a.PersonID][day] = t
	}
	return out
}
