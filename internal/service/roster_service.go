package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/model"
	"medroster/backend/internal/repository"
)

// ── roster module business errors ──

var (
	ErrRosterNotFound   = errors.New("roster not found")
	ErrInvalidMonth     = errors.New("month must be formatted YYYY-MM")
	ErrMonthTaken       = errors.New("a roster for this month already exists")
	ErrUnknownShiftType = errors.New("unknown shift type")
)

// RosterService is the roster business interface.
type RosterService interface {
	List(ctx context.Context, month string) ([]dto.RosterResponse, error)
	// GetDetail returns the roster together with active people, enabled shift
	// types in column order and all assignments.
	GetDetail(ctx context.Context, id uint) (*dto.RosterDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateRosterRequest) (*dto.RosterResponse, error)
}

type rosterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService creates a RosterService.
func NewRosterService(repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *rosterService) List(ctx context.Context, month string) ([]dto.RosterResponse, error) {
	var filter *time.Time
	if month != "" {
		// YYYY-MM filters on the stored first-of-month date
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, ErrInvalidMonth
		}
		filter = &t
	}

	rosters, err := s.repo.Roster.List(ctx, filter)
	if err != nil {
		s.logger.Error("list rosters failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RosterResponse, 0, len(rosters))
	for i := range rosters {
		r := toRosterResponse(&rosters[i])
		r.CreatedAt = rosters[i].CreatedAt.Format(time.RFC3339)
		r.UpdatedAt = rosters[i].UpdatedAt.Format(time.RFC3339)
		result = append(result, r)
	}
	return result, nil
}

// ────────────────────── GetDetail ──────────────────────

func (s *rosterService) GetDetail(ctx context.Context, id uint) (*dto.RosterDetailResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	people, err := s.repo.Person.List(ctx, true)
	if err != nil {
		s.logger.Error("load people failed", zap.Error(err))
		return nil, err
	}

	assocs, err := s.repo.Roster.ListEnabledShiftTypes(ctx, id)
	if err != nil {
		s.logger.Error("load enabled shift types failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByRoster(ctx, id)
	if err != nil {
		s.logger.Error("load assignments failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := &dto.RosterDetailResponse{
		Roster:      toRosterResponse(roster),
		People:      make([]dto.PersonResponse, 0, len(people)),
		ShiftTypes:  make([]dto.ShiftTypeResponse, 0, len(assocs)),
		Assignments: make([]dto.AssignmentResponse, 0, len(assignments)),
	}
	for _, p := range people {
		resp.People = append(resp.People, dto.PersonResponse{
			ID: p.ID, Code: p.Code, Name: p.Name, Active: p.Active,
		})
	}
	for _, a := range assocs {
		if a.ShiftType == nil {
			continue
		}
		position := a.Position
		resp.ShiftTypes = append(resp.ShiftTypes, dto.ShiftTypeResponse{
			ID:             a.ShiftTypeID,
			Code:           a.ShiftType.Code,
			Name:           a.ShiftType.Name,
			Position:       &position,
			RequiredPerDay: a.RequiredPerDay,
		})
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, dto.AssignmentResponse{
			ID:          a.ID,
			Date:        a.Date.Format(model.DateLayout),
			PersonID:    a.PersonID,
			ShiftTypeID: a.ShiftTypeID,
		})
	}
	return resp, nil
}

// ────────────────────── Create ──────────────────────

func (s *rosterService) Create(ctx context.Context, req *dto.CreateRosterRequest) (*dto.RosterResponse, error) {
	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	if len(req.ShiftTypes) > 0 {
		ids := make([]uint, 0, len(req.ShiftTypes))
		seen := make(map[uint]bool)
		for _, st := range req.ShiftTypes {
			if seen[st.ShiftTypeID] {
				continue
			}
			seen[st.ShiftTypeID] = true
			ids = append(ids, st.ShiftTypeID)
		}
		ok, err := s.repo.ShiftType.ExistByIDs(ctx, ids)
		if err != nil {
			s.logger.Error("check shift types failed", zap.Error(err))
			return nil, err
		}
		if !ok {
			return nil, ErrUnknownShiftType
		}
	}

	roster := &model.Roster{Month: month}
	if req.Name != "" {
		roster.Name = &req.Name
	}
	for _, st := range req.ShiftTypes {
		roster.ShiftTypes = append(roster.ShiftTypes, model.RosterShiftType{
			ShiftTypeID:    st.ShiftTypeID,
			Position:       st.Position,
			RequiredPerDay: st.RequiredPerDay,
		})
	}

	if err := s.repo.Roster.Create(ctx, roster); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMonthTaken
		}
		s.logger.Error("create roster failed", zap.Error(err))
		return nil, err
	}

	resp := toRosterResponse(roster)
	return &resp, nil
}

// ── shared helpers ──

func toRosterResponse(r *model.Roster) dto.RosterResponse {
	resp := dto.RosterResponse{
		ID:    r.ID,
		Month: r.Month.Format(model.DateLayout),
	}
	if r.Name != nil {
		resp.Name = *r.Name
	}
	return resp
}

// parseDate parses a YYYY-MM-DD wire date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
