package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/repository"
)

// ConstraintService manages per-roster rule configurations.
// Values are stored as raw JSON; the validator decodes and defaults them at
// evaluation time, so an unknown key or loose shape is accepted here.
type ConstraintService interface {
	ListByRoster(ctx context.Context, rosterID uint) ([]dto.ConstraintResponse, error)
	Put(ctx context.Context, rosterID uint, req *dto.PutConstraintRequest) error
}

type constraintService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewConstraintService creates a ConstraintService.
func NewConstraintService(repo *repository.Repository, logger *zap.Logger) ConstraintService {
	return &constraintService{repo: repo, logger: logger}
}

func (s *constraintService) ListByRoster(ctx context.Context, rosterID uint) ([]dto.ConstraintResponse, error) {
	if _, err := s.repo.Roster.GetByID(ctx, rosterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("id", rosterID), zap.Error(err))
		return nil, err
	}

	constraints, err := s.repo.Constraint.ListByRoster(ctx, rosterID)
	if err != nil {
		s.logger.Error("list constraints failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ConstraintResponse, 0, len(constraints))
	for _, c := range constraints {
		result = append(result, dto.ConstraintResponse{
			ID:       c.ID,
			RosterID: c.RosterID,
			Key:      c.Key,
			Value:    c.Value,
		})
	}
	return result, nil
}

func (s *constraintService) Put(ctx context.Context, rosterID uint, req *dto.PutConstraintRequest) error {
	if _, err := s.repo.Roster.GetByID(ctx, rosterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("id", rosterID), zap.Error(err))
		return err
	}

	if !json.Valid(req.Value) {
		return ErrInvalidConstraintValue
	}

	if err := s.repo.Constraint.Upsert(ctx, rosterID, req.Key, req.Value); err != nil {
		s.logger.Error("upsert constraint failed",
			zap.Uint("roster_id", rosterID), zap.String("key", req.Key), zap.Error(err))
		return err
	}
	return nil
}

// ErrInvalidConstraintValue rejects configs that are not valid JSON.
var ErrInvalidConstraintValue = errors.New("constraint value must be valid JSON")
