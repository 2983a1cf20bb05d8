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

// ── availability module business errors ──

var (
	ErrBlockNotFound    = errors.New("availability block not found")
	ErrInvalidDateRange = errors.New("date_to must not precede date_from")
	ErrBlockWrongPerson = errors.New("availability block belongs to another person")
)

// AvailabilityService manages per-person unavailability intervals.
type AvailabilityService interface {
	ListByPerson(ctx context.Context, personID uint) ([]dto.AvailabilityBlockResponse, error)
	Create(ctx context.Context, personID uint, req *dto.CreateAvailabilityBlockRequest) (*dto.AvailabilityBlockResponse, error)
	Delete(ctx context.Context, personID, blockID uint) error
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService.
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func (s *availabilityService) ListByPerson(ctx context.Context, personID uint) ([]dto.AvailabilityBlockResponse, error) {
	if _, err := s.repo.Person.GetByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("load person failed", zap.Uint("id", personID), zap.Error(err))
		return nil, err
	}

	blocks, err := s.repo.Availability.ListByPerson(ctx, personID)
	if err != nil {
		s.logger.Error("list availability blocks failed", zap.Uint("person_id", personID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AvailabilityBlockResponse, 0, len(blocks))
	for i := range blocks {
		result = append(result, toBlockResponse(&blocks[i]))
	}
	return result, nil
}

func (s *availabilityService) Create(ctx context.Context, personID uint, req *dto.CreateAvailabilityBlockRequest) (*dto.AvailabilityBlockResponse, error) {
	if _, err := s.repo.Person.GetByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("load person failed", zap.Uint("id", personID), zap.Error(err))
		return nil, err
	}

	from, err := parseDate(req.DateFrom)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := parseDate(req.DateTo)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	block := &model.AvailabilityBlock{
		PersonID: personID,
		DateFrom: from,
		DateTo:   to,
	}
	if req.Reason != "" {
		block.Reason = &req.Reason
	}

	if err := s.repo.Availability.Create(ctx, block); err != nil {
		s.logger.Error("create availability block failed", zap.Uint("person_id", personID), zap.Error(err))
		return nil, err
	}

	resp := toBlockResponse(block)
	return &resp, nil
}

func (s *availabilityService) Delete(ctx context.Context, personID, blockID uint) error {
	block, err := s.repo.Availability.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("load availability block failed", zap.Uint("id", blockID), zap.Error(err))
		return err
	}
	if block.PersonID != personID {
		return ErrBlockWrongPerson
	}

	if err := s.repo.Availability.Delete(ctx, blockID); err != nil {
		s.logger.Error("delete availability block failed", zap.Uint("id", blockID), zap.Error(err))
		return err
	}
	return nil
}

func toBlockResponse(b *model.AvailabilityBlock) dto.AvailabilityBlockResponse {
	resp := dto.AvailabilityBlockResponse{
		ID:       b.ID,
		PersonID: b.PersonID,
		DateFrom: b.DateFrom.Format(model.DateLayout),
		DateTo:   b.DateTo.Format(model.DateLayout),
	}
	if b.Reason != nil {
		resp.Reason = *b.Reason
	}
	return resp
}
