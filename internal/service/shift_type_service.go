package service

import (
	"context"

	"go.uber.org/zap"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/repository"
)

// ShiftTypeService exposes the global shift type catalog.
type ShiftTypeService interface {
	List(ctx context.Context) ([]dto.ShiftTypeResponse, error)
}

type shiftTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftTypeService creates a ShiftTypeService.
func NewShiftTypeService(repo *repository.Repository, logger *zap.Logger) ShiftTypeService {
	return &shiftTypeService{repo: repo, logger: logger}
}

func (s *shiftTypeService) List(ctx context.Context) ([]dto.ShiftTypeResponse, error) {
	types, err := s.repo.ShiftType.List(ctx)
	if err != nil {
		s.logger.Error("list shift types failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftTypeResponse, 0, len(types))
	for _, st := range types {
		resp := dto.ShiftTypeResponse{
			ID:       st.ID,
			Code:     st.Code,
			Name:     st.Name,
			Category: st.Category,
			Weight:   st.Weight,
		}
		if st.Color != nil {
			resp.Color = *st.Color
		}
		result = append(result, resp)
	}
	return result, nil
}
