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

// ── staff module business errors ──

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrCodeTaken      = errors.New("person code already in use")
)

// PersonService is the staff business interface.
type PersonService interface {
	List(ctx context.Context, activeOnly bool) ([]dto.PersonResponse, error)
	Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.PersonResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePersonRequest) (*dto.PersonResponse, error)
}

type personService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonService creates a PersonService.
func NewPersonService(repo *repository.Repository, logger *zap.Logger) PersonService {
	return &personService{repo: repo, logger: logger}
}

func (s *personService) List(ctx context.Context, activeOnly bool) ([]dto.PersonResponse, error) {
	people, err := s.repo.Person.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("list people failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PersonResponse, 0, len(people))
	for _, p := range people {
		result = append(result, toPersonResponse(&p))
	}
	return result, nil
}

func (s *personService) Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	person := &model.Person{
		Code:   req.Code,
		Name:   req.Name,
		Active: true,
	}
	if req.Active != nil {
		person.Active = *req.Active
	}

	if err := s.repo.Person.Create(ctx, person); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodeTaken
		}
		s.logger.Error("create person failed", zap.Error(err))
		return nil, err
	}

	resp := toPersonResponse(person)
	return &resp, nil
}

func (s *personService) Update(ctx context.Context, id uint, req *dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	person, err := s.repo.Person.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("load person failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.Active != nil {
		person.Active = *req.Active
	}

	if err := s.repo.Person.Update(ctx, person); err != nil {
		s.logger.Error("update person failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toPersonResponse(person)
	return &resp, nil
}

func toPersonResponse(p *model.Person) dto.PersonResponse {
	return dto.PersonResponse{ID: p.ID, Code: p.Code, Name: p.Name, Active: p.Active}
}
