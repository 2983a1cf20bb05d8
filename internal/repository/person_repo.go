package repository

import (
	"context"

	"gorm.io/gorm"

	"medroster/backend/internal/model"
)

// PersonRepository is the staff data access interface.
type PersonRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Person, error)
	GetByID(ctx context.Context, id uint) (*model.Person, error)
	ExistByIDs(ctx context.Context, ids []uint) (bool, error)
	Create(ctx context.Context, person *model.Person) error
	Update(ctx context.Context, person *model.Person) error
}

type personRepo struct {
	db *gorm.DB
}

// NewPersonRepo creates a PersonRepository.
func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) List(ctx context.Context, activeOnly bool) ([]model.Person, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var people []model.Person
	err := q.Find(&people).Error
	return people, err
}

func (r *personRepo) GetByID(ctx context.Context, id uint) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// ExistByIDs reports whether every id in ids exists. Callers pass deduplicated ids.
func (r *personRepo) ExistByIDs(ctx context.Context, ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Person{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}

func (r *personRepo) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepo) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}
