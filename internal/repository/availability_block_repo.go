package repository

import (
	"context"

	"gorm.io/gorm"

	"medroster/backend/internal/model"
)

// AvailabilityBlockRepository is the availability data access interface.
type AvailabilityBlockRepository interface {
	ListByPerson(ctx context.Context, personID uint) ([]model.AvailabilityBlock, error)
	// ListByPersonIDs returns the blocks of every listed person, for the
	// validator's availability lookup.
	ListByPersonIDs(ctx context.Context, personIDs []uint) ([]model.AvailabilityBlock, error)
	GetByID(ctx context.Context, id uint) (*model.AvailabilityBlock, error)
	Create(ctx context.Context, block *model.AvailabilityBlock) error
	Delete(ctx context.Context, id uint) error
}

type availabilityBlockRepo struct {
	db *gorm.DB
}

// NewAvailabilityBlockRepo creates an AvailabilityBlockRepository.
func NewAvailabilityBlockRepo(db *gorm.DB) AvailabilityBlockRepository {
	return &availabilityBlockRepo{db: db}
}

func (r *availabilityBlockRepo) ListByPerson(ctx context.Context, personID uint) ([]model.AvailabilityBlock, error) {
	var blocks []model.AvailabilityBlock
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("date_from ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *availabilityBlockRepo) ListByPersonIDs(ctx context.Context, personIDs []uint) ([]model.AvailabilityBlock, error) {
	if len(personIDs) == 0 {
		return nil, nil
	}
	var blocks []model.AvailabilityBlock
	err := r.db.WithContext(ctx).
		Where("person_id IN ?", personIDs).
		Find(&blocks).Error
	return blocks, err
}

func (r *availabilityBlockRepo) GetByID(ctx context.Context, id uint) (*model.AvailabilityBlock, error) {
	var block model.AvailabilityBlock
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&block).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *availabilityBlockRepo) Create(ctx context.Context, block *model.AvailabilityBlock) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *availabilityBlockRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AvailabilityBlock{}, id).Error
}
