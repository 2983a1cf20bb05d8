package repository

import (
	"context"

	"gorm.io/gorm"

	"medroster/backend/internal/model"
)

// ShiftTypeRepository is the shift type catalog access interface.
type ShiftTypeRepository interface {
	List(ctx context.Context) ([]model.ShiftType, error)
	GetByID(ctx context.Context, id uint) (*model.ShiftType, error)
	ExistByIDs(ctx context.Context, ids []uint) (bool, error)
}

type shiftTypeRepo struct {
	db *gorm.DB
}

// NewShiftTypeRepo creates a ShiftTypeRepository.
func NewShiftTypeRepo(db *gorm.DB) ShiftTypeRepository {
	return &shiftTypeRepo{db: db}
}

func (r *shiftTypeRepo) List(ctx context.Context) ([]model.ShiftType, error) {
	var types []model.ShiftType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *shiftTypeRepo) GetByID(ctx context.Context, id uint) (*model.ShiftType, error) {
	var st model.ShiftType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// ExistByIDs reports whether every id in ids exists. Callers pass deduplicated ids.
func (r *shiftTypeRepo) ExistByIDs(ctx context.Context, ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShiftType{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}
