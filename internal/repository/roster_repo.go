package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"medroster/backend/internal/model"
)

// RosterRepository is the roster data access interface.
type RosterRepository interface {
	List(ctx context.Context, month *time.Time) ([]model.Roster, error)
	GetByID(ctx context.Context, id uint) (*model.Roster, error)
	Create(ctx context.Context, roster *model.Roster) error
	// ListEnabledShiftTypes returns the roster's shift type associations in
	// position order, with the shift type catalog row preloaded.
	ListEnabledShiftTypes(ctx context.Context, rosterID uint) ([]model.RosterShiftType, error)
}

type rosterRepo struct {
	db *gorm.DB
}

// NewRosterRepo creates a RosterRepository.
func NewRosterRepo(db *gorm.DB) RosterRepository {
	return &rosterRepo{db: db}
}

func (r *rosterRepo) List(ctx context.Context, month *time.Time) ([]model.Roster, error) {
	q := r.db.WithContext(ctx).Order("month DESC")
	if month != nil {
		q = q.Where("month = ?", month.Format(model.DateLayout))
	}
	var rosters []model.Roster
	err := q.Find(&rosters).Error
	return rosters, err
}

func (r *rosterRepo) GetByID(ctx context.Context, id uint) (*model.Roster, error) {
	var roster model.Roster
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&roster).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

func (r *rosterRepo) Create(ctx context.Context, roster *model.Roster) error {
	return r.db.WithContext(ctx).Create(roster).Error
}

func (r *rosterRepo) ListEnabledShiftTypes(ctx context.Context, rosterID uint) ([]model.RosterShiftType, error) {
	var assocs []model.RosterShiftType
	err := r.db.WithContext(ctx).
		Preload("ShiftType").
		Where("roster_id = ?", rosterID).
		Order("position ASC").
		Find(&assocs).Error
	return assocs, err
}
