package repository

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medroster/backend/internal/model"
)

// ConstraintRepository is the rule configuration access interface.
type ConstraintRepository interface {
	ListByRoster(ctx context.Context, rosterID uint) ([]model.Constraint, error)
	// Upsert stores one rule config, replacing the value when the
	// (roster, key) pair already exists.
	Upsert(ctx context.Context, rosterID uint, key string, value json.RawMessage) error
}

type constraintRepo struct {
	db *gorm.DB
}

// NewConstraintRepo creates a ConstraintRepository.
func NewConstraintRepo(db *gorm.DB) ConstraintRepository {
	return &constraintRepo{db: db}
}

func (r *constraintRepo) ListByRoster(ctx context.Context, rosterID uint) ([]model.Constraint, error) {
	var constraints []model.Constraint
	err := r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Order("key ASC").
		Find(&constraints).Error
	return constraints, err
}

func (r *constraintRepo) Upsert(ctx context.Context, rosterID uint, key string, value json.RawMessage) error {
	row := model.Constraint{RosterID: rosterID, Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "roster_id"}, {Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      gorm.Expr("EXCLUDED.value"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&row).Error
}
