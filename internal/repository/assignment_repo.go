package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medroster/backend/internal/model"
)

// AssignmentKey identifies one assignment inside a roster.
type AssignmentKey struct {
	Date        time.Time
	PersonID    uint
	ShiftTypeID uint
}

// FlatAssignment is an assignment joined with its shift type code and weight,
// the shape the constraint validator and totals computations work on.
type FlatAssignment struct {
	Date        time.Time `gorm:"column:date"`
	PersonID    uint      `gorm:"column:person_id"`
	ShiftTypeID uint      `gorm:"column:shift_type_id"`
	ShiftCode   string    `gorm:"column:shift_code"`
	Weight      float64   `gorm:"column:weight"`
}

// AssignmentRepository is the assignment data access interface.
type AssignmentRepository interface {
	ListByRoster(ctx context.Context, rosterID uint) ([]model.Assignment, error)
	// ListFlatByRoster returns assignments joined with shift type code and
	// weight, restricted to the given shift type ids when any are supplied.
	ListFlatByRoster(ctx context.Context, rosterID uint, shiftTypeIDs []uint) ([]FlatAssignment, error)
	// BulkUpsert inserts rows, refreshing updated_at on conflict with the
	// (roster, date, person, shift_type) unique key. Single statement, so the
	// batch applies atomically.
	BulkUpsert(ctx context.Context, rows []model.Assignment) error
	// BulkDelete removes exactly the rows matching the given tuples within the
	// roster and returns the number of deleted rows.
	BulkDelete(ctx context.Context, rosterID uint, keys []AssignmentKey) (int64, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates an AssignmentRepository.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) ListByRoster(ctx context.Context, rosterID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Order("date ASC, person_id ASC, shift_type_id ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListFlatByRoster(ctx context.Context, rosterID uint, shiftTypeIDs []uint) ([]FlatAssignment, error) {
	q := r.db.WithContext(ctx).
		Table("assignments").
		Joins("JOIN shift_types ON shift_types.id = assignments.shift_type_id").
		Where("assignments.roster_id = ?", rosterID).
		Select("assignments.date AS date, assignments.person_id AS person_id, " +
			"assignments.shift_type_id AS shift_type_id, shift_types.code AS shift_code, " +
			"shift_types.weight AS weight").
		Order("assignments.date ASC, assignments.person_id ASC, assignments.shift_type_id ASC")
	if len(shiftTypeIDs) > 0 {
		q = q.Where("assignments.shift_type_id IN ?", shiftTypeIDs)
	}
	var rows []FlatAssignment
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *assignmentRepo) BulkUpsert(ctx context.Context, rows []model.Assignment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "roster_id"},
			{Name: "date"},
			{Name: "person_id"},
			{Name: "shift_type_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&rows).Error
}

func (r *assignmentRepo) BulkDelete(ctx context.Context, rosterID uint, keys []AssignmentKey) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	tuples := r.db.Where(
		"date = ? AND person_id = ? AND shift_type_id = ?",
		keys[0].Date.Format(model.DateLayout), keys[0].PersonID, keys[0].ShiftTypeID,
	)
	for _, k := range keys[1:] {
		tuples = tuples.Or(
			"date = ? AND person_id = ? AND shift_type_id = ?",
			k.Date.Format(model.DateLayout), k.PersonID, k.ShiftTypeID,
		)
	}

	res := r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Where(tuples).
		Delete(&model.Assignment{})
	return res.RowsAffected, res.Error
}
