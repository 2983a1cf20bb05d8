package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"gorm.io/gorm"

	"medroster/backend/internal/model"
	"medroster/backend/internal/repository"
)

// ── Mock RosterRepository ──

type mockRosterRepo struct {
	rosters map[uint]*model.Roster
	assocs  map[uint][]model.RosterShiftType
	nextID  uint
}

func newMockRosterRepo() *mockRosterRepo {
	return &mockRosterRepo{
		rosters: make(map[uint]*model.Roster),
		assocs:  make(map[uint][]model.RosterShiftType),
		nextID:  1,
	}
}

func (m *mockRosterRepo) List(_ context.Context, month *time.Time) ([]model.Roster, error) {
	var result []model.Roster
	for _, r := range m.rosters {
		if month != nil && !r.Month.Equal(*month) {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month.After(result[j].Month) })
	return result, nil
}

func (m *mockRosterRepo) GetByID(_ context.Context, id uint) (*model.Roster, error) {
	if r, ok := m.rosters[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRosterRepo) Create(_ context.Context, roster *model.Roster) error {
	for _, r := range m.rosters {
		if r.Month.Equal(roster.Month) {
			return gorm.ErrDuplicatedKey
		}
	}
	roster.ID = m.nextID
	m.nextID++
	for i := range roster.ShiftTypes {
		roster.ShiftTypes[i].RosterID = roster.ID
	}
	m.rosters[roster.ID] = roster
	m.assocs[roster.ID] = roster.ShiftTypes
	return nil
}

func (m *mockRosterRepo) ListEnabledShiftTypes(_ context.Context, rosterID uint) ([]model.RosterShiftType, error) {
	assocs := append([]model.RosterShiftType(nil), m.assocs[rosterID]...)
	sort.Slice(assocs, func(i, j int) bool { return assocs[i].Position < assocs[j].Position })
	return assocs, nil
}

// ── Mock PersonRepository ──

type mockPersonRepo struct {
	people map[uint]*model.Person
	nextID uint
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{people: make(map[uint]*model.Person), nextID: 1}
}

func (m *mockPersonRepo) List(_ context.Context, activeOnly bool) ([]model.Person, error) {
	var result []model.Person
	for _, p := range m.people {
		if activeOnly && !p.Active {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (m *mockPersonRepo) GetByID(_ context.Context, id uint) (*model.Person, error) {
	if p, ok := m.people[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) ExistByIDs(_ context.Context, ids []uint) (bool, error) {
	for _, id := range ids {
		if _, ok := m.people[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (m *mockPersonRepo) Create(_ context.Context, person *model.Person) error {
	for _, p := range m.people {
		if p.Code == person.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	person.ID = m.nextID
	m.nextID++
	m.people[person.ID] = person
	return nil
}

func (m *mockPersonRepo) Update(_ context.Context, person *model.Person) error {
	m.people[person.ID] = person
	return nil
}

func (m *mockPersonRepo) add(id uint, code string) {
	m.people[id] = &model.Person{ID: id, Code: code, Name: code, Active: true}
	if id >= m.nextID {
		m.nextID = id + 1
	}
}

// ── Mock ShiftTypeRepository ──

type mockShiftTypeRepo struct {
	types map[uint]*model.ShiftType
}

func newMockShiftTypeRepo() *mockShiftTypeRepo {
	return &mockShiftTypeRepo{types: make(map[uint]*model.ShiftType)}
}

func (m *mockShiftTypeRepo) List(_ context.Context) ([]model.ShiftType, error) {
	var result []model.ShiftType
	for _, st := range m.types {
		result = append(result, *st)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockShiftTypeRepo) GetByID(_ context.Context, id uint) (*model.ShiftType, error) {
	if st, ok := m.types[id]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftTypeRepo) ExistByIDs(_ context.Context, ids []uint) (bool, error) {
	for _, id := range ids {
		if _, ok := m.types[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (m *mockShiftTypeRepo) add(id uint, code string, weight float64) *model.ShiftType {
	st := &model.ShiftType{ID: id, Code: code, Name: code, Category: "day", Weight: weight}
	m.types[id] = st
	return st
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments []model.Assignment
	catalog     *mockShiftTypeRepo
	nextID      uint
}

func newMockAssignmentRepo(catalog *mockShiftTypeRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{catalog: catalog, nextID: 1}
}

func (m *mockAssignmentRepo) ListByRoster(_ context.Context, rosterID uint) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.RosterID == rosterID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListFlatByRoster(_ context.Context, rosterID uint, shiftTypeIDs []uint) ([]repository.FlatAssignment, error) {
	allowed := make(map[uint]bool, len(shiftTypeIDs))
	for _, id := range shiftTypeIDs {
		allowed[id] = true
	}

	var result []repository.FlatAssignment
	for _, a := range m.assignments {
		if a.RosterID != rosterID {
			continue
		}
		if len(shiftTypeIDs) > 0 && !allowed[a.ShiftTypeID] {
			continue
		}
		flat := repository.FlatAssignment{
			Date:        a.Date,
			PersonID:    a.PersonID,
			ShiftTypeID: a.ShiftTypeID,
		}
		if st, ok := m.catalog.types[a.ShiftTypeID]; ok {
			flat.ShiftCode = st.Code
			flat.Weight = st.Weight
		}
		result = append(result, flat)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		if result[i].PersonID != result[j].PersonID {
			return result[i].PersonID < result[j].PersonID
		}
		return result[i].ShiftTypeID < result[j].ShiftTypeID
	})
	return result, nil
}

func (m *mockAssignmentRepo) BulkUpsert(_ context.Context, rows []model.Assignment) error {
	for _, row := range rows {
		replaced := false
		for i, a := range m.assignments {
			if a.RosterID == row.RosterID && a.Date.Equal(row.Date) &&
				a.PersonID == row.PersonID && a.ShiftTypeID == row.ShiftTypeID {
				m.assignments[i] = row
				m.assignments[i].ID = a.ID
				replaced = true
				break
			}
		}
		if !replaced {
			row.ID = m.nextID
			m.nextID++
			m.assignments = append(m.assignments, row)
		}
	}
	return nil
}

func (m *mockAssignmentRepo) BulkDelete(_ context.Context, rosterID uint, keys []repository.AssignmentKey) (int64, error) {
	var kept []model.Assignment
	var deleted int64
	for _, a := range m.assignments {
		matched := false
		if a.RosterID == rosterID {
			for _, k := range keys {
				if a.Date.Equal(k.Date) && a.PersonID == k.PersonID && a.ShiftTypeID == k.ShiftTypeID {
					matched = true
					break
				}
			}
		}
		if matched {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	m.assignments = kept
	return deleted, nil
}

func (m *mockAssignmentRepo) add(rosterID uint, date string, personID, shiftTypeID uint) {
	d, _ := time.Parse(model.DateLayout, date)
	m.assignments = append(m.assignments, model.Assignment{
		ID:          m.nextID,
		RosterID:    rosterID,
		Date:        d,
		PersonID:    personID,
		ShiftTypeID: shiftTypeID,
	})
	m.nextID++
}

// ── Mock AvailabilityBlockRepository ──

type mockAvailabilityRepo struct {
	blocks map[uint]*model.AvailabilityBlock
	nextID uint
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{blocks: make(map[uint]*model.AvailabilityBlock), nextID: 1}
}

func (m *mockAvailabilityRepo) ListByPerson(_ context.Context, personID uint) ([]model.AvailabilityBlock, error) {
	var result []model.AvailabilityBlock
	for _, b := range m.blocks {
		if b.PersonID == personID {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateFrom.Before(result[j].DateFrom) })
	return result, nil
}

func (m *mockAvailabilityRepo) ListByPersonIDs(_ context.Context, personIDs []uint) ([]model.AvailabilityBlock, error) {
	wanted := make(map[uint]bool, len(personIDs))
	for _, id := range personIDs {
		wanted[id] = true
	}
	var result []model.AvailabilityBlock
	for _, b := range m.blocks {
		if wanted[b.PersonID] {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAvailabilityRepo) GetByID(_ context.Context, id uint) (*model.AvailabilityBlock, error) {
	if b, ok := m.blocks[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) Create(_ context.Context, block *model.AvailabilityBlock) error {
	block.ID = m.nextID
	m.nextID++
	m.blocks[block.ID] = block
	return nil
}

func (m *mockAvailabilityRepo) Delete(_ context.Context, id uint) error {
	delete(m.blocks, id)
	return nil
}

func (m *mockAvailabilityRepo) add(personID uint, from, to, reason string) {
	f, _ := time.Parse(model.DateLayout, from)
	t, _ := time.Parse(model.DateLayout, to)
	b := &model.AvailabilityBlock{ID: m.nextID, PersonID: personID, DateFrom: f, DateTo: t}
	if reason != "" {
		b.Reason = &reason
	}
	m.blocks[b.ID] = b
	m.nextID++
}

// ── Mock ConstraintRepository ──

type mockConstraintRepo struct {
	constraints []model.Constraint
	nextID      uint
}

func newMockConstraintRepo() *mockConstraintRepo {
	return &mockConstraintRepo{nextID: 1}
}

func (m *mockConstraintRepo) ListByRoster(_ context.Context, rosterID uint) ([]model.Constraint, error) {
	var result []model.Constraint
	for _, c := range m.constraints {
		if c.RosterID == rosterID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (m *mockConstraintRepo) Upsert(_ context.Context, rosterID uint, key string, value json.RawMessage) error {
	for i, c := range m.constraints {
		if c.RosterID == rosterID && c.Key == key {
			m.constraints[i].Value = value
			return nil
		}
	}
	m.constraints = append(m.constraints, model.Constraint{
		ID:       m.nextID,
		RosterID: rosterID,
		Key:      key,
		Value:    value,
	})
	m.nextID++
	return nil
}

// ── shared fixture ──

// mockRepos bundles one of each mock behind a repository aggregate.
type mockRepos struct {
	roster       *mockRosterRepo
	person       *mockPersonRepo
	shiftType    *mockShiftTypeRepo
	assignment   *mockAssignmentRepo
	availability *mockAvailabilityRepo
	constraint   *mockConstraintRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		roster:       newMockRosterRepo(),
		person:       newMockPersonRepo(),
		shiftType:    newMockShiftTypeRepo(),
		availability: newMockAvailabilityRepo(),
		constraint:   newMockConstraintRepo(),
	}
	m.assignment = newMockAssignmentRepo(m.shiftType)
	repo := &repository.Repository{
		Roster:       m.roster,
		Person:       m.person,
		ShiftType:    m.shiftType,
		Assignment:   m.assignment,
		Availability: m.availability,
		Constraint:   m.constraint,
	}
	return repo, m
}

// addRoster registers a roster with enabled shift types in the given order.
func (m *mockRepos) addRoster(id uint, month string, shiftTypeIDs ...uint) *model.Roster {
	t, _ := time.Parse("2006-01", month)
	r := &model.Roster{ID: id, Month: t}
	m.roster.rosters[id] = r
	for i, stID := range shiftTypeIDs {
		st := m.shiftType.types[stID]
		m.roster.assocs[id] = append(m.roster.assocs[id], model.RosterShiftType{
			RosterID:    id,
			ShiftTypeID: stID,
			Position:    uint(i),
			ShiftType:   st,
		})
	}
	if id >= m.roster.nextID {
		m.roster.nextID = id + 1
	}
	return r
}
