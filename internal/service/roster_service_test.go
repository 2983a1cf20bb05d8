package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"medroster/backend/internal/dto"
)

func setupRosterTest() (RosterService, *mockRepos) {
	repo, m := newMockRepos()
	svc := NewRosterService(repo, zap.NewNop())
	return svc, m
}

// ── Create ──

func TestRosterService_Create_Success(t *testing.T) {
	svc, m := setupRosterTest()
	m.shiftType.add(1, "WARD", 1.0)
	m.shiftType.add(2, "NIGHT", 2.0)

	req := &dto.CreateRosterRequest{
		Month: "2026-03",
		Name:  "March Roster",
		ShiftTypes: []dto.RosterShiftTypeConfig{
			{ShiftTypeID: 2, Position: 0},
			{ShiftTypeID: 1, Position: 1},
		},
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.Month != "2026-03-01" {
		t.Errorf("expected month 2026-03-01, got %s", result.Month)
	}
	if result.Name != "March Roster" {
		t.Errorf("expected name March Roster, got %s", result.Name)
	}

	assocs, _ := m.roster.ListEnabledShiftTypes(context.Background(), result.ID)
	if len(assocs) != 2 {
		t.Fatalf("expected 2 enabled shift types, got %d", len(assocs))
	}
	if assocs[0].ShiftTypeID != 2 {
		t.Errorf("expected NIGHT at position 0, got shift type %d", assocs[0].ShiftTypeID)
	}
}

func TestRosterService_Create_InvalidMonth(t *testing.T) {
	svc, _ := setupRosterTest()

	_, err := svc.Create(context.Background(), &dto.CreateRosterRequest{Month: "2026-03-15"})
	if !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("expected ErrInvalidMonth, got: %v", err)
	}
}

func TestRosterService_Create_MonthTaken(t *testing.T) {
	svc, m := setupRosterTest()
	m.addRoster(1, "2026-03")

	_, err := svc.Create(context.Background(), &dto.CreateRosterRequest{Month: "2026-03"})
	if !errors.Is(err, ErrMonthTaken) {
		t.Errorf("expected ErrMonthTaken, got: %v", err)
	}
}

func TestRosterService_Create_UnknownShiftType(t *testing.T) {
	svc, m := setupRosterTest()
	m.shiftType.add(1, "WARD", 1.0)

	req := &dto.CreateRosterRequest{
		Month: "2026-03",
		ShiftTypes: []dto.RosterShiftTypeConfig{
			{ShiftTypeID: 1},
			{ShiftTypeID: 99},
		},
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrUnknownShiftType) {
		t.Errorf("expected ErrUnknownShiftType, got: %v", err)
	}
}

// ── List ──

func TestRosterService_List_MonthFilter(t *testing.T) {
	svc, m := setupRosterTest()
	m.addRoster(1, "2026-03")
	m.addRoster(2, "2026-04")

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 rosters, got %d", len(all))
	}

	filtered, err := svc.List(context.Background(), "2026-04")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Month != "2026-04-01" {
		t.Errorf("unexpected filtered result: %+v", filtered)
	}
}

func TestRosterService_List_InvalidMonth(t *testing.T) {
	svc, _ := setupRosterTest()

	_, err := svc.List(context.Background(), "march")
	if !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("expected ErrInvalidMonth, got: %v", err)
	}
}

// ── GetDetail ──

func TestRosterService_GetDetail(t *testing.T) {
	svc, m := setupRosterTest()
	m.shiftType.add(1, "WARD", 1.0)
	m.shiftType.add(2, "NIGHT", 2.0)
	m.addRoster(1, "2026-03", 1, 2)
	m.person.add(1, "HA")
	m.person.add(2, "BU")
	m.person.people[2].Active = false
	m.assignment.add(1, "2026-03-05", 1, 1)

	result, err := svc.GetDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if result.Roster.Month != "2026-03-01" {
		t.Errorf("unexpected roster month: %s", result.Roster.Month)
	}
	// inactive people are excluded
	if len(result.People) != 1 || result.People[0].Code != "HA" {
		t.Errorf("unexpected people: %+v", result.People)
	}
	if len(result.ShiftTypes) != 2 || result.ShiftTypes[0].Code != "WARD" {
		t.Errorf("unexpected shift types: %+v", result.ShiftTypes)
	}
	if len(result.Assignments) != 1 || result.Assignments[0].Date != "2026-03-05" {
		t.Errorf("unexpected assignments: %+v", result.Assignments)
	}
}

func TestRosterService_GetDetail_NotFound(t *testing.T) {
	svc, _ := setupRosterTest()

	_, err := svc.GetDetail(context.Background(), 42)
	if !errors.Is(err, ErrRosterNotFound) {
		t.Errorf("expected ErrRosterNotFound, got: %v", err)
	}
}
