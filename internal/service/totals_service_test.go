package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func setupTotalsTest() (TotalsService, *mockRepos) {
	repo, m := newMockRepos()
	svc := NewTotalsService(repo, zap.NewNop())
	return svc, m
}

func seedTotalsRoster(m *mockRepos) {
	m.shiftType.add(1, "WARD", 1.0)
	m.shiftType.add(2, "NIGHT", 2.0)
	m.addRoster(1, "2026-03", 1, 2)
	m.person.add(1, "HA")
	m.person.add(2, "BU")
}

func TestTotalsService_RosterNotFound(t *testing.T) {
	svc, _ := setupTotalsTest()

	_, err := svc.Totals(context.Background(), 42, false, false)
	if !errors.Is(err, ErrRosterNotFound) {
		t.Errorf("expected ErrRosterNotFound, got: %v", err)
	}
}

func TestTotalsService_EmptyRoster(t *testing.T) {
	svc, m := setupTotalsTest()
	seedTotalsRoster(m)

	result, err := svc.Totals(context.Background(), 1, false, false)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if len(result.Totals.PerPerson) != 0 {
		t.Errorf("expected empty per-person totals, got %v", result.Totals.PerPerson)
	}
	if len(result.Totals.PerShiftType) != 0 {
		t.Errorf("expected empty per-shift-type totals, got %v", result.Totals.PerShiftType)
	}
}

func TestTotalsService_PerPersonAndPerShiftType(t *testing.T) {
	svc, m := setupTotalsTest()
	seedTotalsRoster(m)
	m.assignment.add(1, "2026-03-01", 1, 1)
	m.assignment.add(1, "2026-03-02", 1, 2)
	m.assignment.add(1, "2026-03-03", 1, 2)
	m.assignment.add(1, "2026-03-01", 2, 1)

	result, err := svc.Totals(context.Background(), 1, false, false)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}

	p1 := result.Totals.PerPerson[1]
	if p1.ShiftsCount != 3 {
		t.Errorf("expected person 1 with 3 shifts, got %d", p1.ShiftsCount)
	}
	// one WARD at weight 1.0, two NIGHT at weight 2.0
	if p1.LoadSum != 5.0 {
		t.Errorf("expected person 1 load 5.0, got %v", p1.LoadSum)
	}
	p2 := result.Totals.PerPerson[2]
	if p2.ShiftsCount != 1 || p2.LoadSum != 1.0 {
		t.Errorf("unexpected person 2 totals: %+v", p2)
	}

	if result.Totals.PerShiftType[1].ShiftsCount != 2 {
		t.Errorf("expected 2 WARD shifts, got %d", result.Totals.PerShiftType[1].ShiftsCount)
	}
	if result.Totals.PerShiftType[2].ShiftsCount != 2 {
		t.Errorf("expected 2 NIGHT shifts, got %d", result.Totals.PerShiftType[2].ShiftsCount)
	}

	if result.Totals.PerDay != nil {
		t.Error("per-day totals should be absent unless requested")
	}
	if result.Totals.PerPersonDay != nil {
		t.Error("per-person-day totals should be absent unless requested")
	}
}

func TestTotalsService_DailyBreakdowns(t *testing.T) {
	svc, m := setupTotalsTest()
	seedTotalsRoster(m)
	m.assignment.add(1, "2026-03-01", 1, 1)
	m.assignment.add(1, "2026-03-01", 2, 2)
	m.assignment.add(1, "2026-03-02", 1, 2)

	result, err := svc.Totals(context.Background(), 1, true, true)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}

	if result.Totals.PerDay["2026-03-01"].ShiftsCount != 2 {
		t.Errorf("expected 2 shifts on 2026-03-01, got %d", result.Totals.PerDay["2026-03-01"].ShiftsCount)
	}
	if result.Totals.PerDay["2026-03-02"].ShiftsCount != 1 {
		t.Errorf("expected 1 shift on 2026-03-02, got %d", result.Totals.PerDay["2026-03-02"].ShiftsCount)
	}

	pd := result.Totals.PerPersonDay[1]["2026-03-02"]
	if pd.ShiftsCount != 1 || pd.LoadSum != 2.0 {
		t.Errorf("unexpected person-day totals: %+v", pd)
	}
}
