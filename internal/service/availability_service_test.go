package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"medroster/backend/internal/dto"
)

func setupAvailabilityTest() (AvailabilityService, *mockRepos) {
	repo, m := newMockRepos()
	svc := NewAvailabilityService(repo, zap.NewNop())
	return svc, m
}

func TestAvailabilityService_Create(t *testing.T) {
	svc, m := setupAvailabilityTest()
	m.person.add(1, "HA")

	req := &dto.CreateAvailabilityBlockRequest{
		DateFrom: "2026-03-05",
		DateTo:   "2026-03-07",
		Reason:   "conference",
	}

	result, err := svc.Create(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.DateFrom != "2026-03-05" || result.DateTo != "2026-03-07" {
		t.Errorf("unexpected interval: %+v", result)
	}
	if result.Reason != "conference" {
		t.Errorf("unexpected reason: %q", result.Reason)
	}
}

func TestAvailabilityService_Create_SingleDay(t *testing.T) {
	svc, m := setupAvailabilityTest()
	m.person.add(1, "HA")

	req := &dto.CreateAvailabilityBlockRequest{DateFrom: "2026-03-05", DateTo: "2026-03-05"}
	if _, err := svc.Create(context.Background(), 1, req); err != nil {
		t.Errorf("single-day interval should be valid: %v", err)
	}
}

func TestAvailabilityService_Create_InvalidRange(t *testing.T) {
	svc, m := setupAvailabilityTest()
	m.person.add(1, "HA")

	req := &dto.CreateAvailabilityBlockRequest{DateFrom: "2026-03-07", DateTo: "2026-03-05"}
	_, err := svc.Create(context.Background(), 1, req)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got: %v", err)
	}
}

func TestAvailabilityService_Create_PersonNotFound(t *testing.T) {
	svc, _ := setupAvailabilityTest()

	req := &dto.CreateAvailabilityBlockRequest{DateFrom: "2026-03-05", DateTo: "2026-03-07"}
	_, err := svc.Create(context.Background(), 42, req)
	if !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("expected ErrPersonNotFound, got: %v", err)
	}
}

func TestAvailabilityService_ListByPerson_Ordered(t *testing.T) {
	svc, m := setupAvailabilityTest()
	m.person.add(1, "HA")
	m.availability.add(1, "2026-03-20", "2026-03-22", "")
	m.availability.add(1, "2026-03-05", "2026-03-07", "")

	result, err := svc.ListByPerson(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByPerson: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(result))
	}
	if result[0].DateFrom != "2026-03-05" {
		t.Errorf("expected blocks ordered by start date, got %+v", result)
	}
}

func TestAvailabilityService_Delete_WrongPerson(t *testing.T) {
	svc, m := setupAvailabilityTest()
	m.person.add(1, "HA")
	m.person.add(2, "BU")
	m.availability.add(1, "2026-03-05", "2026-03-07", "")

	err := svc.Delete(context.Background(), 2, 1)
	if !errors.Is(err, ErrBlockWrongPerson) {
		t.Errorf("expected ErrBlockWrongPerson, got: %v", err)
	}
}

func TestAvailabilityService_Delete(t *testing.T) {
	svc, m := setupAvailabilityTest()
	m.person.add(1, "HA")
	m.availability.add(1, "2026-03-05", "2026-03-07", "")

	if err := svc.Delete(context.Background(), 1, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 1, 1); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound after delete, got: %v", err)
	}
}
