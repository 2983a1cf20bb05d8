package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"medroster/backend/config"
)

// ── test helpers ──

func setupExportTest() (ExportService, *mockRepos) {
	repo, m := newMockRepos()
	cfg := &config.Config{Export: config.ExportConfig{CacheTTL: 300}}
	svc := NewExportService(cfg, repo, nil, zap.NewNop())
	return svc, m
}

// ── ExportRoster ──

func TestExportService_RosterNotFound(t *testing.T) {
	svc, _ := setupExportTest()

	_, _, err := svc.ExportRoster(context.Background(), 42)
	if !errors.Is(err, ErrRosterNotFound) {
		t.Errorf("expected ErrRosterNotFound, got: %v", err)
	}
}

func TestExportService_EmptyRoster(t *testing.T) {
	svc, m := setupExportTest()
	m.shiftType.add(1, "WARD", 1.0)
	m.addRoster(1, "2026-03", 1)

	buf, filename, err := svc.ExportRoster(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExportRoster: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("exported buffer should not be empty")
	}
	if filename != "roster_Roster.xlsx" {
		t.Errorf("unexpected filename: %q", filename)
	}
	// xlsx files start with the PK zip magic
	if buf.Bytes()[0] != 0x50 || buf.Bytes()[1] != 0x4B {
		t.Error("output is not a valid xlsx file")
	}
}

func TestExportService_SheetContent(t *testing.T) {
	svc, m := setupExportTest()
	m.shiftType.add(1, "WARD", 1.0)
	m.shiftType.add(2, "NIGHT", 2.0)
	roster := m.addRoster(1, "2026-02", 1, 2)
	name := "February Duty"
	roster.Name = &name
	m.person.add(1, "HA")
	m.person.add(2, "BU")
	m.assignment.add(1, "2026-02-01", 1, 1)
	m.assignment.add(1, "2026-02-01", 2, 1)
	m.assignment.add(1, "2026-02-03", 1, 2)

	buf, filename, err := svc.ExportRoster(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExportRoster: %v", err)
	}
	if filename != "roster_February Duty.xlsx" {
		t.Errorf("unexpected filename: %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet != "February Duty" {
		t.Errorf("unexpected sheet name: %q", sheet)
	}

	title, _ := f.GetCellValue(sheet, "A1")
	if title != "DUTY ROSTER OF MEDICAL OFFICERS FOR February 2026" {
		t.Errorf("unexpected title: %q", title)
	}
	header, _ := f.GetCellValue(sheet, "C2")
	if header != "WARD" {
		t.Errorf("unexpected header cell: %q", header)
	}

	// row 3 is February 1st
	day, _ := f.GetCellValue(sheet, "A3")
	weekday, _ := f.GetCellValue(sheet, "B3")
	cell, _ := f.GetCellValue(sheet, "C3")
	if day != "1" || weekday != "Sun" {
		t.Errorf("unexpected first day row: %q %q", day, weekday)
	}
	if cell != "BU HA" {
		t.Errorf("unexpected cell content: %q", cell)
	}
	night, _ := f.GetCellValue(sheet, "D5")
	if night != "HA" {
		t.Errorf("unexpected night cell: %q", night)
	}

	// 2 header rows + 28 days
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 30 {
		t.Errorf("expected 30 rows, got %d", len(rows))
	}
}
