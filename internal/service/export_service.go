package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medroster/backend/config"
	"medroster/backend/internal/repository"
	"medroster/backend/pkg/redis"
)

// ── export module business errors ──

var ErrExportGenerateFail = errors.New("failed to generate spreadsheet")

// ExportService produces the roster spreadsheet.
//
// The generated file is cached in Redis per roster; the assignment service
// invalidates the cache on every mutation. A nil Redis client disables
// caching.
type ExportService interface {
	// ExportRoster renders the roster grid as an xlsx file.
	// Returns the file content and the suggested filename.
	ExportRoster(ctx context.Context, rosterID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo     *repository.Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(cfg *config.Config, repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) ExportService {
	return &exportService{
		repo:     repo,
		rdb:      rdb,
		cacheTTL: time.Duration(cfg.Export.CacheTTL) * time.Second,
		logger:   logger,
	}
}

// fixed per-column pixel widths of the exported sheet, first seven columns
var exportColumnPxWidths = []int{36, 41, 65, 204, 167, 121, 90}

func (s *exportService) ExportRoster(ctx context.Context, rosterID uint) (*bytes.Buffer, string, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("roster_%s.xlsx", roster.DisplayName())

	// cache hit path
	if s.rdb != nil {
		if data, err := s.rdb.GetExport(ctx, rosterID); err == nil && data != nil {
			return bytes.NewBuffer(data), filename, nil
		}
	}

	assocs, err := s.repo.Roster.ListEnabledShiftTypes(ctx, rosterID)
	if err != nil {
		s.logger.Error("load enabled shift types failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, "", err
	}
	people, err := s.repo.Person.List(ctx, true)
	if err != nil {
		s.logger.Error("load people failed", zap.Error(err))
		return nil, "", err
	}
	assignments, err := s.repo.Assignment.ListByRoster(ctx, rosterID)
	if err != nil {
		s.logger.Error("load assignments failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, "", err
	}

	columns := make([]GridColumn, 0, len(assocs))
	for _, a := range assocs {
		if a.ShiftType == nil {
			continue
		}
		columns = append(columns, GridColumn{ShiftTypeID: a.ShiftTypeID, Code: a.ShiftType.Code})
	}

	rows := BuildGrid(GridInput{
		Month:       roster.Month,
		ShiftTypes:  columns,
		People:      people,
		Assignments: assignments,
	})

	buf, err := renderSheet(roster.DisplayName(), rows)
	if err != nil {
		s.logger.Error("render spreadsheet failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	if s.rdb != nil {
		if err := s.rdb.SetExport(ctx, rosterID, buf.Bytes(), s.cacheTTL); err != nil {
			s.logger.Warn("cache export failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		}
	}

	return buf, filename, nil
}

// renderSheet writes the grid rows into a styled xlsx sheet.
func renderSheet(sheetTitle string, rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetTitle
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	// header row defines the used column count; at least one column
	colCount := 1
	if len(rows) > 1 && len(rows[1]) > colCount {
		colCount = len(rows[1])
	}
	lastCol, err := excelize.ColumnNumberToName(colCount)
	if err != nil {
		return nil, err
	}
	highestRow := len(rows)

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, err
	}
	if err := f.SetRowHeight(sheet, 1, 22); err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	boldCenter := func(color string) *excelize.Style {
		st := &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    border,
		}
		if color != "" {
			st.Font.Color = color
		}
		return st
	}
	distributed := func(color string) *excelize.Style {
		st := &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "distributed"},
			Border:    border,
		}
		if color != "" {
			st.Font = &excelize.Font{Color: color}
		}
		return st
	}
	boldDistributed := func(color string) *excelize.Style {
		st := boldCenter(color)
		st.Alignment.Horizontal = "distributed"
		return st
	}

	titleStyle, err := f.NewStyle(boldCenter(""))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s2", lastCol), titleStyle); err != nil {
		return nil, err
	}

	// data rows: bold centered day/weekday columns, distributed data cells,
	// weekday text dark green on Saturdays and red on Sundays
	for r := 3; r <= highestRow; r++ {
		weekday := ""
		if len(rows[r-1]) > 1 {
			weekday = rows[r-1][1]
		}
		color := ""
		if strings.Contains(weekday, "Sat") {
			color = "FF006400" // dark green
		} else if strings.Contains(weekday, "Sun") {
			color = "FFFF0000" // red
		}

		dayStyle, err := f.NewStyle(boldCenter(color))
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", r), fmt.Sprintf("A%d", r), dayStyle); err != nil {
			return nil, err
		}
		weekdayStyle, err := f.NewStyle(boldDistributed(color))
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("B%d", r), fmt.Sprintf("B%d", r), weekdayStyle); err != nil {
			return nil, err
		}
		if colCount > 2 {
			cellStyle, err := f.NewStyle(distributed(color))
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", r), fmt.Sprintf("%s%d", lastCol, r), cellStyle); err != nil {
				return nil, err
			}
		}
	}

	for i, px := range exportColumnPxWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, pxToWidth(px)); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// pxToWidth converts a pixel width to the character-width unit Excel uses.
func pxToWidth(px int) float64 {
	w := math.Round((float64(px)-5)/7*100) / 100
	return math.Max(0, w)
}
