package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/maruel/natural"

	"medroster/backend/internal/model"
)

// GridColumn is one enabled shift type in roster column order.
type GridColumn struct {
	ShiftTypeID uint
	Code        string
}

// GridInput is everything the grid builder needs: the roster month, the
// enabled shift types in position order, the people catalog and the
// roster's assignments.
type GridInput struct {
	Month       time.Time
	ShiftTypes  []GridColumn
	People      []model.Person
	Assignments []model.Assignment
}

// BuildGrid turns a flat assignment list into the calendar grid: a title
// row, a header row, then one row per day of the month. Each data row is
// [day number, weekday abbreviation, one cell per enabled shift type].
// Cells hold the space-joined person codes assigned to that (day, shift
// type), naturally sorted. Assignments whose person id has no match are
// silently dropped; the stored data should not contain them.
func BuildGrid(in GridInput) [][]string {
	codeByPerson := make(map[uint]string, len(in.People))
	for _, p := range in.People {
		codeByPerson[p.ID] = p.Code
	}

	// (ISO date, shift type id) → person codes
	cellMap := make(map[string][]string)
	for _, a := range in.Assignments {
		code, ok := codeByPerson[a.PersonID]
		if !ok {
			continue
		}
		key := cellKey(a.Date.Format(model.DateLayout), a.ShiftTypeID)
		cellMap[key] = append(cellMap[key], code)
	}
	for _, codes := range cellMap {
		sort.Slice(codes, func(i, j int) bool { return natural.Less(codes[i], codes[j]) })
	}

	monthStart := time.Date(in.Month.Year(), in.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	header := make([]string, 0, 2+len(in.ShiftTypes))
	header = append(header, "", "")
	for _, st := range in.ShiftTypes {
		header = append(header, st.Code)
	}

	rows := [][]string{
		{"DUTY ROSTER OF MEDICAL OFFICERS FOR " + monthStart.Format("January 2006")},
		header,
	}

	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(model.DateLayout)
		row := make([]string, 0, 2+len(in.ShiftTypes))
		row = append(row, strconv.Itoa(d.Day()), d.Format("Mon"))
		for _, st := range in.ShiftTypes {
			row = append(row, strings.Join(cellMap[cellKey(dateStr, st.ShiftTypeID)], " "))
		}
		rows = append(rows, row)
	}

	return rows
}

func cellKey(date string, shiftTypeID uint) string {
	return fmt.Sprintf("%s|%d", date, shiftTypeID)
}
