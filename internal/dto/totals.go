package dto

// ── totals module DTOs ──

// PersonTotals is per-person workload over the roster month.
type PersonTotals struct {
	ShiftsCount int     `json:"shifts_count"`
	LoadSum     float64 `json:"load_sum"`
}

// ShiftTypeTotals is per-shift-type usage over the roster month.
type ShiftTypeTotals struct {
	ShiftsCount int `json:"shifts_count"`
}

// DayTotals is per-day coverage.
type DayTotals struct {
	ShiftsCount int `json:"shifts_count"`
}

// PersonDayTotals is one person's load on one day.
type PersonDayTotals struct {
	ShiftsCount int     `json:"shifts_count"`
	LoadSum     float64 `json:"load_sum"`
}

// Totals bundles the aggregate views. PerDay and PerPersonDay are nil when
// the corresponding query flag is off.
type Totals struct {
	PerPerson    map[uint]PersonTotals               `json:"per_person"`
	PerShiftType map[uint]ShiftTypeTotals            `json:"per_shift_type"`
	PerDay       map[string]DayTotals                `json:"per_day"`
	PerPersonDay map[uint]map[string]PersonDayTotals `json:"per_person_day"`
}

// RosterTotalsResponse is the GET /rosters/:id/totals payload.
type RosterTotalsResponse struct {
	Roster RosterResponse `json:"roster"`
	Totals Totals         `json:"totals"`
}
