package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medroster/backend/internal/dto"
	"medroster/backend/internal/model"
	"medroster/backend/internal/repository"
)

// Rule keys, in execution order.
const (
	RuleAvailabilityConflicts = "availability_conflicts"
	RuleMaxTotalShifts        = "max_total_shifts"
	RuleIncompatibleSameDay   = "incompatible_same_day"
)

// ValidationService runs the constraint rules over a roster's assignments.
// Pure read; never mutates data.
type ValidationService interface {
	ValidateRoster(ctx context.Context, rosterID uint) (*dto.ValidateRosterResponse, error)
}

type validationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewValidationService creates a ValidationService.
func NewValidationService(repo *repository.Repository, logger *zap.Logger) ValidationService {
	return &validationService{repo: repo, logger: logger}
}

// ── typed rule configurations ──
//
// Stored constraint values are arbitrary JSON; they are decoded and defaulted
// once here so each rule works on a concrete struct. A malformed config
// degrades to the rule's default behavior, never to an error.

type availabilityConflictsConfig struct {
	Severity string `json:"severity"`
}

type maxTotalShiftsConfig struct {
	Max      int    `json:"max"`
	Severity string `json:"severity"`
}

type incompatibleSameDayConfig struct {
	Pairs    [][]string `json:"pairs"`
	Severity string     `json:"severity"`
}

type ruleConfigs struct {
	availability availabilityConflictsConfig
	maxTotal     maxTotalShiftsConfig
	incompatible incompatibleSameDayConfig
}

func parseRuleConfigs(raw map[string]json.RawMessage) ruleConfigs {
	cfgs := ruleConfigs{
		availability: availabilityConflictsConfig{Severity: "error"},
		maxTotal:     maxTotalShiftsConfig{Severity: "warn"},
		incompatible: incompatibleSameDayConfig{Severity: "error"},
	}

	if v, ok := raw[RuleAvailabilityConflicts]; ok {
		var c availabilityConflictsConfig
		if json.Unmarshal(v, &c) == nil && c.Severity != "" {
			cfgs.availability.Severity = c.Severity
		}
	}
	if v, ok := raw[RuleMaxTotalShifts]; ok {
		var c maxTotalShiftsConfig
		if json.Unmarshal(v, &c) == nil {
			cfgs.maxTotal.Max = c.Max
			if c.Severity != "" {
				cfgs.maxTotal.Severity = c.Severity
			}
		}
	}
	if v, ok := raw[RuleIncompatibleSameDay]; ok {
		var c incompatibleSameDayConfig
		if json.Unmarshal(v, &c) == nil {
			cfgs.incompatible.Pairs = c.Pairs
			if c.Severity != "" {
				cfgs.incompatible.Severity = c.Severity
			}
		}
	}

	return cfgs
}

// ────────────────────── ValidateRoster ──────────────────────

func (s *validationService) ValidateRoster(ctx context.Context, rosterID uint) (*dto.ValidateRosterResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		s.logger.Error("load roster failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, err
	}

	assocs, err := s.repo.Roster.ListEnabledShiftTypes(ctx, rosterID)
	if err != nil {
		s.logger.Error("load enabled shift types failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, err
	}
	enabledIDs := make([]uint, 0, len(assocs))
	enabledCodes := make(map[string]bool, len(assocs))
	for _, a := range assocs {
		enabledIDs = append(enabledIDs, a.ShiftTypeID)
		if a.ShiftType != nil {
			enabledCodes[a.ShiftType.Code] = true
		}
	}

	// only assignments on enabled shift types are evaluated
	flat, err := s.repo.Assignment.ListFlatByRoster(ctx, rosterID, enabledIDs)
	if err != nil {
		s.logger.Error("load assignments failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, err
	}

	constraints, err := s.repo.Constraint.ListByRoster(ctx, rosterID)
	if err != nil {
		s.logger.Error("load constraints failed", zap.Uint("roster_id", rosterID), zap.Error(err))
		return nil, err
	}
	raw := make(map[string]json.RawMessage, len(constraints))
	for _, c := range constraints {
		raw[c.Key] = c.Value
	}
	cfgs := parseRuleConfigs(raw)

	blocksByPerson, err := s.loadAvailability(ctx, flat)
	if err != nil {
		return nil, err
	}

	violations := make([]dto.Violation, 0)
	violations = append(violations, ruleAvailabilityConflicts(flat, blocksByPerson, cfgs.availability)...)
	violations = append(violations, ruleMaxTotalShifts(flat, cfgs.maxTotal)...)
	violations = append(violations, ruleIncompatibleSameDay(flat, enabledCodes, cfgs.incompatible)...)

	return &dto.ValidateRosterResponse{
		Roster:     toRosterResponse(roster),
		Violations: violations,
		Stats:      dto.ValidationStats{AssignmentsCount: len(flat)},
	}, nil
}

// loadAvailability fetches the availability blocks of every person referenced
// by the assignment set, grouped by person.
func (s *validationService) loadAvailability(ctx context.Context, flat []repository.FlatAssignment) (map[uint][]model.AvailabilityBlock, error) {
	seen := make(map[uint]bool)
	var personIDs []uint
	for _, a := range flat {
		if !seen[a.PersonID] {
			seen[a.PersonID] = true
			personIDs = append(personIDs, a.PersonID)
		}
	}
	if len(personIDs) == 0 {
		return nil, nil
	}

	blocks, err := s.repo.Availability.ListByPersonIDs(ctx, personIDs)
	if err != nil {
		s.logger.Error("load availability blocks failed", zap.Error(err))
		return nil, err
	}

	byPerson := make(map[uint][]model.AvailabilityBlock)
	for _, b := range blocks {
		byPerson[b.PersonID] = append(byPerson[b.PersonID], b)
	}
	return byPerson, nil
}

// ────────────────────── rule: availability_conflicts ──────────────────────

// One violation per assignment falling inside any unavailability interval;
// the first matching block wins even when several overlap.
func ruleAvailabilityConflicts(flat []repository.FlatAssignment, blocksByPerson map[uint][]model.AvailabilityBlock, cfg availabilityConflictsConfig) []dto.Violation {
	if len(flat) == 0 || len(blocksByPerson) == 0 {
		return nil
	}

	var out []dto.Violation
	for _, a := range flat {
		blocks, ok := blocksByPerson[a.PersonID]
		if !ok {
			continue
		}
		date := a.Date.Format(model.DateLayout)

		for _, b := range blocks {
			from := b.DateFrom.Format(model.DateLayout)
			to := b.DateTo.Format(model.DateLayout)
			if date >= from && date <= to {
				msg := "Assigned during unavailable period."
				if b.Reason != nil && *b.Reason != "" {
					msg = fmt.Sprintf("Assigned during unavailable period (%s).", *b.Reason)
				}
				out = append(out, dto.Violation{
					Rule:     RuleAvailabilityConflicts,
					Severity: cfg.Severity,
					Message:  msg,
					Cell: &dto.ViolationCell{
						Date:        date,
						PersonID:    a.PersonID,
						ShiftCode:   a.ShiftCode,
						ShiftTypeID: a.ShiftTypeID,
					},
				})
				break // one block match is enough
			}
		}
	}
	return out
}

// ────────────────────── rule: max_total_shifts ──────────────────────

// Counts assignments per person; strictly more than max emits one violation
// targeting the person. Skipped unless the config supplies a positive max.
func ruleMaxTotalShifts(flat []repository.FlatAssignment, cfg maxTotalShiftsConfig) []dto.Violation {
	if cfg.Max <= 0 {
		return nil
	}

	counts := make(map[uint]int)
	var order []uint
	for _, a := range flat {
		if counts[a.PersonID] == 0 {
			order = append(order, a.PersonID)
		}
		counts[a.PersonID]++
	}

	var out []dto.Violation
	for _, pid := range order {
		count := counts[pid]
		if count > cfg.Max {
			out = append(out, dto.Violation{
				Rule:     RuleMaxTotalShifts,
				Severity: cfg.Severity,
				Message:  fmt.Sprintf("Person has %d shifts (max %d).", count, cfg.Max),
				Target:   &dto.ViolationTarget{PersonID: pid},
				Meta:     map[string]interface{}{"count": count, "max": cfg.Max},
			})
		}
	}
	return out
}

// ────────────────────── rule: incompatible_same_day ──────────────────────

// Configured code pairs must not co-occur for one person on one day. Pairs
// are normalized to uppercase, deduplicated as unordered sets, and dropped
// when malformed or when either code is not enabled for the roster.
func ruleIncompatibleSameDay(flat []repository.FlatAssignment, enabledCodes map[string]bool, cfg incompatibleSameDayConfig) []dto.Violation {
	if len(cfg.Pairs) == 0 {
		return nil
	}

	pairSet := make(map[string]bool)
	for _, p := range cfg.Pairs {
		if len(p) != 2 {
			continue
		}
		a := strings.ToUpper(strings.TrimSpace(p[0]))
		b := strings.ToUpper(strings.TrimSpace(p[1]))
		if a == "" || b == "" {
			continue
		}
		if !enabledCodes[a] || !enabledCodes[b] {
			continue
		}
		pairSet[pairKey(a, b)] = true
	}
	if len(pairSet) == 0 {
		return nil
	}

	// group by (person, date), keeping first-appearance order for stable output
	type dayGroup struct {
		personID uint
		date     string
		items    []repository.FlatAssignment
	}
	groupIdx := make(map[string]int)
	var groups []dayGroup
	for _, a := range flat {
		key := fmt.Sprintf("%d|%s", a.PersonID, a.Date.Format(model.DateLayout))
		i, ok := groupIdx[key]
		if !ok {
			i = len(groups)
			groupIdx[key] = i
			groups = append(groups, dayGroup{personID: a.PersonID, date: a.Date.Format(model.DateLayout)})
		}
		groups[i].items = append(groups[i].items, a)
	}

	var out []dto.Violation
	for _, g := range groups {
		if len(g.items) < 2 {
			continue
		}
		for i := 0; i < len(g.items); i++ {
			for j := i + 1; j < len(g.items); j++ {
				a := strings.ToUpper(g.items[i].ShiftCode)
				b := strings.ToUpper(g.items[j].ShiftCode)
				if !pairSet[pairKey(a, b)] {
					continue
				}
				out = append(out, dto.Violation{
					Rule:     RuleIncompatibleSameDay,
					Severity: cfg.Severity,
					Message:  fmt.Sprintf("Incompatible shifts on same day: %s + %s.", a, b),
					Cells: []dto.ViolationCell{
						{
							Date:        g.date,
							PersonID:    g.personID,
							ShiftCode:   g.items[i].ShiftCode,
							ShiftTypeID: g.items[i].ShiftTypeID,
						},
						{
							Date:        g.date,
							PersonID:    g.personID,
							ShiftCode:   g.items[j].ShiftCode,
							ShiftTypeID: g.items[j].ShiftTypeID,
						},
					},
				})
			}
		}
	}
	return out
}

// pairKey builds the canonical unordered key for a code pair.
func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}
