// Package roster computes slot assignments for won items against a team's
// roster slot definitions. Pure functions over slot snapshots.
package roster

import (
	"sort"

	"auction-draft/internal/auctionerrors"
	model "auction-draft/internal/models"
)

// SlotState pairs a slot definition with how many of its openings a team has
// already filled.
type SlotState struct {
	Def    model.RosterSlotDef
	Filled int
}

// BuildSlotStates joins an auction's slot definitions with one team's picks.
func BuildSlotStates(defs []model.RosterSlotDef, picks []model.DraftPick) []SlotState {
	filled := make(map[string]int, len(defs))
	for _, p := range picks {
		filled[p.SlotID]++
	}

	states := make([]SlotState, 0, len(defs))
	for _, def := range defs {
		states = append(states, SlotState{Def: def, Filled: filled[def.SlotID]})
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].Def.DisplayOrder < states[j].Def.DisplayOrder
	})
	return states
}

func (s SlotState) open() bool {
	return s.Filled < s.Def.SlotsPerTeam
}

func (s SlotState) accepts(category string) bool {
	return s.Def.IsFlexible || s.Def.Category == category
}

// OpenCount returns the team's total number of unfilled slot openings.
func OpenCount(slots []SlotState) int {
	n := 0
	for _, s := range slots {
		if d := s.Def.SlotsPerTeam - s.Filled; d > 0 {
			n += d
		}
	}
	return n
}

// HasEligibleSlot reports whether any open slot accepts the given category.
func HasEligibleSlot(category string, slots []SlotState) bool {
	for _, s := range slots {
		if s.open() && s.accepts(category) {
			return true
		}
	}
	return false
}

// Assign picks the default slot for a won item: the open slot whose category
// exactly matches, lowest display order first; flexible slots are only a
// fallback when no exact-category slot remains open.
func Assign(category string, slots []SlotState) (string, error) {
	var flexID string
	for _, s := range slots {
		if !s.open() {
			continue
		}
		if !s.Def.IsFlexible && s.Def.Category == category {
			return s.Def.SlotID, nil
		}
		if s.Def.IsFlexible && flexID == "" {
			flexID = s.Def.SlotID
		}
	}
	if flexID != "" {
		return flexID, nil
	}
	return "", auctionerrors.ErrNoOpenSlot
}

// ValidateOverride checks a manual slot assignment. Any still-open slot the
// item is eligible for is allowed, the same rule the automatic assignment
// obeys. currentSlotID is the pick's present slot, whose opening the move
// frees up.
func ValidateOverride(category, slotID, currentSlotID string, slots []SlotState) error {
	for _, s := range slots {
		if s.Def.SlotID != slotID {
			continue
		}
		if !s.accepts(category) {
			return auctionerrors.ErrSlotNotEligible
		}
		if slotID != currentSlotID && !s.open() {
			return auctionerrors.ErrSlotFull
		}
		return nil
	}
	return auctionerrors.ErrSlotNotEligible
}
