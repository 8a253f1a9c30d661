// Package nomination advances the nomination turn ring. It consumes a fixed
// ordering supplied at setup time; how that order was produced (manual,
// alphabetical, random) is the caller's business.
package nomination

import (
	"sort"

	"auction-draft/internal/budget"
	model "auction-draft/internal/models"
	"auction-draft/internal/roster"
)

// TeamView is the snapshot of one team the scheduler needs for eligibility.
type TeamView struct {
	RemainingBudget int
	Slots           []roster.SlotState
}

// Result is the outcome of one turn advancement.
type Result struct {
	NextParticipantID string
	Entries           []model.NominationEntry // ring with recomputed skip and round flags
	Wrapped           bool                    // scan passed the end of the ring, starting a new round
	Found             bool                    // false means no entry is eligible and the auction should complete
}

// Eligible reports whether a team can still nominate: it must have an open
// slot that some remaining catalog category could fill, and enough budget for
// at least a $1 opening bid with a dollar reserved per other open slot.
func Eligible(view TeamView, openCategories []string) bool {
	if !budget.CanAfford(view.RemainingBudget, roster.OpenCount(view.Slots)) {
		return false
	}
	for _, c := range openCategories {
		if roster.HasEligibleSlot(c, view.Slots) {
			return true
		}
	}
	return false
}

// Next finds the next eligible nominator after afterParticipantID, walking
// the ring at most once. Entries failing the eligibility test are marked
// skipped but stay in the ring; the skip is recomputed on every pass, never
// cached. An empty afterParticipantID starts from the top of the order.
func Next(entries []model.NominationEntry, views map[string]TeamView, openCategories []string, afterParticipantID string) Result {
	ring := append([]model.NominationEntry(nil), entries...)
	sort.Slice(ring, func(i, j int) bool {
		return ring[i].OrderPosition < ring[j].OrderPosition
	})

	res := Result{Entries: ring}
	if len(ring) == 0 {
		return res
	}

	start := -1
	for i, e := range ring {
		if afterParticipantID != "" && e.ParticipantID == afterParticipantID {
			start = i
			break
		}
	}

	for step := 1; step <= len(ring); step++ {
		idx := (start + step) % len(ring)
		if idx < 0 {
			idx += len(ring)
		}
		if !res.Wrapped && idx <= start {
			res.Wrapped = true
			for i := range ring {
				ring[i].HasNominatedThisRound = false
			}
		}

		view, ok := views[ring[idx].ParticipantID]
		if !ok || !Eligible(view, openCategories) {
			ring[idx].IsSkipped = true
			continue
		}

		ring[idx].IsSkipped = false
		res.NextParticipantID = ring[idx].ParticipantID
		res.Found = true
		return res
	}

	return res
}
