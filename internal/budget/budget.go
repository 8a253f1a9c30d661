// Package budget computes bid legality from a team's remaining budget and
// open roster slots. Pure functions, no dependencies.
package budget

import (
	"fmt"

	"auction-draft/internal/auctionerrors"
)

// MaxBid returns the highest legal bid for a team with the given remaining
// budget and count of unfilled roster slots (including the slot this win
// would occupy). It reserves $1 per slot still open after the purchase.
func MaxBid(remainingBudget, openSlots int) int {
	if openSlots < 1 {
		return 0
	}
	return remainingBudget - (openSlots - 1)
}

// MinBid returns the lowest legal bid against the given current high bid.
// With no standing bid the minimum is the $1 nomination opener.
func MinBid(currentHighBid int) int {
	if currentHighBid < 1 {
		return 1
	}
	return currentHighBid + 1
}

// Check validates a bid amount against the current high bid and the bidder's
// budget position. openSlots must count the slot the win would occupy; a
// bidder with no open slot can never bid.
func Check(amount, currentHighBid, remainingBudget, openSlots int) error {
	if openSlots < 1 {
		return auctionerrors.ErrNoOpenSlot
	}
	if amount < MinBid(currentHighBid) {
		return fmt.Errorf("bid %d below minimum %d: %w", amount, MinBid(currentHighBid), auctionerrors.ErrBidTooLow)
	}
	if max := MaxBid(remainingBudget, openSlots); amount > max {
		return fmt.Errorf("bid %d above maximum %d: %w", amount, max, auctionerrors.ErrBudgetExceeded)
	}
	return nil
}

// CanAfford reports whether a team could still place any legal opening bid,
// the eligibility test used when advancing the nomination turn.
func CanAfford(remainingBudget, openSlots int) bool {
	return openSlots >= 1 && MaxBid(remainingBudget, openSlots) >= 1
}
