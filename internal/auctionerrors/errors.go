package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrPickNotFound    = errors.New("draft pick not found")
	ErrSessionNotFound = errors.New("session not found")
)

// State machine errors
var (
	ErrInvalidTransition = errors.New("invalid auction state transition")
)

// Business logic errors
var (
	ErrInvalidAction       = errors.New("invalid request")
	ErrNotYourTurn         = errors.New("not your nomination turn")
	ErrItemUnavailable     = errors.New("item is not available")
	ErrNominationOpen      = errors.New("an item is already open for bidding")
	ErrNoActiveNominee     = errors.New("no item is open for bidding")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrBudgetExceeded      = errors.New("bid exceeds maximum allowed by remaining budget")
	ErrNoOpenSlot          = errors.New("no open roster slot for this item")
	ErrNoEligibleSlot      = errors.New("no eligible roster slot for this item")
	ErrSlotNotEligible     = errors.New("roster slot does not accept this item")
	ErrSlotFull            = errors.New("roster slot is full")
	ErrConcurrencyConflict = errors.New("auction state changed, re-read and retry")
)
