package models

import "time"

// AuctionStatus is the lifecycle state of an auction draft event.
type AuctionStatus string

const (
	StatusDraft      AuctionStatus = "draft"
	StatusInProgress AuctionStatus = "in_progress"
	StatusPaused     AuctionStatus = "paused"
	StatusComplete   AuctionStatus = "complete"
	StatusArchived   AuctionStatus = "archived"
)

// BidKind classifies an entry in the audit ledger.
type BidKind string

const (
	KindNomination BidKind = "nomination"
	KindBid        BidKind = "bid"
	KindPass       BidKind = "pass"
)

// ActiveNominee is the bidding snapshot for the item currently on the block.
// A nil ActiveNominee on the auction means no item is open for bidding.
type ActiveNominee struct {
	ItemID       string          `json:"item_id"`
	HighBid      int             `json:"high_bid"`
	HighBidderID string          `json:"high_bidder_id"`
	Passed       map[string]bool `json:"passed"` // participant id -> passed since last raise
}

// Auction is the authoritative auction row. Version is the optimistic
// concurrency counter on the bidding snapshot: it increments on every
// committed Nominate/PlaceBid/Pass/Resolve and on nothing else, so a
// Pause/Resume cycle leaves it untouched.
type Auction struct {
	AuctionID          string         `json:"auction_id"`
	Name               string         `json:"name"`
	Status             AuctionStatus  `json:"status"`
	CurrentNominee     *ActiveNominee `json:"current_nominee,omitempty"`
	CurrentNominatorID string         `json:"current_nominator_id,omitempty"`
	Version            int            `json:"version"`
}

// Team is a bidding participant. The team id doubles as the participant id:
// one owner acts for each team.
type Team struct {
	TeamID          string `json:"team_id"`
	AuctionID       string `json:"auction_id"`
	Name            string `json:"name"`
	Budget          int    `json:"budget"`
	RemainingBudget int    `json:"remaining_budget"`
}

// RosterSlotDef defines one roster slot category for an auction. Set once
// before the auction starts and never mutated afterward.
type RosterSlotDef struct {
	SlotID       string `json:"slot_id"`
	AuctionID    string `json:"auction_id"`
	Category     string `json:"category"`
	SlotsPerTeam int    `json:"slots_per_team"`
	IsFlexible   bool   `json:"is_flexible"`
	DisplayOrder int    `json:"display_order"`
}

// CatalogItem is a draftable item. Available flips to false exactly once, at
// win resolution, and never reverts.
type CatalogItem struct {
	ItemID    string `json:"item_id"`
	AuctionID string `json:"auction_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}

// NominationEntry is one seat in the nomination turn ring.
type NominationEntry struct {
	AuctionID             string `json:"auction_id"`
	ParticipantID         string `json:"participant_id"`
	OrderPosition         int    `json:"order_position"`
	HasNominatedThisRound bool   `json:"has_nominated_this_round"`
	IsSkipped             bool   `json:"is_skipped"`
}

// BidRecord is an append-only audit ledger entry for a nomination, bid or
// pass. Amount is zero only for passes.
type BidRecord struct {
	BidID         string    `json:"bid_id"`
	AuctionID     string    `json:"auction_id"`
	ItemID        string    `json:"item_id"`
	ParticipantID string    `json:"participant_id"`
	Amount        int       `json:"amount"`
	Kind          BidKind   `json:"kind"`
	IsWinning     bool      `json:"is_winning"`
	CreatedAt     time.Time `json:"created_at"`
}

// DraftPick records a won item placed on a team roster slot.
type DraftPick struct {
	PickID     string    `json:"pick_id"`
	AuctionID  string    `json:"auction_id"`
	TeamID     string    `json:"team_id"`
	ItemID     string    `json:"item_id"`
	SlotID     string    `json:"slot_id"`
	WinningBid int       `json:"winning_bid"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session tracks one participant connection. Sessions are owned by the
// connection monitor and are independent of auction business state.
type Session struct {
	SessionID                string    `json:"session_id"`
	AuctionID                string    `json:"auction_id"`
	ParticipantID            string    `json:"participant_id"`
	ConnectionHandle         string    `json:"connection_handle,omitempty"`
	Connected                bool      `json:"connected"`
	LastActiveAt             time.Time `json:"last_active_at"`
	PendingReconnectApproval bool      `json:"pending_reconnect_approval"`
}
