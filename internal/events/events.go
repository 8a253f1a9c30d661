// Package events is the boundary between the auction core and whatever
// transport fans state changes out to clients. The core publishes after its
// per-auction critical section has been released; delivery is someone else's
// problem.
package events

import "auction-draft/utils"

type Type string

const (
	TypeAuctionStarted   Type = "AuctionStarted"
	TypeItemNominated    Type = "ItemNominated"
	TypeBidPlaced        Type = "BidPlaced"
	TypeBidderPassed     Type = "BidderPassed"
	TypeItemSold         Type = "ItemSold"
	TypeAuctionPaused    Type = "AuctionPaused"
	TypeAuctionResumed   Type = "AuctionResumed"
	TypeAuctionCompleted Type = "AuctionCompleted"
	TypeAuctionArchived  Type = "AuctionArchived"
	TypePickReassigned   Type = "PickReassigned"
)

// Event carries one committed state change. Version is the auction's bidding
// snapshot version after the change, so consumers can order and de-duplicate.
type Event struct {
	Type      Type           `json:"type"`
	AuctionID string         `json:"auction_id"`
	Version   int            `json:"version"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Publisher delivers committed events to the transport collaborator.
type Publisher interface {
	Publish(evt Event)
}

// LogPublisher writes events to the structured log. It stands in for a real
// transport in tests and single-process deployments.
type LogPublisher struct{}

func (LogPublisher) Publish(evt Event) {
	utils.Info("auction event", map[string]any{
		"event":      string(evt.Type),
		"auction_id": evt.AuctionID,
		"version":    evt.Version,
		"payload":    evt.Payload,
	})
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
