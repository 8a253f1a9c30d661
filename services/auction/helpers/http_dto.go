package helpers

import model "auction-draft/internal/models"

// Request/Response DTOs
type NominateRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	ItemID        string `json:"item_id" binding:"required"`
}

type PlaceBidRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Amount        int    `json:"amount" binding:"required,gt=0"`
	// Version, when present, is the snapshot version the client saw; a
	// mismatch at commit time is rejected as a concurrency conflict.
	Version *int `json:"version,omitempty"`
}

type PassRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

type AssignPositionRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

type AuctionResponse struct {
	AuctionID     string `json:"auction_id"`
	Status        string `json:"status"`
	NomineeItemID string `json:"nominee_item_id,omitempty"`
	HighBid       int    `json:"high_bid,omitempty"`
	HighBidderID  string `json:"high_bidder_id,omitempty"`
	NominatorID   string `json:"nominator_id,omitempty"`
	Version       int    `json:"version"`
}

type PassResponse struct {
	RemainingBidders int `json:"remaining_bidders"`
}

type PickResponse struct {
	PickID     string `json:"pick_id"`
	TeamID     string `json:"team_id"`
	ItemID     string `json:"item_id"`
	SlotID     string `json:"slot_id"`
	WinningBid int    `json:"winning_bid"`
}

// ToAuctionResponse flattens an auction row into the wire shape.
func ToAuctionResponse(a model.Auction) AuctionResponse {
	resp := AuctionResponse{
		AuctionID:   a.AuctionID,
		Status:      string(a.Status),
		NominatorID: a.CurrentNominatorID,
		Version:     a.Version,
	}
	if a.CurrentNominee != nil {
		resp.NomineeItemID = a.CurrentNominee.ItemID
		resp.HighBid = a.CurrentNominee.HighBid
		resp.HighBidderID = a.CurrentNominee.HighBidderID
	}
	return resp
}

// ToPickResponse flattens a draft pick into the wire shape.
func ToPickResponse(p model.DraftPick) PickResponse {
	return PickResponse{
		PickID:     p.PickID,
		TeamID:     p.TeamID,
		ItemID:     p.ItemID,
		SlotID:     p.SlotID,
		WinningBid: p.WinningBid,
	}
}
