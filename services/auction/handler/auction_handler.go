package handler

import (
	"fmt"
	"net/http"

	auction "auction-draft/internal/auctionService"
	model "auction-draft/internal/models"
	"auction-draft/services/auction/helpers"
	"auction-draft/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

type AuctionServiceInterface interface {
	StartAuction(auctionID string) (model.Auction, error)
	Nominate(auctionID, participantID, itemID string) (model.Auction, error)
	PlaceBid(auctionID, participantID string, amount int, expectedVersion *int) (model.Auction, error)
	Pass(auctionID, participantID string) (int, error)
	EndBiddingNow(auctionID string) (model.Auction, error)
	Pause(auctionID string) (model.Auction, error)
	Resume(auctionID string) (model.Auction, error)
	EndEarly(auctionID string) (model.Auction, error)
	Archive(auctionID string) (model.Auction, error)
	AssignPosition(auctionID, pickID, slotID string) (model.DraftPick, error)
	GetSnapshot(auctionID string) (auction.Snapshot, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

func (h *AuctionHandler) fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	utils.Error(handlerName+": request rejected", fields)
}

// StartAuctionHandler handles POST /auctions/:auction_id/start
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.StartAuction(auctionID)
	if err != nil {
		h.fail(c, "StartAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(a), "auction started")
	helpers.LogSuccess("StartAuctionHandler", "auction started", map[string]any{
		"auction_id":   a.AuctionID,
		"nominator_id": a.CurrentNominatorID,
	})
}

// NominateHandler handles POST /auctions/:auction_id/nominate
func (h *AuctionHandler) NominateHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.NominateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "NominateHandler", err)
		return
	}

	a, err := h.service.Nominate(auctionID, req.ParticipantID, req.ItemID)
	if err != nil {
		h.fail(c, "NominateHandler", err, map[string]any{
			"auction_id":     auctionID,
			"participant_id": req.ParticipantID,
			"item_id":        req.ItemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(a), "item nominated")
	helpers.LogSuccess("NominateHandler", "item nominated", map[string]any{
		"auction_id": auctionID,
		"item_id":    req.ItemID,
		"nominator":  req.ParticipantID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	a, err := h.service.PlaceBid(auctionID, req.ParticipantID, req.Amount, req.Version)
	if err != nil {
		h.fail(c, "PlaceBidHandler", err, map[string]any{
			"auction_id":     auctionID,
			"participant_id": req.ParticipantID,
			"amount":         req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(a), "bid recorded")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded", map[string]any{
		"auction_id": auctionID,
		"bidder":     req.ParticipantID,
		"amount":     req.Amount,
	})
}

// PassHandler handles POST /auctions/:auction_id/pass
func (h *AuctionHandler) PassHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PassHandler", err)
		return
	}

	remaining, err := h.service.Pass(auctionID, req.ParticipantID)
	if err != nil {
		h.fail(c, "PassHandler", err, map[string]any{
			"auction_id":     auctionID,
			"participant_id": req.ParticipantID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.PassResponse{RemainingBidders: remaining}, "pass recorded")
	helpers.LogSuccess("PassHandler", "pass recorded", map[string]any{
		"auction_id":        auctionID,
		"participant_id":    req.ParticipantID,
		"remaining_bidders": remaining,
	})
}

// EndBiddingHandler handles POST /auctions/:auction_id/end-bidding
func (h *AuctionHandler) EndBiddingHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.EndBiddingNow(auctionID)
	if err != nil {
		h.fail(c, "EndBiddingHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(a), "bidding resolved")
	helpers.LogSuccess("EndBiddingHandler", "bidding resolved", map[string]any{
		"auction_id": auctionID,
		"status":     string(a.Status),
	})
}

// PauseHandler handles POST /auctions/:auction_id/pause
func (h *AuctionHandler) PauseHandler(c *gin.Context) {
	h.lifecycle(c, "PauseHandler", h.service.Pause, "auction paused")
}

// ResumeHandler handles POST /auctions/:auction_id/resume
func (h *AuctionHandler) ResumeHandler(c *gin.Context) {
	h.lifecycle(c, "ResumeHandler", h.service.Resume, "auction resumed")
}

// EndEarlyHandler handles POST /auctions/:auction_id/end-early
func (h *AuctionHandler) EndEarlyHandler(c *gin.Context) {
	h.lifecycle(c, "EndEarlyHandler", h.service.EndEarly, "auction ended early")
}

// ArchiveHandler handles POST /auctions/:auction_id/archive
func (h *AuctionHandler) ArchiveHandler(c *gin.Context) {
	h.lifecycle(c, "ArchiveHandler", h.service.Archive, "auction archived")
}

func (h *AuctionHandler) lifecycle(c *gin.Context, handlerName string, op func(string) (model.Auction, error), message string) {
	auctionID := c.Param("auction_id")
	a, err := op(auctionID)
	if err != nil {
		h.fail(c, handlerName, err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(a), message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"auction_id": auctionID,
		"status":     string(a.Status),
	})
}

// AssignPositionHandler handles POST /auctions/:auction_id/picks/:pick_id/assign
func (h *AuctionHandler) AssignPositionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	pickID := c.Param("pick_id")

	var req helpers.AssignPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AssignPositionHandler", err)
		return
	}

	pick, err := h.service.AssignPosition(auctionID, pickID, req.SlotID)
	if err != nil {
		h.fail(c, "AssignPositionHandler", err, map[string]any{
			"auction_id": auctionID,
			"pick_id":    pickID,
			"slot_id":    req.SlotID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToPickResponse(pick), "pick reassigned")
	helpers.LogSuccess("AssignPositionHandler", "pick reassigned", map[string]any{
		"auction_id": auctionID,
		"pick_id":    pickID,
		"slot_id":    req.SlotID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	snap, err := h.service.GetSnapshot(auctionID)
	if err != nil {
		h.fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snap, "auction snapshot")
}
