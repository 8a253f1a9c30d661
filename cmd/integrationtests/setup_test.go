package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-draft/internal/auctionService"
	"auction-draft/internal/connmonitor"
	model "auction-draft/internal/models"
	"auction-draft/internal/repository"
	"auction-draft/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing. The returned repo allows seeding and inspection.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := auction.NewAuctionService(repo, nil)
	monitor := connmonitor.NewMonitor(repo, 0, 0)
	router := server.SetupRouter(service, monitor)
	return router, repo
}

// SeedDraft populates the repo with a small two-team draft auction.
func SeedDraft(t *testing.T, repo *repository.MemoryRepo, auctionID string, budget int) {
	t.Helper()

	mustSave := func(err error) {
		if err != nil {
			t.Fatalf("failed to seed repo: %v", err)
		}
	}

	mustSave(repo.SaveAuction(model.Auction{AuctionID: auctionID, Name: "Integration Draft", Status: model.StatusDraft}))
	mustSave(repo.SaveTeam(model.Team{TeamID: "team1", AuctionID: auctionID, Name: "One", Budget: budget, RemainingBudget: budget}))
	mustSave(repo.SaveTeam(model.Team{TeamID: "team2", AuctionID: auctionID, Name: "Two", Budget: budget, RemainingBudget: budget}))
	mustSave(repo.SaveSlotDef(model.RosterSlotDef{SlotID: "fwd", AuctionID: auctionID, Category: "forward", SlotsPerTeam: 1, DisplayOrder: 1}))
	mustSave(repo.SaveSlotDef(model.RosterSlotDef{SlotID: "flex", AuctionID: auctionID, IsFlexible: true, SlotsPerTeam: 1, DisplayOrder: 2}))
	mustSave(repo.SaveItem(model.CatalogItem{ItemID: "itemX", AuctionID: auctionID, Name: "X", Category: "forward", Available: true}))
	mustSave(repo.SaveItem(model.CatalogItem{ItemID: "itemY", AuctionID: auctionID, Name: "Y", Category: "forward", Available: true}))
	mustSave(repo.SaveNominationOrder(auctionID, []model.NominationEntry{
		{AuctionID: auctionID, ParticipantID: "team1", OrderPosition: 1},
		{AuctionID: auctionID, ParticipantID: "team2", OrderPosition: 2},
	}))
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if data, ok := resp["data"].(map[string]any); ok {
			resp = data
		}
	}

	return resp, w
}
