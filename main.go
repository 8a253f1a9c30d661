package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	auction "auction-draft/internal/auctionService"
	"auction-draft/internal/connmonitor"
	"auction-draft/internal/events"
	model "auction-draft/internal/models"
	"auction-draft/internal/repository"
	"auction-draft/internal/server"
	"auction-draft/utils"

	"github.com/joho/godotenv"
)

func main() {

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file loaded", map[string]any{"error": err.Error()})
	}

	repo := repository.NewMemoryRepo()

	prepopulateDraft(repo)

	auctionSvc := auction.NewAuctionService(repo, events.LogPublisher{})
	monitor := connmonitor.NewMonitor(repo, getDuration("IDLE_TIMEOUT_MINUTES", connmonitor.DefaultIdleTimeout), getDuration("ZOMBIE_TIMEOUT_MINUTES", connmonitor.DefaultZombieTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx, time.Minute)

	router := server.SetupRouter(auctionSvc, monitor)

	port := getPort()
	fmt.Printf("Starting auction draft server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateDraft seeds the in-memory repo with a demo auction
func prepopulateDraft(repo *repository.MemoryRepo) {
	repo.SaveAuction(model.Auction{AuctionID: "demo", Name: "Demo Draft", Status: model.StatusDraft})

	teams := []model.Team{
		{TeamID: "team1", AuctionID: "demo", Name: "Team One", Budget: 200, RemainingBudget: 200},
		{TeamID: "team2", AuctionID: "demo", Name: "Team Two", Budget: 200, RemainingBudget: 200},
		{TeamID: "team3", AuctionID: "demo", Name: "Team Three", Budget: 200, RemainingBudget: 200},
	}
	for _, tm := range teams {
		repo.SaveTeam(tm)
	}

	slots := []model.RosterSlotDef{
		{SlotID: "fwd", AuctionID: "demo", Category: "forward", SlotsPerTeam: 2, DisplayOrder: 1},
		{SlotID: "def", AuctionID: "demo", Category: "defender", SlotsPerTeam: 2, DisplayOrder: 2},
		{SlotID: "flex", AuctionID: "demo", Category: "", SlotsPerTeam: 1, IsFlexible: true, DisplayOrder: 3},
	}
	for _, def := range slots {
		repo.SaveSlotDef(def)
	}

	items := []model.CatalogItem{
		{ItemID: "item1", AuctionID: "demo", Name: "Item One", Category: "forward", Available: true},
		{ItemID: "item2", AuctionID: "demo", Name: "Item Two", Category: "forward", Available: true},
		{ItemID: "item3", AuctionID: "demo", Name: "Item Three", Category: "defender", Available: true},
		{ItemID: "item4", AuctionID: "demo", Name: "Item Four", Category: "defender", Available: true},
		{ItemID: "item5", AuctionID: "demo", Name: "Item Five", Category: "goalie", Available: true},
	}
	for _, item := range items {
		repo.SaveItem(item)
	}

	repo.SaveNominationOrder("demo", []model.NominationEntry{
		{AuctionID: "demo", ParticipantID: "team1", OrderPosition: 1},
		{AuctionID: "demo", ParticipantID: "team2", OrderPosition: 2},
		{AuctionID: "demo", ParticipantID: "team3", OrderPosition: 3},
	})
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getDuration reads a minutes-valued env var, falling back on absence or junk
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		utils.Warn("ignoring invalid duration setting", map[string]any{"key": key, "value": raw})
		return fallback
	}
	return time.Duration(minutes) * time.Minute
}
