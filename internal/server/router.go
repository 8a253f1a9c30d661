package server

import (
	auction "auction-draft/internal/auctionService"
	"auction-draft/internal/connmonitor"
	handler "auction-draft/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, monitor *connmonitor.Monitor) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(ActivityPingMiddleware(monitor))

	auctionHandler := handler.NewAuctionHandler(auctionService)
	connectionHandler := handler.NewConnectionHandler(monitor)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/start", auctionHandler.StartAuctionHandler)
		auctions.POST("/:auction_id/nominate", auctionHandler.NominateHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/pass", auctionHandler.PassHandler)
		auctions.POST("/:auction_id/end-bidding", auctionHandler.EndBiddingHandler)
		auctions.POST("/:auction_id/pause", auctionHandler.PauseHandler)
		auctions.POST("/:auction_id/resume", auctionHandler.ResumeHandler)
		auctions.POST("/:auction_id/end-early", auctionHandler.EndEarlyHandler)
		auctions.POST("/:auction_id/archive", auctionHandler.ArchiveHandler)
		auctions.POST("/:auction_id/picks/:pick_id/assign", auctionHandler.AssignPositionHandler)
	}

	connections := router.Group("/connections")
	{
		connections.GET("/stats", connectionHandler.StatsHandler)
		connections.POST("/cleanup", connectionHandler.CleanupHandler)
	}

	return router
}
