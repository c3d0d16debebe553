package server

import (
	"net/http"

	"auction-ranking/internal/live"
	"auction-ranking/internal/metrics"
	handler "auction-ranking/services/auction/handler"
	"auction-ranking/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application.
// A nil bidLimiter leaves bid submission unthrottled.
func SetupRouter(auctionService handler.AuctionServiceInterface, hub *live.Hub, bidLimiter *BidRateLimiter) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(metrics.Middleware)

	auctionHandler := handler.NewAuctionHandler(auctionService)

	api := router.Group("/api")

	auctions := api.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/rankings", auctionHandler.GetRankingsHandler)
		auctions.GET("/:auction_id/winning", auctionHandler.GetWinningBidHandler)
		auctions.GET("/:auction_id/stats", auctionHandler.GetBidStatsHandler)
		auctions.POST("/:auction_id/extend", auctionHandler.ExtendAuctionHandler)
		auctions.GET("/:auction_id/extensions", auctionHandler.GetExtensionsHandler)
		auctions.POST("/:auction_id/challenge-prices", auctionHandler.CreateChallengeHandler)
		auctions.GET("/:auction_id/challenge-prices", auctionHandler.GetChallengesHandler)
	}

	challenges := api.Group("/challenge-prices")
	{
		challenges.POST("/:challenge_id/respond", auctionHandler.RespondToChallengeHandler)
		challenges.POST("/:challenge_id/counter", auctionHandler.CounterChallengeHandler)
		challenges.POST("/:challenge_id/counter/respond", auctionHandler.RespondToCounterHandler)
	}

	bids := api.Group("/bids")
	if bidLimiter != nil {
		bids.Use(bidLimiter.Middleware)
	}
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	vendors := api.Group("/vendors")
	{
		vendors.GET("/:vendor_id/auctions", auctionHandler.GetAuctionsByVendorHandler)
	}

	if hub != nil {
		router.GET("/ws", hub.ServeWS)
	}
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", func(c *gin.Context) {
		clients := 0
		if hub != nil {
			clients = hub.ClientCount()
		}
		utils.JSONResponse(c, http.StatusOK, gin.H{"live_clients": clients}, "ok")
	})

	return router
}
