package handler

import (
	"errors"
	"net/http"

	"auction-ranking/internal/auctionerrors"
	model "auction-ranking/internal/models"
	"auction-ranking/internal/ranking"
	"auction-ranking/services/auction/helpers"
	"auction-ranking/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

type AuctionServiceInterface interface {
	CreateAuction(req model.NewAuction) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions(status model.AuctionStatus) ([]model.Auction, error)
	GetAuctionsByVendor(vendorID string) ([]model.Auction, error)
	PlaceBid(auctionID, vendorID string, amount decimal.Decimal) (model.Bid, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	GetRankings(auctionID string) (ranking.Result, error)
	GetWinningBid(auctionID string) (ranking.Entry, error)
	GetBidStats(auctionID string) (model.BidStats, error)
	ExtendAuction(auctionID string, req model.ExtensionRequest) (model.AuctionExtension, error)
	GetExtensions(auctionID string) ([]model.AuctionExtension, error)
	CreateChallenge(auctionID string, req model.NewChallenge) (model.ChallengePrice, error)
	GetChallenges(auctionID string) ([]model.ChallengePrice, error)
	RespondToChallenge(challengeID string, accept bool, response string) (model.ChallengePrice, error)
	CounterChallenge(challengeID string, amount decimal.Decimal, notes string) (model.ChallengePrice, error)
	RespondToCounter(challengeID string, accept bool) (model.ChallengePrice, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /api/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(model.NewAuction{
		Name:                     req.Name,
		Description:              req.Description,
		ReservePrice:             *req.ReservePrice,
		StartTime:                req.StartTime,
		EndTime:                  req.EndTime,
		MaxExtensions:            req.MaxExtensions,
		ExtensionDurationMinutes: req.ExtensionDurationMinutes,
		CreatedBy:                req.CreatedBy,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":    auction.ID,
		"status":        auction.Status,
		"reserve_price": auction.ReservePrice,
	})
}

// ListAuctionsHandler handles GET /api/auctions?status=
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	status := model.AuctionStatus(c.Query("status"))
	auctions, err := h.service.ListAuctions(status)
	if err != nil {
		helpers.HandleServiceError(c, "ListAuctionsHandler", err, map[string]any{"status": status})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"status": status,
		"count":  len(auctions),
	})
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// GetRankingsHandler handles GET /api/auctions/:auction_id/rankings
func (h *AuctionHandler) GetRankingsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	result, err := h.service.GetRankings(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetRankingsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	if result.Entries == nil {
		result.Entries = []ranking.Entry{}
	}
	if result.Skipped == nil {
		result.Skipped = []ranking.SkippedBid{}
	}

	utils.JSONResponse(c, http.StatusOK, result, "rankings computed successfully")
	helpers.LogSuccess("GetRankingsHandler", "rankings computed successfully", map[string]any{
		"auction_id": auctionID,
		"vendors":    len(result.Entries),
		"skipped":    len(result.Skipped),
	})
}

// GetWinningBidHandler handles GET /api/auctions/:auction_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	entry, err := h.service.GetWinningBid(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		helpers.HandleServiceError(c, "GetWinningBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, entry, "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"vendor_id":  entry.VendorID,
		"amount":     entry.Amount,
	})
}

// GetBidStatsHandler handles GET /api/auctions/:auction_id/stats
func (h *AuctionHandler) GetBidStatsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	stats, err := h.service.GetBidStats(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidStatsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "bid statistics retrieved successfully")
}

// ExtendAuctionHandler handles POST /api/auctions/:auction_id/extend
func (h *AuctionHandler) ExtendAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.ExtendAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExtendAuctionHandler", err)
		return
	}

	ext, err := h.service.ExtendAuction(auctionID, model.ExtensionRequest{
		NewEndTime:      req.NewEndTime,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
		ExtendedBy:      req.ExtendedBy,
	})
	if err != nil {
		helpers.HandleServiceError(c, "ExtendAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, ext, "auction extended successfully")
	helpers.LogSuccess("ExtendAuctionHandler", "auction extended successfully", map[string]any{
		"auction_id":   auctionID,
		"new_end_time": ext.NewEndTime,
	})
}

// GetExtensionsHandler handles GET /api/auctions/:auction_id/extensions
func (h *AuctionHandler) GetExtensionsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	extensions, err := h.service.GetExtensions(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetExtensionsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	if extensions == nil {
		extensions = []model.AuctionExtension{}
	}

	utils.JSONResponse(c, http.StatusOK, extensions, "extensions retrieved successfully")
}
