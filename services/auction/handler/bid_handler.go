package handler

import (
	"errors"
	"net/http"

	"auction-ranking/internal/auctionerrors"
	model "auction-ranking/internal/models"
	"auction-ranking/services/auction/helpers"
	"auction-ranking/utils"

	"github.com/gin-gonic/gin"
)

// RecordBidHandler handles POST /api/bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.AuctionID, req.VendorID, *req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "RecordBidHandler", err, map[string]any{
			"auction_id": req.AuctionID,
			"vendor_id":  req.VendorID,
			"amount":     req.Amount.String(),
		})
		return
	}

	resp := helpers.ToBidResponse(bid)

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"vendor_id":  bid.VendorID,
		"amount":     bid.Amount,
	})
}

// GetBidsByAuctionHandler handles GET /api/auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		helpers.HandleServiceError(c, "GetBidsByAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetAuctionsByVendorHandler handles GET /api/vendors/:vendor_id/auctions
func (h *AuctionHandler) GetAuctionsByVendorHandler(c *gin.Context) {
	vendorID := c.Param("vendor_id")
	auctions, err := h.service.GetAuctionsByVendor(vendorID)
	if err != nil && !errors.Is(err, auctionerrors.ErrVendorNoBids) {
		helpers.HandleServiceError(c, "GetAuctionsByVendorHandler", err, map[string]any{"vendor_id": vendorID})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsByVendorHandler", "auctions retrieved successfully", map[string]any{
		"vendor_id":      vendorID,
		"auctions_count": len(auctions),
	})
}
