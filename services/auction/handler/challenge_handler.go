package handler

import (
	"net/http"

	model "auction-ranking/internal/models"
	"auction-ranking/services/auction/helpers"
	"auction-ranking/utils"

	"github.com/gin-gonic/gin"
)

// CreateChallengeHandler handles POST /api/auctions/:auction_id/challenge-prices
func (h *AuctionHandler) CreateChallengeHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateChallengeHandler", err)
		return
	}

	challenge, err := h.service.CreateChallenge(auctionID, model.NewChallenge{
		VendorID:        req.VendorID,
		BidID:           req.BidID,
		ChallengeAmount: *req.ChallengeAmount,
		ChallengedBy:    req.ChallengedBy,
		Notes:           req.Notes,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateChallengeHandler", err, map[string]any{
			"auction_id": auctionID,
			"vendor_id":  req.VendorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, challenge, "challenge price created successfully")
	helpers.LogSuccess("CreateChallengeHandler", "challenge price created successfully", map[string]any{
		"challenge_id": challenge.ID,
		"auction_id":   auctionID,
		"vendor_id":    challenge.VendorID,
		"amount":       challenge.ChallengeAmount,
	})
}

// GetChallengesHandler handles GET /api/auctions/:auction_id/challenge-prices
func (h *AuctionHandler) GetChallengesHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	challenges, err := h.service.GetChallenges(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetChallengesHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	if challenges == nil {
		challenges = []model.ChallengePrice{}
	}

	utils.JSONResponse(c, http.StatusOK, challenges, "challenge prices retrieved successfully")
}

// RespondToChallengeHandler handles POST /api/challenge-prices/:challenge_id/respond
func (h *AuctionHandler) RespondToChallengeHandler(c *gin.Context) {
	challengeID := c.Param("challenge_id")
	var req helpers.RespondChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RespondToChallengeHandler", err)
		return
	}

	challenge, err := h.service.RespondToChallenge(challengeID, *req.Accept, req.Response)
	if err != nil {
		helpers.HandleServiceError(c, "RespondToChallengeHandler", err, map[string]any{"challenge_id": challengeID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, challenge, "challenge price "+string(challenge.Status))
	helpers.LogSuccess("RespondToChallengeHandler", "challenge price answered", map[string]any{
		"challenge_id": challengeID,
		"status":       challenge.Status,
	})
}

// CounterChallengeHandler handles POST /api/challenge-prices/:challenge_id/counter
func (h *AuctionHandler) CounterChallengeHandler(c *gin.Context) {
	challengeID := c.Param("challenge_id")
	var req helpers.CounterChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CounterChallengeHandler", err)
		return
	}

	challenge, err := h.service.CounterChallenge(challengeID, *req.CounterAmount, req.Notes)
	if err != nil {
		helpers.HandleServiceError(c, "CounterChallengeHandler", err, map[string]any{"challenge_id": challengeID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, challenge, "counter price submitted successfully")
	helpers.LogSuccess("CounterChallengeHandler", "counter price submitted successfully", map[string]any{
		"challenge_id": challengeID,
		"amount":       req.CounterAmount.String(),
	})
}

// RespondToCounterHandler handles POST /api/challenge-prices/:challenge_id/counter/respond
func (h *AuctionHandler) RespondToCounterHandler(c *gin.Context) {
	challengeID := c.Param("challenge_id")
	var req helpers.RespondCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RespondToCounterHandler", err)
		return
	}

	challenge, err := h.service.RespondToCounter(challengeID, *req.Accept)
	if err != nil {
		helpers.HandleServiceError(c, "RespondToCounterHandler", err, map[string]any{"challenge_id": challengeID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, challenge, "counter price "+string(challenge.CounterStatus))
	helpers.LogSuccess("RespondToCounterHandler", "counter price answered", map[string]any{
		"challenge_id":   challengeID,
		"counter_status": challenge.CounterStatus,
	})
}
