package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-ranking/internal/auctionerrors"
	model "auction-ranking/internal/models"
	"auction-ranking/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError sends the JSON error matching a service error and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrChallengeNotFound):
		return http.StatusNotFound, "challenge price not found"
	case errors.Is(err, auctionerrors.ErrNonPositiveAmount):
		return http.StatusBadRequest, "bid amount must be greater than zero"
	case errors.Is(err, auctionerrors.ErrExceedsCeiling):
		return http.StatusUnprocessableEntity, "bid amount exceeds ceiling price"
	case errors.Is(err, auctionerrors.ErrAuctionNotLive):
		return http.StatusConflict, "auction is not live"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrInvalidExtension):
		return http.StatusBadRequest, "invalid extension request"
	case errors.Is(err, auctionerrors.ErrInvalidChallenge):
		return http.StatusBadRequest, "invalid challenge price"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, auctionerrors.ErrExtensionLimitReached):
		return http.StatusConflict, "extension limit reached"
	case errors.Is(err, auctionerrors.ErrChallengeResolved):
		return http.StatusConflict, "challenge price already resolved"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrVendorNoBids):
		return http.StatusOK, "no auctions found for vendor"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse formats a bid for the API
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		VendorID:  bid.VendorID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
