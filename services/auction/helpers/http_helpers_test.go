package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"auction-ranking/internal/auctionerrors"
	model "auction-ranking/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err        error
		wantStatus int
	}{
		{auctionerrors.ErrAuctionNotFound, http.StatusNotFound},
		{auctionerrors.ErrChallengeNotFound, http.StatusNotFound},
		{auctionerrors.ErrNonPositiveAmount, http.StatusBadRequest},
		{auctionerrors.ErrExceedsCeiling, http.StatusUnprocessableEntity},
		{auctionerrors.ErrAuctionNotLive, http.StatusConflict},
		{auctionerrors.ErrInvalidBid, http.StatusBadRequest},
		{auctionerrors.ErrInvalidAuction, http.StatusBadRequest},
		{auctionerrors.ErrInvalidExtension, http.StatusBadRequest},
		{auctionerrors.ErrInvalidChallenge, http.StatusBadRequest},
		{auctionerrors.ErrAuctionClosed, http.StatusConflict},
		{auctionerrors.ErrExtensionLimitReached, http.StatusConflict},
		{auctionerrors.ErrChallengeResolved, http.StatusConflict},
		{auctionerrors.ErrNoBids, http.StatusOK},
		{auctionerrors.ErrVendorNoBids, http.StatusOK},
		{errors.New("database failure"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		wrapped := fmt.Errorf("service: failed: %w", tc.err)
		status, message := MapErrorToHTTP(wrapped)
		require.Equal(t, tc.wantStatus, status, tc.err.Error())
		require.NotEmpty(t, message)
	}
}

func TestToBidResponse(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	resp := ToBidResponse(model.Bid{
		BidID:     "bid1",
		AuctionID: "auction1",
		VendorID:  "vendor1",
		Amount:    decimal.RequireFromString("812.50"),
		CreatedAt: created,
	})

	require.Equal(t, "bid1", resp.BidID)
	require.Equal(t, "2026-03-01T09:30:00Z", resp.CreatedAt)
	require.Equal(t, "812.5", resp.Amount.String())
}
