package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"auction-ranking/internal/auctionerrors"
	auction "auction-ranking/internal/auctionService"
	"auction-ranking/internal/live"
	"auction-ranking/internal/models"
	"auction-ranking/internal/ranking"
	"auction-ranking/internal/repository"
	"auction-ranking/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testBackend struct {
	service *auction.AuctionService
	hub     *live.Hub
	url     string
}

// startBackend serves the real API over an in-memory repository
func startBackend(t *testing.T) testBackend {
	t.Helper()

	gin.SetMode(gin.TestMode)
	hub := live.NewHub()
	service := auction.NewAuctionService(repository.NewMemoryRepo(), hub)
	srv := httptest.NewServer(server.SetupRouter(service, hub, nil))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return testBackend{service: service, hub: hub, url: srv.URL}
}

func (b testBackend) liveAuction(t *testing.T) models.Auction {
	t.Helper()

	now := time.Now().UTC()
	a, err := b.service.CreateAuction(models.NewAuction{
		Name:         "Copper wire",
		ReservePrice: decimal.NewFromInt(1000),
		StartTime:    now.Add(-time.Minute),
		EndTime:      now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusLive, a.Status)
	return a
}

func TestClient_FetchAndRank(t *testing.T) {
	t.Parallel()

	backend := startBackend(t)
	a := backend.liveAuction(t)

	for _, bid := range []struct {
		vendor string
		amount int64
	}{{"vendorA", 900}, {"vendorB", 800}, {"vendorA", 780}} {
		_, err := backend.service.PlaceBid(a.ID, bid.vendor, decimal.NewFromInt(bid.amount))
		require.NoError(t, err)
	}

	client := New(Config{BaseURL: backend.url})
	ctx := context.Background()

	fetched, err := client.FetchAuction(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.ID, fetched.ID)
	require.True(t, fetched.ReservePrice.Equal(decimal.NewFromInt(1000)))

	bids, skipped, err := client.FetchBids(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, bids, 3)
	require.Empty(t, skipped)

	result, err := client.Rankings(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	require.Equal(t, "vendorA", result.Entries[0].VendorID)
	require.Equal(t, "L1 (Winner)", result.Entries[0].RankLabel)
	require.Equal(t, "220", result.Entries[0].Savings.String())
	require.Equal(t, "vendorB", result.Entries[1].VendorID)
}

func TestClient_RankingsApplyAcceptedChallenge(t *testing.T) {
	t.Parallel()

	backend := startBackend(t)
	a := backend.liveAuction(t)

	bidA, err := backend.service.PlaceBid(a.ID, "vendorA", decimal.NewFromInt(900))
	require.NoError(t, err)
	_, err = backend.service.PlaceBid(a.ID, "vendorB", decimal.NewFromInt(800))
	require.NoError(t, err)

	challenge, err := backend.service.CreateChallenge(a.ID, models.NewChallenge{
		VendorID: "vendorA", BidID: bidA.BidID, ChallengeAmount: decimal.NewFromInt(750),
	})
	require.NoError(t, err)
	_, err = backend.service.RespondToChallenge(challenge.ID, true, "agreed")
	require.NoError(t, err)

	client := New(Config{BaseURL: backend.url})
	ctx := context.Background()

	challenges, err := client.FetchChallenges(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	require.Equal(t, models.ResponseAccepted, challenges[0].Status)
	require.Equal(t, "750", challenges[0].ChallengeAmount.String())

	result, err := client.Rankings(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	require.Equal(t, "vendorA", result.Entries[0].VendorID)
	require.Equal(t, ranking.SourceChallenge, result.Entries[0].PriceSource)
	require.Equal(t, "750", result.Entries[0].Amount.String())
	require.Equal(t, "900", result.Entries[0].OriginalAmount.String())
	require.Equal(t, "vendorB", result.Entries[1].VendorID)
	require.Equal(t, ranking.SourceBid, result.Entries[1].PriceSource)

	// the consumer agrees with the server's own ranking
	serverResult, err := backend.service.GetRankings(a.ID)
	require.NoError(t, err)
	require.Len(t, serverResult.Entries, len(result.Entries))
	for i := range serverResult.Entries {
		require.Equal(t, serverResult.Entries[i].VendorID, result.Entries[i].VendorID)
		require.True(t, serverResult.Entries[i].Amount.Equal(result.Entries[i].Amount))
		require.True(t, serverResult.Entries[i].Savings.Equal(result.Entries[i].Savings))
	}
}

func TestClient_FetchChallengesEmpty(t *testing.T) {
	t.Parallel()

	backend := startBackend(t)
	a := backend.liveAuction(t)

	challenges, err := New(Config{BaseURL: backend.url}).FetchChallenges(context.Background(), a.ID)
	require.NoError(t, err)
	require.Empty(t, challenges)
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	backend := startBackend(t)
	client := New(Config{BaseURL: backend.url})

	_, err := client.FetchAuction(context.Background(), "ghost")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "auction not found", apiErr.Message)
}

func TestClient_FetchBidsSkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":200,"message":"bids retrieved successfully","data":[
			{"bid_id":"b1","vendor_id":"vendorA","amount":"950.00","created_at":"2026-05-01T10:00:00Z"},
			{"bid_id":"b2","vendorId":"vendorB","amount":"cheap","createdAt":"2026-05-01T10:01:00Z"},
			{"bidId":"b3","vendorId":"vendorC","amount":920,"createdAt":"2026-05-01T10:02:00Z"}
		]}`))
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL})
	bids, skipped, err := client.FetchBids(context.Background(), "auction1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Len(t, skipped, 1)
	require.Equal(t, "b2", skipped[0].BidID)
	require.Equal(t, 1, skipped[0].Index)
}

func TestClient_FetchBidsNotAList(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":200,"data":{"bids":"none"}}`))
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL})
	_, _, err := client.FetchBids(context.Background(), "auction1")
	require.ErrorIs(t, err, auctionerrors.ErrMalformedBidRecord)
}

func TestClient_SubmitBid(t *testing.T) {
	t.Parallel()

	backend := startBackend(t)
	a := backend.liveAuction(t)
	client := New(Config{BaseURL: backend.url})

	bid, err := client.SubmitBid(context.Background(), a, "vendorA", decimal.RequireFromString("875.25"))
	require.NoError(t, err)
	require.NotEmpty(t, bid.BidID)
	require.Equal(t, "vendorA", bid.VendorID)
	require.True(t, bid.Amount.Equal(decimal.RequireFromString("875.25")))

	winner, err := backend.service.GetWinningBid(a.ID)
	require.NoError(t, err)
	require.Equal(t, "vendorA", winner.VendorID)
}

func TestClient_SubmitBidRejectedLocally(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	now := time.Now().UTC()
	a := models.Auction{
		ID:           "auction1",
		ReservePrice: decimal.NewFromInt(1000),
		StartTime:    now.Add(-time.Hour),
		EndTime:      now.Add(time.Hour),
		Status:       models.StatusLive,
	}
	client := New(Config{BaseURL: srv.URL})

	tests := []struct {
		name    string
		auction func() models.Auction
		amount  decimal.Decimal
		wantErr error
	}{
		{"zero", func() models.Auction { return a }, decimal.Zero, auctionerrors.ErrNonPositiveAmount},
		{"above_ceiling", func() models.Auction { return a }, decimal.NewFromInt(1001), auctionerrors.ErrExceedsCeiling},
		{"sub_cent", func() models.Auction { return a }, decimal.RequireFromString("0.004"), auctionerrors.ErrNonPositiveAmount},
		{"rounds_above_ceiling", func() models.Auction { return a }, decimal.RequireFromString("1000.005"), auctionerrors.ErrExceedsCeiling},
		{"ended", func() models.Auction {
			ended := a
			ended.EndTime = now.Add(-time.Minute)
			return ended
		}, decimal.NewFromInt(900), auctionerrors.ErrAuctionNotLive},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.SubmitBid(context.Background(), tc.auction(), "vendorA", tc.amount)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
	require.Zero(t, calls.Load())
}

func TestClient_SubmitBidRejectedByServer(t *testing.T) {
	t.Parallel()

	backend := startBackend(t)
	a := backend.liveAuction(t)
	client := New(Config{BaseURL: backend.url})

	// the server's copy has a lower ceiling than the caller believes
	stale := a
	stale.ReservePrice = decimal.NewFromInt(5000)

	_, err := client.SubmitBid(context.Background(), stale, "vendorA", decimal.NewFromInt(2000))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
}

func TestClient_Watch(t *testing.T) {
	t.Parallel()

	backend := startBackend(t)
	a := backend.liveAuction(t)
	other := backend.liveAuction(t)
	client := New(Config{BaseURL: backend.url})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan ranking.Result, 8)
	done := make(chan error, 1)
	go func() {
		done <- client.Watch(ctx, a.ID, func(r ranking.Result) { results <- r })
	}()

	initial := <-results
	require.Empty(t, initial.Entries)
	require.Eventually(t, func() bool { return backend.hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	// updates for other auctions do not trigger a re-rank
	_, err := backend.service.PlaceBid(other.ID, "vendorZ", decimal.NewFromInt(500))
	require.NoError(t, err)

	_, err = backend.service.PlaceBid(a.ID, "vendorB", decimal.NewFromInt(810))
	require.NoError(t, err)

	select {
	case r := <-results:
		require.Len(t, r.Entries, 1)
		require.Equal(t, "vendorB", r.Entries[0].VendorID)
	case <-time.After(3 * time.Second):
		t.Fatal("no re-rank after bid")
	}

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestIsUpdateFor(t *testing.T) {
	t.Parallel()

	require.True(t, isUpdateFor([]byte(`{"type":"auction_update","auction_id":"a1"}`), "a1"))
	require.False(t, isUpdateFor([]byte(`{"type":"auction_update","auction_id":"a2"}`), "a1"))
	require.False(t, isUpdateFor([]byte(`{"type":"heartbeat","auction_id":"a1"}`), "a1"))
	require.False(t, isUpdateFor([]byte(`not json`), "a1"))
}

func TestClient_WSURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ws://localhost:8080/ws", New(Config{BaseURL: "http://localhost:8080/"}).wsURL())
	require.Equal(t, "wss://auctions.example.com/ws", New(Config{BaseURL: "https://auctions.example.com"}).wsURL())
}
