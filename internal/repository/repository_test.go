package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-ranking/internal/auctionerrors"
	model "auction-ranking/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

// Helper to create a new Auction
func newAuction(auctionID string, status model.AuctionStatus, reserve int64) model.Auction {
	return model.Auction{
		ID:                       auctionID,
		Name:                     fmt.Sprintf("%s name", auctionID),
		Description:              fmt.Sprintf("%s description", auctionID),
		ReservePrice:             decimal.NewFromInt(reserve),
		StartTime:                base,
		EndTime:                  base.Add(2 * time.Hour),
		OriginalEndTime:          base.Add(2 * time.Hour),
		MaxExtensions:            3,
		ExtensionDurationMinutes: 30,
		Status:                   status,
		CreatedAt:                base,
		UpdatedAt:                base,
	}
}

// Helper to create a new Bid
func newBid(bidID, auctionID, vendorID string, amount int64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		VendorID:  vendorID,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: createdAt,
	}
}

// Test CreateAuction, GetAuction and ListAuctions
func TestMemoryRepo_Auctions(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	a1 := newAuction("auction1", model.StatusLive, 1000)
	a2 := newAuction("auction2", model.StatusScheduled, 500)
	a3 := newAuction("auction3", model.StatusLive, 750)
	require.NoError(t, repo.CreateAuction(a1))
	require.NoError(t, repo.CreateAuction(a2))
	require.NoError(t, repo.CreateAuction(a3))

	t.Run("duplicate_id", func(t *testing.T) {
		err := repo.CreateAuction(a1)
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidAuction))
	})

	t.Run("empty_id", func(t *testing.T) {
		err := repo.CreateAuction(newAuction("", model.StatusLive, 10))
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidAuction))
	})

	tests := []struct {
		name      string
		auctionID string
		want      model.Auction
		wantError error
	}{
		{name: "existing_auction", auctionID: "auction2", want: a2},
		{name: "non_existing_auction", auctionID: "auctionX", wantError: auctionerrors.ErrAuctionNotFound},
		{name: "empty_auctionID", auctionID: "", wantError: auctionerrors.ErrAuctionNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.GetAuction(tc.auctionID)
			if tc.wantError != nil {
				require.True(t, errors.Is(err, tc.wantError), "expected error: %v, got: %v", tc.wantError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("list_all_in_creation_order", func(t *testing.T) {
		all, err := repo.ListAuctions("")
		require.NoError(t, err)
		require.Equal(t, []model.Auction{a1, a2, a3}, all)
	})

	t.Run("list_by_status", func(t *testing.T) {
		live, err := repo.ListAuctions(model.StatusLive)
		require.NoError(t, err)
		require.Equal(t, []model.Auction{a1, a3}, live)

		closed, err := repo.ListAuctions(model.StatusClosed)
		require.NoError(t, err)
		require.NotNil(t, closed)
		require.Empty(t, closed)
	})
}

// Test UpdateAuction
func TestMemoryRepo_UpdateAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	a := newAuction("auction1", model.StatusScheduled, 1000)
	require.NoError(t, repo.CreateAuction(a))

	a.Status = model.StatusClosed
	a.WinnerID = "vendorA"
	a.WinningBid = decimal.NewNullDecimal(decimal.NewFromInt(800))
	require.NoError(t, repo.UpdateAuction(a))

	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, a, got)

	err = repo.UpdateAuction(newAuction("auctionX", model.StatusLive, 1))
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", model.StatusLive, 1000)))

	tests := []struct {
		name      string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", bid: newBid("bid1", "auction1", "vendor1", 900, base), wantError: false},
		{name: "auction_not_found", bid: newBid("bid2", "auctionX", "vendor1", 900, base), wantError: true},
		{name: "bid_with_past_timestamp", bid: newBid("bid3", "auction1", "vendor2", 850, base.Add(-24*time.Hour)), wantError: false},
		{name: "bid_with_future_timestamp", bid: newBid("bid4", "auction1", "vendor3", 800, base.Add(24*time.Hour)), wantError: false},
		{name: "empty_auctionID", bid: newBid("bid-empty", "", "vendor4", 100, base), wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := repo.RecordBid(tc.bid)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
				return
			}
			require.NoError(t, err)
			bids, err := repo.GetBidsByAuction(tc.bid.AuctionID)
			require.NoError(t, err)
			require.Contains(t, bids, tc.bid)
		})
	}

	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(newAuction("auction1", model.StatusLive, 1000)))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "auction1", fmt.Sprintf("vendor-%d", i%5), int64(900-i), base)
				if err := repo.RecordBid(b); err != nil {
					t.Errorf("record bid: %v", err)
				}
			}()
		}

		wg.Wait()

		bids, err := repo.GetBidsByAuction("auction1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)
	})
}

// Test GetBidsByAuction
func TestMemoryRepo_GetBidsByAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", model.StatusLive, 1000)))
	require.NoError(t, repo.CreateAuction(newAuction("auction2", model.StatusLive, 1000)))

	bid1 := newBid("bid1", "auction1", "vendor1", 900, base)
	bid2 := newBid("bid2", "auction1", "vendor2", 850, base.Add(time.Second))
	bid3 := newBid("bid3", "auction1", "vendor1", 800, base.Add(2*time.Second))
	require.NoError(t, repo.RecordBid(bid1))
	require.NoError(t, repo.RecordBid(bid2))
	require.NoError(t, repo.RecordBid(bid3))

	tests := []struct {
		name      string
		auctionID string
		wantBids  []model.Bid
		wantError error
	}{
		{name: "auction_with_bids", auctionID: "auction1", wantBids: []model.Bid{bid1, bid2, bid3}},
		{name: "auction_without_bids", auctionID: "auction2", wantError: auctionerrors.ErrNoBids},
		{name: "non_existing_auction", auctionID: "auctionX", wantError: auctionerrors.ErrAuctionNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bids, err := repo.GetBidsByAuction(tc.auctionID)
			if tc.wantError != nil {
				require.True(t, errors.Is(err, tc.wantError), "expected error: %v, got: %v", tc.wantError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantBids, bids)
		})
	}

	t.Run("returned_slice_is_a_copy", func(t *testing.T) {
		t.Parallel()

		bids, err := repo.GetBidsByAuction("auction1")
		require.NoError(t, err)
		bids[0].VendorID = "tampered"

		again, err := repo.GetBidsByAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, "vendor1", again[0].VendorID)
	})
}

// Test GetAuctionsByVendor
func TestMemoryRepo_GetAuctionsByVendor(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	a1 := newAuction("auction1", model.StatusLive, 1000)
	a2 := newAuction("auction2", model.StatusLive, 1000)
	require.NoError(t, repo.CreateAuction(a1))
	require.NoError(t, repo.CreateAuction(a2))

	require.NoError(t, repo.RecordBid(newBid("bid1", "auction1", "vendor1", 900, base)))
	require.NoError(t, repo.RecordBid(newBid("bid2", "auction2", "vendor1", 900, base)))
	require.NoError(t, repo.RecordBid(newBid("bid3", "auction2", "vendor2", 900, base)))
	require.NoError(t, repo.RecordBid(newBid("bid4", "auction2", "vendor2", 800, base)))

	tests := []struct {
		name         string
		vendorID     string
		wantAuctions []model.Auction
		wantError    bool
	}{
		{name: "vendor_with_multiple_auctions", vendorID: "vendor1", wantAuctions: []model.Auction{a1, a2}},
		{name: "duplicate_bids_same_auction", vendorID: "vendor2", wantAuctions: []model.Auction{a2}},
		{name: "vendor_without_bids", vendorID: "vendorX", wantError: true},
		{name: "empty_vendorID", vendorID: "", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			auctions, err := repo.GetAuctionsByVendor(tc.vendorID)
			if tc.wantError {
				require.True(t, errors.Is(err, auctionerrors.ErrVendorNoBids))
				return
			}
			require.NoError(t, err)
			require.ElementsMatch(t, tc.wantAuctions, auctions)
		})
	}
}

// Test extensions and challenges
func TestMemoryRepo_ExtensionsAndChallenges(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", model.StatusLive, 1000)))

	exts, err := repo.GetExtensions("auction1")
	require.NoError(t, err)
	require.NotNil(t, exts)
	require.Empty(t, exts)

	ext := model.AuctionExtension{ID: "ext1", AuctionID: "auction1", OriginalEndTime: base, NewEndTime: base.Add(30 * time.Minute), DurationMinutes: 30, Reason: "late vendor", CreatedAt: base}
	require.NoError(t, repo.RecordExtension(ext))
	require.True(t, errors.Is(repo.RecordExtension(model.AuctionExtension{ID: "ext2", AuctionID: "auctionX"}), auctionerrors.ErrAuctionNotFound))

	exts, err = repo.GetExtensions("auction1")
	require.NoError(t, err)
	require.Equal(t, []model.AuctionExtension{ext}, exts)

	_, err = repo.GetExtensions("auctionX")
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))

	c1 := model.ChallengePrice{ID: "c1", AuctionID: "auction1", VendorID: "vendor1", BidID: "bid1", ChallengeAmount: decimal.NewFromInt(700), Status: model.ResponsePending, CreatedAt: base.Add(time.Second)}
	c2 := model.ChallengePrice{ID: "c2", AuctionID: "auction1", VendorID: "vendor2", BidID: "bid2", ChallengeAmount: decimal.NewFromInt(650), Status: model.ResponsePending, CreatedAt: base}
	require.NoError(t, repo.SaveChallenge(c1))
	require.NoError(t, repo.SaveChallenge(c2))

	c1.Status = model.ResponseAccepted
	require.NoError(t, repo.SaveChallenge(c1))

	got, err := repo.GetChallenge("c1")
	require.NoError(t, err)
	require.Equal(t, model.ResponseAccepted, got.Status)

	_, err = repo.GetChallenge("missing")
	require.True(t, errors.Is(err, auctionerrors.ErrChallengeNotFound))

	all, err := repo.GetChallengesByAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, []model.ChallengePrice{c2, c1}, all)

	require.True(t, errors.Is(repo.SaveChallenge(model.ChallengePrice{ID: "c3", AuctionID: "auctionX"}), auctionerrors.ErrAuctionNotFound))
}
