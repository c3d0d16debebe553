package ranking

import (
	"fmt"
	"sort"

	"auction-ranking/internal/auctionerrors"
	"auction-ranking/internal/models"

	"github.com/shopspring/decimal"
)

const monetaryPrecision int32 = 2 // amounts are stored as numeric(12,2)

var hundred = decimal.NewFromInt(100)

// RankLabel returns the buyer-side shorthand for a 1-based rank
func RankLabel(rank int) string {
	if rank == 1 {
		return "L1 (Winner)"
	}
	return fmt.Sprintf("L%d", rank)
}

// ComputeRankings ranks vendors by their lowest bid, cheapest first.
//
// Each vendor is represented by its minimum amount; when a vendor offered the
// same minimum more than once the earliest offer counts. Vendors tied on amount
// are ordered by who offered that price first, then by vendor ID. Bids without a
// vendor are skipped and reported instead of failing the whole ranking.
//
// The function reads its arguments only and may be called concurrently.
func ComputeRankings(bids []models.Bid, reservePrice decimal.Decimal) Result {
	return ComputeRankingsWithOverrides(bids, reservePrice, nil)
}

// ComputeRankingsWithOverrides ranks like ComputeRankings, but a vendor with an
// override is ranked at the override amount instead of its best bid.
func ComputeRankingsWithOverrides(bids []models.Bid, reservePrice decimal.Decimal, overrides map[string]Override) Result {
	result := Result{
		Entries: make([]Entry, 0),
		Skipped: make([]SkippedBid, 0),
	}
	if len(bids) == 0 {
		return result
	}

	// Find lowest bid per vendor while preserving order of first occurrence
	best := make(map[string]models.Bid)
	order := make([]string, 0, len(bids))

	for i, bid := range bids {
		if bid.VendorID == "" {
			result.Skipped = append(result.Skipped, SkippedBid{
				Index:  i,
				BidID:  bid.BidID,
				Reason: fmt.Sprintf("%s: missing vendor id", auctionerrors.ErrMalformedBidRecord),
			})
			continue
		}

		existing, seen := best[bid.VendorID]
		if !seen {
			order = append(order, bid.VendorID)
			best[bid.VendorID] = bid
			continue
		}
		if bid.Amount.LessThan(existing.Amount) ||
			(bid.Amount.Equal(existing.Amount) && bid.CreatedAt.Before(existing.CreatedAt)) {
			best[bid.VendorID] = bid
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, vendorID := range order {
		bid := best[vendorID]
		entry := Entry{
			VendorID:       vendorID,
			BidID:          bid.BidID,
			Amount:         bid.Amount,
			OriginalAmount: bid.Amount,
			PriceSource:    SourceBid,
			CreatedAt:      bid.CreatedAt,
		}
		if o, ok := overrides[vendorID]; ok {
			entry.Amount = o.Amount
			entry.PriceSource = o.Source
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.LessThan(b.Amount)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.VendorID < b.VendorID
	})

	for i := range entries {
		e := &entries[i]
		e.Rank = i + 1
		e.RankLabel = RankLabel(e.Rank)
		e.Savings = reservePrice.Sub(e.Amount)
		e.SavingsPercent = savingsPercent(e.Savings, reservePrice)
		e.CeilingBreached = e.Savings.IsNegative()
	}

	result.Entries = entries
	return result
}

func savingsPercent(savings, reservePrice decimal.Decimal) decimal.Decimal {
	if !reservePrice.IsPositive() {
		return decimal.Zero
	}
	return savings.Div(reservePrice).Mul(hundred).Round(monetaryPrecision)
}
