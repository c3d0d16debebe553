package ranking

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource names where a ranking entry's amount came from
type PriceSource string

const (
	SourceBid       PriceSource = "bid"
	SourceChallenge PriceSource = "challenge"
	SourceCounter   PriceSource = "counter"
)

// Entry is one vendor's position in an auction ranking. It is derived from
// the vendor's best bid and is never persisted.
type Entry struct {
	Rank            int             `json:"rank"`
	RankLabel       string          `json:"rank_label"`
	VendorID        string          `json:"vendor_id"`
	BidID           string          `json:"bid_id"`
	Amount          decimal.Decimal `json:"amount"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	PriceSource     PriceSource     `json:"price_source"`
	CreatedAt       time.Time       `json:"created_at"`
	Savings         decimal.Decimal `json:"savings"`
	SavingsPercent  decimal.Decimal `json:"savings_percent"`
	CeilingBreached bool            `json:"ceiling_breached,omitempty"`
}

// SkippedBid reports a bid record that was excluded from ranking
type SkippedBid struct {
	Index    int    `json:"index"`
	BidID    string `json:"bid_id,omitempty"`
	VendorID string `json:"vendor_id,omitempty"`
	Reason   string `json:"reason"`
}

// Result is a fully materialized ranking, lowest amount first
type Result struct {
	Entries []Entry      `json:"entries"`
	Skipped []SkippedBid `json:"skipped"`
}

// Winner returns the L1 entry, if any vendor is ranked
func (r Result) Winner() (Entry, bool) {
	if len(r.Entries) == 0 {
		return Entry{}, false
	}
	return r.Entries[0], true
}

// Override replaces a vendor's ranking amount with a negotiated price
type Override struct {
	VendorID string
	Amount   decimal.Decimal
	Source   PriceSource
}
