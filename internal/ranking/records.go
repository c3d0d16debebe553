package ranking

import (
	"fmt"
	"strings"
	"time"

	"auction-ranking/internal/auctionerrors"
	"auction-ranking/internal/models"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ParseBidRecords converts a loosely-typed JSON bid list into bids. The payload
// is either a JSON array or an object carrying the array under "data". Keys may
// be snake_case or camelCase and amounts may be numbers or numeric strings.
//
// A record that cannot be used is skipped and reported; only a payload that is
// not a bid list at all returns an error.
func ParseBidRecords(payload []byte) ([]models.Bid, []SkippedBid, error) {
	if !gjson.ValidBytes(payload) {
		return nil, nil, fmt.Errorf("parse bid records: %w: payload is not valid json", auctionerrors.ErrMalformedBidRecord)
	}

	list := gjson.ParseBytes(payload)
	if !list.IsArray() {
		list = list.Get("data")
	}
	if !list.IsArray() {
		return nil, nil, fmt.Errorf("parse bid records: %w: payload is not a list", auctionerrors.ErrMalformedBidRecord)
	}

	bids := make([]models.Bid, 0)
	skipped := make([]SkippedBid, 0)

	index := 0
	list.ForEach(func(_, record gjson.Result) bool {
		bid, err := parseBidRecord(record)
		if err != nil {
			skipped = append(skipped, SkippedBid{
				Index:    index,
				BidID:    lookup(record, "bid_id", "bidId", "id").String(),
				VendorID: lookup(record, "vendor_id", "vendorId").String(),
				Reason:   err.Error(),
			})
		} else {
			bids = append(bids, bid)
		}
		index++
		return true
	})

	return bids, skipped, nil
}

// ComputeRankingsFromRecords parses a raw bid list and ranks it in one step.
// Records skipped while parsing are reported ahead of those skipped while ranking.
func ComputeRankingsFromRecords(payload []byte, reservePrice decimal.Decimal) (Result, error) {
	bids, skipped, err := ParseBidRecords(payload)
	if err != nil {
		return Result{}, err
	}

	result := ComputeRankings(bids, reservePrice)
	result.Skipped = append(skipped, result.Skipped...)
	return result, nil
}

func parseBidRecord(record gjson.Result) (models.Bid, error) {
	if !record.IsObject() {
		return models.Bid{}, malformed("record is not an object")
	}

	vendor := lookup(record, "vendor_id", "vendorId")
	if vendor.Type != gjson.String || strings.TrimSpace(vendor.Str) == "" {
		return models.Bid{}, malformed("missing vendor id")
	}

	amount, err := parseAmount(lookup(record, "amount"))
	if err != nil {
		return models.Bid{}, err
	}

	createdAt, err := parseTimestamp(lookup(record, "created_at", "createdAt", "timestamp"))
	if err != nil {
		return models.Bid{}, err
	}

	return models.Bid{
		BidID:     lookup(record, "bid_id", "bidId", "id").String(),
		AuctionID: lookup(record, "auction_id", "auctionId").String(),
		VendorID:  vendor.Str,
		Amount:    amount,
		CreatedAt: createdAt,
	}, nil
}

func parseAmount(v gjson.Result) (decimal.Decimal, error) {
	var raw string
	switch v.Type {
	case gjson.Number:
		raw = v.Raw
	case gjson.String:
		raw = strings.TrimSpace(v.Str)
	default:
		return decimal.Decimal{}, malformed("missing amount")
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, malformed(fmt.Sprintf("non-numeric amount %q", raw))
	}
	return amount, nil
}

func parseTimestamp(v gjson.Result) (time.Time, error) {
	switch v.Type {
	case gjson.Null:
		return time.Time{}, nil
	case gjson.String:
		ts, err := time.Parse(time.RFC3339Nano, v.Str)
		if err != nil {
			return time.Time{}, malformed(fmt.Sprintf("invalid timestamp %q", v.Str))
		}
		return ts.UTC(), nil
	default:
		return time.Time{}, malformed("invalid timestamp")
	}
}

// lookup returns the first of keys present in record
func lookup(record gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := record.Get(k); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func malformed(detail string) error {
	return fmt.Errorf("%w: %s", auctionerrors.ErrMalformedBidRecord, detail)
}
