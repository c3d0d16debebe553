package ranking

import (
	"auction-ranking/internal/auctionerrors"
	"auction-ranking/internal/models"

	"github.com/shopspring/decimal"
)

// InvalidReason explains why a proposed bid was rejected
type InvalidReason string

const (
	NonPositiveAmount InvalidReason = "NonPositiveAmount"
	ExceedsCeiling    InvalidReason = "ExceedsCeiling"
	AuctionNotLive    InvalidReason = "AuctionNotLive"
)

// BidValidation is the outcome of ValidateBid. Reason is empty when Valid.
type BidValidation struct {
	Valid  bool
	Reason InvalidReason
}

// Err returns the sentinel error for the rejection reason, or nil when valid.
func (v BidValidation) Err() error {
	switch v.Reason {
	case NonPositiveAmount:
		return auctionerrors.ErrNonPositiveAmount
	case ExceedsCeiling:
		return auctionerrors.ErrExceedsCeiling
	case AuctionNotLive:
		return auctionerrors.ErrAuctionNotLive
	}
	return nil
}

// ValidateBid checks a proposed bid against the auction's ceiling price and
// status. Rules are applied in order: positive amount, within ceiling, auction
// live; the first failing rule is reported. Amounts are compared exactly, so
// callers that store rounded amounts should round before validating.
func ValidateBid(amount, reservePrice decimal.Decimal, status models.AuctionStatus) BidValidation {
	if !amount.IsPositive() {
		return BidValidation{Reason: NonPositiveAmount}
	}
	if amount.GreaterThan(reservePrice) {
		return BidValidation{Reason: ExceedsCeiling}
	}
	if status != models.StatusLive {
		return BidValidation{Reason: AuctionNotLive}
	}
	return BidValidation{Valid: true}
}
