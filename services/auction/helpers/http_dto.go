package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs

// Amounts are pointers so that "required" can tell a missing amount from zero.
// Non-positive amounts are rejected by bid validation with a specific reason.

type CreateAuctionRequest struct {
	Name                     string           `json:"name" binding:"required"`
	Description              string           `json:"description"`
	ReservePrice             *decimal.Decimal `json:"reserve_price" binding:"required"`
	StartTime                time.Time        `json:"start_time" binding:"required"`
	EndTime                  time.Time        `json:"end_time" binding:"required"`
	MaxExtensions            int              `json:"max_extensions" binding:"gte=0"`
	ExtensionDurationMinutes int              `json:"extension_duration_minutes" binding:"gte=0"`
	CreatedBy                string           `json:"created_by"`
}

type PlaceBidRequest struct {
	AuctionID string           `json:"auction_id" binding:"required"`
	VendorID  string           `json:"vendor_id" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	VendorID  string          `json:"vendor_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

type ExtendAuctionRequest struct {
	NewEndTime      *time.Time `json:"new_end_time"`
	DurationMinutes int        `json:"duration_minutes" binding:"gte=0"`
	Reason          string     `json:"reason" binding:"required"`
	ExtendedBy      string     `json:"extended_by"`
}

type CreateChallengeRequest struct {
	VendorID        string           `json:"vendor_id" binding:"required"`
	BidID           string           `json:"bid_id" binding:"required"`
	ChallengeAmount *decimal.Decimal `json:"challenge_amount" binding:"required"`
	ChallengedBy    string           `json:"challenged_by"`
	Notes           string           `json:"notes"`
}

type RespondChallengeRequest struct {
	Accept   *bool  `json:"accept" binding:"required"`
	Response string `json:"response"`
}

type CounterChallengeRequest struct {
	CounterAmount *decimal.Decimal `json:"counter_amount" binding:"required"`
	Notes         string           `json:"notes"`
}

type RespondCounterRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
