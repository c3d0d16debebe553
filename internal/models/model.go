package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the server-authoritative lifecycle state of an auction
type AuctionStatus string

const (
	StatusScheduled AuctionStatus = "scheduled"
	StatusLive      AuctionStatus = "live"
	StatusClosed    AuctionStatus = "closed"
)

// Valid reports whether s is one of the known lifecycle states
func (s AuctionStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusClosed:
		return true
	}
	return false
}

// Auction represents a reverse auction for a procurement need
type Auction struct {
	ID                       string              `gorm:"primaryKey;type:varchar(36)" json:"auction_id"`
	Name                     string              `gorm:"type:varchar(255);not null" json:"name"`
	Description              string              `gorm:"type:text" json:"description"`
	ReservePrice             decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"reserve_price"`
	CurrentBid               decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"current_bid"`
	StartTime                time.Time           `gorm:"not null" json:"start_time"`
	EndTime                  time.Time           `gorm:"not null" json:"end_time"`
	OriginalEndTime          time.Time           `gorm:"not null" json:"original_end_time"`
	ExtensionCount           int                 `gorm:"not null;default:0" json:"extension_count"`
	MaxExtensions            int                 `gorm:"not null;default:3" json:"max_extensions"`
	ExtensionDurationMinutes int                 `gorm:"not null;default:30" json:"extension_duration_minutes"`
	Status                   AuctionStatus       `gorm:"type:varchar(16);index;not null" json:"status"`
	WinnerID                 string              `gorm:"type:varchar(64)" json:"winner_id,omitempty"`
	WinningBid               decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"winning_bid"`
	CreatedBy                string              `gorm:"type:varchar(64)" json:"created_by,omitempty"`
	CreatedAt                time.Time           `json:"created_at"`
	UpdatedAt                time.Time           `json:"updated_at"`
}

// Bid represents a vendor's offer in an auction
type Bid struct {
	BidID     string          `gorm:"primaryKey;type:varchar(36)" json:"bid_id"`
	AuctionID string          `gorm:"type:varchar(36);index;not null" json:"auction_id"`
	VendorID  string          `gorm:"type:varchar(64);index;not null" json:"vendor_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuctionExtension records one change of an auction's end time
type AuctionExtension struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"extension_id"`
	AuctionID       string    `gorm:"type:varchar(36);index;not null" json:"auction_id"`
	OriginalEndTime time.Time `gorm:"not null" json:"original_end_time"`
	NewEndTime      time.Time `gorm:"not null" json:"new_end_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Reason          string    `gorm:"type:text" json:"reason"`
	ExtendedBy      string    `gorm:"type:varchar(64)" json:"extended_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ResponseStatus is the state of a challenge or counter price
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseAccepted ResponseStatus = "accepted"
	ResponseRejected ResponseStatus = "rejected"
)

// ChallengePrice is a buyer's request that a vendor lower its price, with the
// vendor's optional counter offer.
type ChallengePrice struct {
	ID                 string              `gorm:"primaryKey;type:varchar(36)" json:"challenge_id"`
	AuctionID          string              `gorm:"type:varchar(36);index;not null" json:"auction_id"`
	VendorID           string              `gorm:"type:varchar(64);index;not null" json:"vendor_id"`
	BidID              string              `gorm:"type:varchar(36);not null" json:"bid_id"`
	ChallengeAmount    decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"challenge_amount"`
	Status             ResponseStatus      `gorm:"type:varchar(16);not null" json:"status"`
	ChallengedBy       string              `gorm:"type:varchar(64)" json:"challenged_by,omitempty"`
	Notes              string              `gorm:"type:text" json:"notes,omitempty"`
	VendorResponse     string              `gorm:"type:text" json:"vendor_response,omitempty"`
	RespondedAt        *time.Time          `json:"responded_at,omitempty"`
	CounterAmount      decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"counter_amount"`
	CounterStatus      ResponseStatus      `gorm:"type:varchar(16)" json:"counter_status,omitempty"`
	CounterNotes       string              `gorm:"type:text" json:"counter_notes,omitempty"`
	CounterRespondedAt *time.Time          `json:"counter_responded_at,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// NewAuction carries the caller-supplied fields of an auction to create
type NewAuction struct {
	Name                     string
	Description              string
	ReservePrice             decimal.Decimal
	StartTime                time.Time
	EndTime                  time.Time
	MaxExtensions            int
	ExtensionDurationMinutes int
	CreatedBy                string
}

// ExtensionRequest asks for an auction's end time to be pushed back. Either
// NewEndTime or DurationMinutes may be set; with neither the auction's default
// extension duration applies.
type ExtensionRequest struct {
	NewEndTime      *time.Time
	DurationMinutes int
	Reason          string
	ExtendedBy      string
}

// NewChallenge carries a buyer's proposed lower price for one vendor
type NewChallenge struct {
	VendorID        string
	BidID           string
	ChallengeAmount decimal.Decimal
	ChallengedBy    string
	Notes           string
}

// BidStats summarises participation in an auction
type BidStats struct {
	TotalBids       int                 `json:"total_bids"`
	UniqueVendors   int                 `json:"unique_vendors"`
	LowestBid       decimal.NullDecimal `json:"lowest_bid"`
	LeadingVendorID string              `json:"leading_vendor_id,omitempty"`
}
