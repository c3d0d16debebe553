package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrNoBids            = errors.New("no bids found for auction")
	ErrVendorNoBids      = errors.New("vendor has not placed any bids")
	ErrChallengeNotFound = errors.New("challenge price not found")
)

// bid validation errors, one per rejection reason of ranking.ValidateBid
var (
	ErrNonPositiveAmount = errors.New("bid amount must be greater than zero")
	ErrExceedsCeiling    = errors.New("bid amount exceeds ceiling price")
	ErrAuctionNotLive    = errors.New("auction is not live")
)

// business logic errors
var (
	ErrInvalidBid            = errors.New("invalid bid")
	ErrInvalidAuction        = errors.New("invalid auction")
	ErrMalformedBidRecord    = errors.New("malformed bid record")
	ErrAuctionClosed         = errors.New("auction is closed")
	ErrInvalidExtension      = errors.New("invalid extension")
	ErrExtensionLimitReached = errors.New("extension limit reached")
	ErrInvalidChallenge      = errors.New("invalid challenge price")
	ErrChallengeResolved     = errors.New("challenge price already resolved")
)
