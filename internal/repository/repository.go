package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-ranking/internal/auctionerrors"
	model "auction-ranking/internal/models"
)

// AuctionDB defines the storage interface for auctions, bids and negotiations
type AuctionDB interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions(status model.AuctionStatus) ([]model.Auction, error)
	UpdateAuction(auction model.Auction) error

	RecordBid(bid model.Bid) error
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetAuctionsByVendor(vendorID string) ([]model.Auction, error)

	RecordExtension(ext model.AuctionExtension) error
	GetExtensions(auctionID string) ([]model.AuctionExtension, error)

	SaveChallenge(challenge model.ChallengePrice) error
	GetChallenge(challengeID string) (model.ChallengePrice, error)
	GetChallengesByAuction(auctionID string) ([]model.ChallengePrice, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu             sync.RWMutex
	auctions       map[string]model.Auction            // key: auctionID -> value: auction
	auctionOrder   []string                            // auction IDs in creation order
	bids           map[string][]model.Bid              // key: auctionID -> value: list of bids
	vendorAuctions map[string][]string                 // key: vendorID -> value: auctionIDs the vendor has bid on
	extensions     map[string][]model.AuctionExtension // key: auctionID -> value: extension log
	challenges     map[string]model.ChallengePrice     // key: challengeID -> value: challenge
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:       make(map[string]model.Auction),
		bids:           make(map[string][]model.Bid),
		vendorAuctions: make(map[string][]string),
		extensions:     make(map[string][]model.AuctionExtension),
		challenges:     make(map[string]model.ChallengePrice),
	}
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.ID == "" {
		return fmt.Errorf("create auction: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}
	if _, exists := r.auctions[auction.ID]; exists {
		return fmt.Errorf("create auction %s: %w - already exists", auction.ID, auctionerrors.ErrInvalidAuction)
	}

	r.auctions[auction.ID] = auction
	r.auctionOrder = append(r.auctionOrder, auction.ID)
	return nil
}

// GetAuction returns one auction by ID
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListAuctions returns auctions in creation order, optionally filtered by status
func (r *MemoryRepo) ListAuctions(status model.AuctionStatus) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctionOrder))
	for _, id := range r.auctionOrder {
		a := r.auctions[id]
		if status != "" && a.Status != status {
			continue
		}
		auctions = append(auctions, a)
	}
	return auctions, nil
}

// UpdateAuction replaces a stored auction
func (r *MemoryRepo) UpdateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.ID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.ID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.ID] = auction
	return nil
}

// RecordBid records a vendor's bid on an auction
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)

	for _, id := range r.vendorAuctions[bid.VendorID] {
		if id == bid.AuctionID {
			return nil
		}
	}
	r.vendorAuctions[bid.VendorID] = append(r.vendorAuctions[bid.VendorID], bid.AuctionID)

	return nil
}

// GetBidsByAuction returns all bids for an auction in submission order
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetAuctionsByVendor returns all auctions a vendor has bid on
func (r *MemoryRepo) GetAuctionsByVendor(vendorID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionIDs, ok := r.vendorAuctions[vendorID]
	if !ok || len(auctionIDs) == 0 {
		return nil, fmt.Errorf("get auctions for vendor %s: %w", vendorID, auctionerrors.ErrVendorNoBids)
	}

	auctions := make([]model.Auction, 0, len(auctionIDs))
	for _, id := range auctionIDs {
		if a, exists := r.auctions[id]; exists {
			auctions = append(auctions, a)
		}
	}
	return auctions, nil
}

// RecordExtension appends to an auction's extension log
func (r *MemoryRepo) RecordExtension(ext model.AuctionExtension) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[ext.AuctionID]; !ok {
		return fmt.Errorf("record extension for auction %s: %w", ext.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.extensions[ext.AuctionID] = append(r.extensions[ext.AuctionID], ext)
	return nil
}

// GetExtensions returns an auction's extension log, oldest first
func (r *MemoryRepo) GetExtensions(auctionID string) ([]model.AuctionExtension, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get extensions for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.AuctionExtension{}, r.extensions[auctionID]...), nil
}

// SaveChallenge inserts or replaces a challenge price
func (r *MemoryRepo) SaveChallenge(challenge model.ChallengePrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[challenge.AuctionID]; !ok {
		return fmt.Errorf("save challenge for auction %s: %w", challenge.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.challenges[challenge.ID] = challenge
	return nil
}

// GetChallenge returns one challenge price by ID
func (r *MemoryRepo) GetChallenge(challengeID string) (model.ChallengePrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.challenges[challengeID]
	if !ok {
		return model.ChallengePrice{}, fmt.Errorf("get challenge %s: %w", challengeID, auctionerrors.ErrChallengeNotFound)
	}
	return c, nil
}

// GetChallengesByAuction returns an auction's challenge prices, oldest first
func (r *MemoryRepo) GetChallengesByAuction(auctionID string) ([]model.ChallengePrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get challenges for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	challenges := make([]model.ChallengePrice, 0)
	for _, c := range r.challenges {
		if c.AuctionID == auctionID {
			challenges = append(challenges, c)
		}
	}
	sort.Slice(challenges, func(i, j int) bool {
		if !challenges[i].CreatedAt.Equal(challenges[j].CreatedAt) {
			return challenges[i].CreatedAt.Before(challenges[j].CreatedAt)
		}
		return challenges[i].ID < challenges[j].ID
	})
	return challenges, nil
}
