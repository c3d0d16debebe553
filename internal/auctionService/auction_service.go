package auction

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-ranking/internal/auctionerrors"
	"auction-ranking/internal/lifecycle"
	"auction-ranking/internal/live"
	"auction-ranking/internal/metrics"
	"auction-ranking/internal/models"
	"auction-ranking/internal/ranking"
	"auction-ranking/internal/repository"
	"auction-ranking/utils"

	"github.com/shopspring/decimal"
)

const monetaryPlaces = 2

// Notifier receives an update whenever an auction's state or ranking changes
type Notifier interface {
	Publish(update live.AuctionUpdate)
}

type noopNotifier struct{}

func (noopNotifier) Publish(live.AuctionUpdate) {}

// AuctionService defines the business logic for reverse auctions
type AuctionService struct {
	repo     repository.AuctionDB
	notifier Notifier

	// mu serializes writes so a bid is always validated against the state it is recorded in
	mu  sync.Mutex
	now func() time.Time
}

// NewAuctionService creates a new AuctionService instance. notifier may be nil.
func NewAuctionService(repo repository.AuctionDB, notifier Notifier) *AuctionService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &AuctionService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateAuction validates and stores a new auction. Its initial status follows
// from the start and end times.
func (s *AuctionService) CreateAuction(req models.NewAuction) (models.Auction, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Auction{}, fmt.Errorf("service: %w - name is required", auctionerrors.ErrInvalidAuction)
	}
	if !req.ReservePrice.IsPositive() {
		return models.Auction{}, fmt.Errorf("service: %w - reserve price must be positive", auctionerrors.ErrInvalidAuction)
	}
	if req.StartTime.IsZero() || !req.EndTime.After(req.StartTime) {
		return models.Auction{}, fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidAuction)
	}
	if req.MaxExtensions < 0 || req.ExtensionDurationMinutes < 0 {
		return models.Auction{}, fmt.Errorf("service: %w - extension settings must not be negative", auctionerrors.ErrInvalidAuction)
	}

	maxExtensions := req.MaxExtensions
	if maxExtensions == 0 {
		maxExtensions = lifecycle.DefaultMaxExtensions
	}
	duration := req.ExtensionDurationMinutes
	if duration == 0 {
		duration = lifecycle.DefaultExtensionDuration
	}

	now := s.now().UTC()
	auction := models.Auction{
		ID:                       utils.GenerateID(),
		Name:                     strings.TrimSpace(req.Name),
		Description:              req.Description,
		ReservePrice:             req.ReservePrice.Round(monetaryPlaces),
		StartTime:                req.StartTime.UTC(),
		EndTime:                  req.EndTime.UTC(),
		OriginalEndTime:          req.EndTime.UTC(),
		MaxExtensions:            maxExtensions,
		ExtensionDurationMinutes: duration,
		Status:                   models.StatusScheduled,
		CreatedBy:                req.CreatedBy,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	auction.Status = lifecycle.NextStatus(auction, now)

	if err := s.repo.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", auction.Name, err)
	}

	return auction, nil
}

// GetAuction returns a single auction
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns all auctions, or only those in status when it is set
func (s *AuctionService) ListAuctions(status models.AuctionStatus) ([]models.Auction, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidAuction, status)
	}

	auctions, err := s.repo.ListAuctions(status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetAuctionsByVendor returns all auctions a vendor has placed bids on
func (s *AuctionService) GetAuctionsByVendor(vendorID string) ([]models.Auction, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("service: %w - empty vendor ID", auctionerrors.ErrInvalidBid)
	}

	auctions, err := s.repo.GetAuctionsByVendor(vendorID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for vendor %s: %w", vendorID, err)
	}
	return auctions, nil
}

// PlaceBid validates and records a vendor's bid. The auction must be live at
// the time of submission, whatever status was last stored for it.
func (s *AuctionService) PlaceBid(auctionID, vendorID string, amount decimal.Decimal) (models.Bid, error) {
	if auctionID == "" || vendorID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or vendorID", auctionerrors.ErrInvalidBid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	now := s.now().UTC()
	status := lifecycle.NextStatus(auction, now)

	// validate what will be stored: 0.004 rounds to zero
	amount = amount.Round(monetaryPlaces)
	if v := ranking.ValidateBid(amount, auction.ReservePrice, status); !v.Valid {
		metrics.RecordBid(string(v.Reason))
		return models.Bid{}, rejection(v, amount, auction.ReservePrice, status)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		VendorID:  vendorID,
		Amount:    amount,
		CreatedAt: now,
	}

	if err := s.repo.RecordBid(bid); err != nil {
		metrics.RecordBid("error")
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by vendor %s: %w", auctionID, vendorID, err)
	}
	metrics.RecordBid("accepted")

	if !auction.CurrentBid.Valid || bid.Amount.LessThan(auction.CurrentBid.Decimal) {
		auction.CurrentBid = decimal.NewNullDecimal(bid.Amount)
		auction.UpdatedAt = now
		if err := s.repo.UpdateAuction(auction); err != nil {
			// the bid is stored; current_bid is recomputed from bids on the next update
			utils.Error("PlaceBid: failed to update current bid", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
	}

	s.publish(auction, map[string]any{"current_bid": auction.CurrentBid})

	return bid, nil
}

func rejection(v ranking.BidValidation, amount, reserve decimal.Decimal, status models.AuctionStatus) error {
	switch v.Reason {
	case ranking.ExceedsCeiling:
		return fmt.Errorf("service: %w - bid of %s is above the ceiling of %s",
			v.Err(), amount.StringFixed(monetaryPlaces), reserve.StringFixed(monetaryPlaces))
	case ranking.AuctionNotLive:
		return fmt.Errorf("service: %w - auction is %s", v.Err(), status)
	default:
		return fmt.Errorf("service: %w", v.Err())
	}
}

// GetBidsForAuction returns all bids for a specific auction
func (s *AuctionService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetRankings ranks the auction's vendors, applying accepted challenge and
// counter prices. An auction without bids has an empty ranking.
func (s *AuctionService) GetRankings(auctionID string) (ranking.Result, error) {
	if auctionID == "" {
		return ranking.Result{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return ranking.Result{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	result, _, err := s.rankAuction(auction)
	if err != nil {
		return ranking.Result{}, err
	}
	return result, nil
}

// GetWinningBid returns the current L1 entry
func (s *AuctionService) GetWinningBid(auctionID string) (ranking.Entry, error) {
	result, err := s.GetRankings(auctionID)
	if err != nil {
		return ranking.Entry{}, err
	}

	winner, ok := result.Winner()
	if !ok {
		return ranking.Entry{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return winner, nil
}

// GetBidStats summarises bidding activity on an auction
func (s *AuctionService) GetBidStats(auctionID string) (models.BidStats, error) {
	if auctionID == "" {
		return models.BidStats{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.BidStats{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	result, bids, err := s.rankAuction(auction)
	if err != nil {
		return models.BidStats{}, err
	}

	stats := models.BidStats{
		TotalBids:     len(bids),
		UniqueVendors: len(result.Entries),
	}
	for _, b := range bids {
		if !stats.LowestBid.Valid || b.Amount.LessThan(stats.LowestBid.Decimal) {
			stats.LowestBid = decimal.NewNullDecimal(b.Amount)
		}
	}
	if winner, ok := result.Winner(); ok {
		stats.LeadingVendorID = winner.VendorID
	}

	return stats, nil
}

// rankAuction loads the bids and negotiated prices of an auction and ranks them
func (s *AuctionService) rankAuction(auction models.Auction) (ranking.Result, []models.Bid, error) {
	bids, err := s.repo.GetBidsByAuction(auction.ID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		return ranking.Result{}, nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auction.ID, err)
	}

	challenges, err := s.repo.GetChallengesByAuction(auction.ID)
	if err != nil {
		return ranking.Result{}, nil, fmt.Errorf("service: failed to get challenge prices for auction %s: %w", auction.ID, err)
	}

	start := time.Now()
	result := ranking.ComputeRankingsWithOverrides(bids, auction.ReservePrice, ranking.ApplyPriceOverrides(challenges))
	metrics.ObserveRanking(time.Since(start), len(result.Skipped))

	for _, skipped := range result.Skipped {
		utils.Warn("rankAuction: bid record skipped", map[string]any{
			"auction_id": auction.ID,
			"bid_id":     skipped.BidID,
			"reason":     skipped.Reason,
		})
	}
	for _, e := range result.Entries {
		if e.CeilingBreached {
			utils.Warn("rankAuction: ranked amount exceeds ceiling price", map[string]any{
				"auction_id":    auction.ID,
				"vendor_id":     e.VendorID,
				"amount":        e.Amount.String(),
				"reserve_price": auction.ReservePrice.String(),
			})
		}
	}

	return result, bids, nil
}

// publish recomputes the ranking and notifies subscribers. Failures are logged
// because the write that triggered the update has already succeeded.
func (s *AuctionService) publish(auction models.Auction, updates map[string]any) {
	result, bids, err := s.rankAuction(auction)
	if err != nil {
		utils.Error("publish: failed to rank auction for update", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
		return
	}

	updates["bid_count"] = len(bids)
	s.notifier.Publish(live.NewAuctionUpdate(auction.ID, updates, result))
}
