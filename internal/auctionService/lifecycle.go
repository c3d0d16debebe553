package auction

import (
	"errors"
	"fmt"
	"time"

	"auction-ranking/internal/auctionerrors"
	"auction-ranking/internal/lifecycle"
	"auction-ranking/internal/metrics"
	"auction-ranking/internal/models"
	"auction-ranking/utils"

	"github.com/shopspring/decimal"
)

// ExtendAuction pushes back the end time of an auction that has not ended
func (s *AuctionService) ExtendAuction(auctionID string, req models.ExtensionRequest) (models.AuctionExtension, error) {
	if auctionID == "" {
		return models.AuctionExtension{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidExtension)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.AuctionExtension{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	now := s.now().UTC()
	// an auction past its end time is closed even before the scheduler records it
	auction.Status = lifecycle.NextStatus(auction, now)

	ext, err := lifecycle.Extend(&auction, req, now)
	if err != nil {
		return models.AuctionExtension{}, fmt.Errorf("service: %w", err)
	}

	if err := s.repo.UpdateAuction(auction); err != nil {
		return models.AuctionExtension{}, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}
	if err := s.repo.RecordExtension(ext); err != nil {
		return models.AuctionExtension{}, fmt.Errorf("service: failed to record extension for auction %s: %w", auctionID, err)
	}

	utils.Info("ExtendAuction: auction extended", map[string]any{
		"auction_id":      auctionID,
		"new_end_time":    ext.NewEndTime.Format(time.RFC3339),
		"extension_count": auction.ExtensionCount,
		"reason":          ext.Reason,
	})

	s.publish(auction, map[string]any{
		"end_time":        auction.EndTime,
		"extension_count": auction.ExtensionCount,
		"status":          auction.Status,
	})

	return ext, nil
}

// GetExtensions returns an auction's extension log, oldest first
func (s *AuctionService) GetExtensions(auctionID string) ([]models.AuctionExtension, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	exts, err := s.repo.GetExtensions(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get extensions for auction %s: %w", auctionID, err)
	}
	return exts, nil
}

// RefreshStatuses moves every open auction to the status its times call for.
// Closing an auction records its winner from the final ranking. It returns the
// number of auctions changed; a failure on one auction does not stop the rest.
func (s *AuctionService) RefreshStatuses(now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auctions, err := s.repo.ListAuctions("")
	if err != nil {
		return 0, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	var errs []error
	updated := 0

	for _, auction := range auctions {
		next := lifecycle.NextStatus(auction, now)
		if next == auction.Status {
			continue
		}

		previous := auction.Status
		auction.Status = next
		auction.UpdatedAt = now

		if next == models.StatusClosed {
			if err := s.freezeWinner(&auction); err != nil {
				errs = append(errs, err)
				continue
			}
		}

		if err := s.repo.UpdateAuction(auction); err != nil {
			errs = append(errs, fmt.Errorf("service: failed to update status of auction %s: %w", auction.ID, err))
			continue
		}

		updated++
		metrics.RecordStatusTransition(string(previous), string(next))
		utils.Info("RefreshStatuses: auction status changed", map[string]any{
			"auction_id": auction.ID,
			"from":       previous,
			"to":         next,
			"winner_id":  auction.WinnerID,
		})

		updates := map[string]any{"status": next}
		if auction.WinnerID != "" {
			updates["winner_id"] = auction.WinnerID
			updates["winning_bid"] = auction.WinningBid
		}
		s.publish(auction, updates)
	}

	return updated, errors.Join(errs...)
}

func (s *AuctionService) freezeWinner(auction *models.Auction) error {
	result, _, err := s.rankAuction(*auction)
	if err != nil {
		return err
	}

	if winner, ok := result.Winner(); ok {
		auction.WinnerID = winner.VendorID
		auction.WinningBid = decimal.NewNullDecimal(winner.Amount)
	}
	return nil
}
