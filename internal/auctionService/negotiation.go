package auction

import (
	"errors"
	"fmt"

	"auction-ranking/internal/auctionerrors"
	"auction-ranking/internal/lifecycle"
	"auction-ranking/internal/models"
	"auction-ranking/utils"

	"github.com/shopspring/decimal"
)

// CreateChallenge asks a vendor to lower its price below its best bid
func (s *AuctionService) CreateChallenge(auctionID string, req models.NewChallenge) (models.ChallengePrice, error) {
	if auctionID == "" || req.VendorID == "" || req.BidID == "" {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - auction, vendor and bid are required", auctionerrors.ErrInvalidChallenge)
	}
	amount := req.ChallengeAmount.Round(monetaryPlaces)
	if !amount.IsPositive() {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - challenge amount must be positive", auctionerrors.ErrInvalidChallenge)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	auction, err := s.openAuction(auctionID)
	if err != nil {
		return models.ChallengePrice{}, err
	}

	best, found, err := s.vendorBest(auctionID, req.VendorID, req.BidID)
	if err != nil {
		return models.ChallengePrice{}, err
	}
	if !found {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - bid %s is not a bid of vendor %s in this auction",
			auctionerrors.ErrInvalidChallenge, req.BidID, req.VendorID)
	}

	if !amount.LessThan(best) {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - challenge of %s must be below the vendor's best bid of %s",
			auctionerrors.ErrInvalidChallenge, amount.StringFixed(monetaryPlaces), best.StringFixed(monetaryPlaces))
	}

	existing, err := s.repo.GetChallengesByAuction(auctionID)
	if err != nil {
		return models.ChallengePrice{}, fmt.Errorf("service: failed to get challenge prices for auction %s: %w", auctionID, err)
	}
	for _, c := range existing {
		if c.VendorID == req.VendorID && (c.Status == models.ResponsePending || c.CounterStatus == models.ResponsePending) {
			return models.ChallengePrice{}, fmt.Errorf("service: %w - challenge %s for vendor %s is still open",
				auctionerrors.ErrInvalidChallenge, c.ID, req.VendorID)
		}
	}

	now := s.now().UTC()
	challenge := models.ChallengePrice{
		ID:              utils.GenerateID(),
		AuctionID:       auction.ID,
		VendorID:        req.VendorID,
		BidID:           req.BidID,
		ChallengeAmount: amount,
		Status:          models.ResponsePending,
		ChallengedBy:    req.ChallengedBy,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.SaveChallenge(challenge); err != nil {
		return models.ChallengePrice{}, fmt.Errorf("service: failed to save challenge for auction %s: %w", auctionID, err)
	}

	return challenge, nil
}

// GetChallenges returns the challenge prices issued in an auction
func (s *AuctionService) GetChallenges(auctionID string) ([]models.ChallengePrice, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidChallenge)
	}

	challenges, err := s.repo.GetChallengesByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get challenge prices for auction %s: %w", auctionID, err)
	}
	return challenges, nil
}

// RespondToChallenge records the vendor's answer to a pending challenge.
// Accepting it ranks the vendor at the challenge amount.
func (s *AuctionService) RespondToChallenge(challengeID string, accept bool, response string) (models.ChallengePrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, auction, err := s.loadChallenge(challengeID)
	if err != nil {
		return models.ChallengePrice{}, err
	}
	if challenge.Status != models.ResponsePending {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - challenge %s is %s", auctionerrors.ErrChallengeResolved, challengeID, challenge.Status)
	}

	now := s.now().UTC()
	challenge.Status = responseStatus(accept)
	challenge.VendorResponse = response
	challenge.RespondedAt = &now
	challenge.UpdatedAt = now

	if err := s.repo.SaveChallenge(challenge); err != nil {
		return models.ChallengePrice{}, fmt.Errorf("service: failed to save challenge %s: %w", challengeID, err)
	}

	if accept {
		s.publish(auction, map[string]any{"challenge_id": challenge.ID, "challenge_status": challenge.Status})
	}
	return challenge, nil
}

// CounterChallenge lets a vendor that rejected a challenge offer a price between
// the challenge amount and its best bid.
func (s *AuctionService) CounterChallenge(challengeID string, amount decimal.Decimal, notes string) (models.ChallengePrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, _, err := s.loadChallenge(challengeID)
	if err != nil {
		return models.ChallengePrice{}, err
	}
	if challenge.Status != models.ResponseRejected {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - only a rejected challenge can be countered, challenge %s is %s",
			auctionerrors.ErrInvalidChallenge, challengeID, challenge.Status)
	}
	if challenge.CounterStatus != "" {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - challenge %s already has a counter price", auctionerrors.ErrChallengeResolved, challengeID)
	}

	best, _, err := s.vendorBest(challenge.AuctionID, challenge.VendorID, "")
	if err != nil {
		return models.ChallengePrice{}, err
	}

	counter := amount.Round(monetaryPlaces)
	if !counter.GreaterThan(challenge.ChallengeAmount) || !counter.LessThan(best) {
		return models.ChallengePrice{}, fmt.Errorf("service: %w - counter of %s must be above %s and below %s",
			auctionerrors.ErrInvalidChallenge, counter.StringFixed(monetaryPlaces),
			challenge.ChallengeAmount.StringFixed(monetaryPlaces), best.StringFixed(monetaryPlaces))
	}

	challenge.CounterAmount = decimal.NewNullDecimal(counter)
	challenge.CounterStatus = models.ResponsePending
	challenge.CounterNotes = notes
	challenge.UpdatedAt = s.now().UTC()

	if err := s.repo.SaveChallenge(challenge); err != nil {
		return models.ChallengePrice{}, fmt.Errorf("service: failed to save challenge %s: %w", challengeID, err)
	}
	return challenge, nil
}

// RespondToCounter records the buyer's answer to a vendor's counter price.
// Accepting it ranks the vendor at the counter amount.
func (s *AuctionService) RespondToCounter(challengeID string, accept bool) (models.ChallengePrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, auction, err := s.loadChallenge(challengeID)
	if err != nil {
		return models.ChallengePrice{}, err
	}
	switch challenge.CounterStatus {
	case models.ResponsePending:
	case "":
		return models.ChallengePrice{}, fmt.Errorf("service: %w - challenge %s has no counter price", auctionerrors.ErrInvalidChallenge, challengeID)
	default:
		return models.ChallengePrice{}, fmt.Errorf("service: %w - counter price of challenge %s is %s",
			auctionerrors.ErrChallengeResolved, challengeID, challenge.CounterStatus)
	}

	now := s.now().UTC()
	challenge.CounterStatus = responseStatus(accept)
	challenge.CounterRespondedAt = &now
	challenge.UpdatedAt = now

	if err := s.repo.SaveChallenge(challenge); err != nil {
		return models.ChallengePrice{}, fmt.Errorf("service: failed to save challenge %s: %w", challengeID, err)
	}

	if accept {
		s.publish(auction, map[string]any{"challenge_id": challenge.ID, "counter_status": challenge.CounterStatus})
	}
	return challenge, nil
}

func responseStatus(accept bool) models.ResponseStatus {
	if accept {
		return models.ResponseAccepted
	}
	return models.ResponseRejected
}

// openAuction loads an auction that has not ended yet
func (s *AuctionService) openAuction(auctionID string) (models.Auction, error) {
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if lifecycle.NextStatus(auction, s.now().UTC()) == models.StatusClosed {
		return models.Auction{}, fmt.Errorf("service: %w - auction %s has ended", auctionerrors.ErrAuctionClosed, auctionID)
	}
	return auction, nil
}

// loadChallenge loads a challenge together with its auction, which must still be open
func (s *AuctionService) loadChallenge(challengeID string) (models.ChallengePrice, models.Auction, error) {
	if challengeID == "" {
		return models.ChallengePrice{}, models.Auction{}, fmt.Errorf("service: %w - empty challenge ID", auctionerrors.ErrInvalidChallenge)
	}

	challenge, err := s.repo.GetChallenge(challengeID)
	if err != nil {
		return models.ChallengePrice{}, models.Auction{}, fmt.Errorf("service: failed to get challenge %s: %w", challengeID, err)
	}

	auction, err := s.openAuction(challenge.AuctionID)
	if err != nil {
		return models.ChallengePrice{}, models.Auction{}, err
	}
	return challenge, auction, nil
}

// vendorBest returns the vendor's lowest bid in the auction. found reports
// whether bidID is one of the vendor's bids; with an empty bidID it reports
// whether the vendor has bid at all.
func (s *AuctionService) vendorBest(auctionID, vendorID, bidID string) (best decimal.Decimal, found bool, err error) {
	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		return decimal.Decimal{}, false, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	seen := false
	for _, b := range bids {
		if b.VendorID != vendorID {
			continue
		}
		if !seen || b.Amount.LessThan(best) {
			best = b.Amount
		}
		seen = true
		if bidID == "" || b.BidID == bidID {
			found = true
		}
	}
	if !seen {
		return decimal.Decimal{}, false, fmt.Errorf("service: %w - vendor %s has no bids in auction %s",
			auctionerrors.ErrInvalidChallenge, vendorID, auctionID)
	}
	return best, found, nil
}
