package ranking

import "auction-ranking/internal/models"

// ApplyPriceOverrides collects the negotiated prices that replace vendors' best
// bids. An accepted counter price beats an accepted challenge price; among
// overrides of the same kind the lowest amount wins.
func ApplyPriceOverrides(challenges []models.ChallengePrice) map[string]Override {
	overrides := make(map[string]Override)

	for _, c := range challenges {
		o, ok := overrideFor(c)
		if !ok {
			continue
		}

		current, exists := overrides[c.VendorID]
		if !exists ||
			priority(o.Source) > priority(current.Source) ||
			(o.Source == current.Source && o.Amount.LessThan(current.Amount)) {
			overrides[c.VendorID] = o
		}
	}

	return overrides
}

func overrideFor(c models.ChallengePrice) (Override, bool) {
	if c.CounterStatus == models.ResponseAccepted && c.CounterAmount.Valid {
		return Override{VendorID: c.VendorID, Amount: c.CounterAmount.Decimal, Source: SourceCounter}, true
	}
	if c.Status == models.ResponseAccepted {
		return Override{VendorID: c.VendorID, Amount: c.ChallengeAmount, Source: SourceChallenge}, true
	}
	return Override{}, false
}

func priority(s PriceSource) int {
	switch s {
	case SourceCounter:
		return 2
	case SourceChallenge:
		return 1
	}
	return 0
}
