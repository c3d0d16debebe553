package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier for auctions, bids and negotiations
func GenerateID() string {
	return uuid.NewString()
}

// ShortID returns the first block of a UUID for compact display. Other
// identifiers are returned unchanged.
func ShortID(id string) string {
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return id
	}
	return id[:8]
}
