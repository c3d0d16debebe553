package perftests

import (
	"fmt"
	"time"

	auction "auction-ranking/internal/auctionService"
	model "auction-ranking/internal/models"
	repository "auction-ranking/internal/repository"

	"github.com/shopspring/decimal"
)

const benchReserve = 1_000_000

// benchAuction returns an auction that stays live for the whole run
func benchAuction(id string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		ID:              id,
		Name:            "Benchmark auction " + id,
		Description:     "Load test auction",
		ReservePrice:    decimal.NewFromInt(benchReserve),
		StartTime:       now.Add(-time.Hour),
		EndTime:         now.Add(24 * time.Hour),
		OriginalEndTime: now.Add(24 * time.Hour),
		MaxExtensions:   3,
		Status:          model.StatusLive,
		CreatedAt:       now,
	}
}

// setupRepo creates repository and auction service with numAuctions live auctions
func setupRepo(numAuctions int) (*repository.MemoryRepo, *auction.AuctionService) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, nil)
	for i := 0; i < numAuctions; i++ {
		if err := repo.CreateAuction(benchAuction(fmt.Sprintf("auction_%d", i))); err != nil {
			panic(err)
		}
	}
	return repo, svc
}
