package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"auction-ranking/internal/auctionerrors"
	"auction-ranking/internal/models"
	"auction-ranking/utils"
)

const (
	DefaultMaxExtensions     = 3
	DefaultExtensionDuration = 30 // minutes
)

// NextStatus returns the status the auction should be in at now. Transitions
// only move forward: scheduled to live once started, anything to closed once
// the end time is reached.
func NextStatus(a models.Auction, now time.Time) models.AuctionStatus {
	if a.Status == models.StatusClosed {
		return models.StatusClosed
	}
	if !now.Before(a.EndTime) {
		return models.StatusClosed
	}
	if a.Status == models.StatusLive || !now.Before(a.StartTime) {
		return models.StatusLive
	}
	return models.StatusScheduled
}

// Extend pushes the auction's end time back and returns the extension record.
// The auction is modified in place only when the extension is accepted.
func Extend(a *models.Auction, req models.ExtensionRequest, now time.Time) (models.AuctionExtension, error) {
	if a.Status == models.StatusClosed {
		return models.AuctionExtension{}, fmt.Errorf("extend auction %s: %w", a.ID, auctionerrors.ErrAuctionClosed)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return models.AuctionExtension{}, fmt.Errorf("extend auction %s: %w - reason is required", a.ID, auctionerrors.ErrInvalidExtension)
	}

	maxExtensions := a.MaxExtensions
	if maxExtensions <= 0 {
		maxExtensions = DefaultMaxExtensions
	}
	if a.ExtensionCount >= maxExtensions {
		return models.AuctionExtension{}, fmt.Errorf("extend auction %s: %w - %d of %d used",
			a.ID, auctionerrors.ErrExtensionLimitReached, a.ExtensionCount, maxExtensions)
	}

	var newEnd time.Time
	switch {
	case req.NewEndTime != nil:
		newEnd = req.NewEndTime.UTC()
	case req.DurationMinutes < 0:
		return models.AuctionExtension{}, fmt.Errorf("extend auction %s: %w - negative duration", a.ID, auctionerrors.ErrInvalidExtension)
	default:
		minutes := req.DurationMinutes
		if minutes == 0 {
			minutes = a.ExtensionDurationMinutes
		}
		if minutes <= 0 {
			minutes = DefaultExtensionDuration
		}
		newEnd = a.EndTime.Add(time.Duration(minutes) * time.Minute)
	}

	if !newEnd.After(a.EndTime) {
		return models.AuctionExtension{}, fmt.Errorf("extend auction %s: %w - new end time must be after %s",
			a.ID, auctionerrors.ErrInvalidExtension, a.EndTime.Format(time.RFC3339))
	}

	ext := models.AuctionExtension{
		ID:              utils.GenerateID(),
		AuctionID:       a.ID,
		OriginalEndTime: a.EndTime,
		NewEndTime:      newEnd,
		DurationMinutes: int(newEnd.Sub(a.EndTime) / time.Minute),
		Reason:          req.Reason,
		ExtendedBy:      req.ExtendedBy,
		CreatedAt:       now,
	}

	if a.OriginalEndTime.IsZero() {
		a.OriginalEndTime = a.EndTime
	}
	a.EndTime = newEnd
	a.ExtensionCount++
	a.UpdatedAt = now

	return ext, nil
}
