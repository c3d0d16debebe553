package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-ranking/utils"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule matches the one-minute sweep of auction statuses
const DefaultSchedule = "@every 1m"

// StatusRefresher moves auctions to the status their times call for and
// reports how many changed.
type StatusRefresher interface {
	RefreshStatuses(now time.Time) (int, error)
}

// Scheduler periodically refreshes auction statuses on a cron schedule
type Scheduler struct {
	cron      *cron.Cron
	refresher StatusRefresher
	now       func() time.Time
}

// NewScheduler registers the refresh job; it does not start running until Start
func NewScheduler(refresher StatusRefresher, schedule string) (*Scheduler, error) {
	if refresher == nil {
		return nil, errors.New("status refresher is nil")
	}
	if schedule == "" {
		schedule = DefaultSchedule
	}

	s := &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		now:       time.Now,
	}

	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("schedule status refresh %q: %w", schedule, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule; the returned context is done once a running tick finishes
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunOnce performs a single refresh synchronously
func (s *Scheduler) RunOnce() (int, error) {
	updated, err := s.refresher.RefreshStatuses(s.now().UTC())
	if err != nil {
		return updated, fmt.Errorf("refresh auction statuses: %w", err)
	}
	return updated, nil
}

func (s *Scheduler) tick() {
	updated, err := s.RunOnce()
	if err != nil {
		utils.Error("Scheduler: status refresh failed", map[string]any{"error": err.Error()})
		return
	}
	if updated > 0 {
		utils.Info("Scheduler: auction statuses updated", map[string]any{"updated": updated})
	}
}
