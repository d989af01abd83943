package scheduler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/lectern-dev/lectern/pkg/ingest"
)

//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

// Refresher runs the feed refresh batch and the retention purge
type Refresher interface {
	RefreshAll(ctx context.Context) ([]ingest.Outcome, error)
	Purge(ctx context.Context) (int64, error)
}

// Scheduler triggers a full feed refresh on a fixed interval and purges
// expired items after each completed refresh. At most one batch runs at a
// time; the refresher itself rejects overlapping invocations, so a cycle that
// collides with a user-triggered refresh is simply skipped.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

// NewScheduler creates a scheduler; a zero interval falls back to 30 minutes
func NewScheduler(refresher Refresher, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 30 * time.Minute
	}
	return &Scheduler{refresher: refresher, interval: interval}
}

// Start begins the refresh loop, running one cycle immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runCycle(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runCycle(ctx)
			}
		}
	}()

	log.Printf("[INFO] scheduler started, refresh interval %v", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	log.Printf("[INFO] scheduler stopped")
}

// runCycle refreshes all feeds and purges expired items afterwards
func (s *Scheduler) runCycle(ctx context.Context) {
	outcomes, err := s.refresher.RefreshAll(ctx)
	if err != nil {
		if errors.Is(err, ingest.ErrRefreshInProgress) {
			log.Printf("[INFO] refresh already running, skipping scheduled cycle")
			return
		}
		log.Printf("[ERROR] scheduled refresh failed: %v", err)
		return
	}

	totalNew := 0
	for _, outcome := range outcomes {
		totalNew += outcome.NewItems
	}
	log.Printf("[INFO] scheduled refresh complete, %d feeds, %d new items", len(outcomes), totalNew)

	if _, err := s.refresher.Purge(ctx); err != nil {
		log.Printf("[ERROR] purge failed: %v", err)
	}
}
