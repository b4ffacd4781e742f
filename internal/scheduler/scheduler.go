// Package scheduler wires up the cron job that keeps the offer catalog
// fresh: stale offers are expired and the platform-stats cache is rewarmed.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"jobboard/internal/services"
)

// Scheduler wraps robfig/cron and runs the periodic maintenance sweep.
type Scheduler struct {
	cron          *cron.Cron
	jobs          *services.JobService
	stats         *services.StatsService
	retentionDays int
	spec          string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(jobs *services.JobService, stats *services.StatsService, retentionDays, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		jobs:          jobs,
		stats:         stats,
		retentionDays: retentionDays,
		spec:          fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the sweep and starts the cron. Also runs once immediately
// so a restart does not wait a full interval to expire stale offers.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] cron started, spec: %s", s.spec)

	go s.Sweep(ctx)
	return nil
}

// Stop gracefully shuts down the cron.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] cron stopped")
}

// Sweep expires offers older than the retention window and refreshes the
// cached platform stats.
func (s *Scheduler) Sweep(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	expired, err := s.jobs.ExpireOlderThan(cutoff)
	if err != nil {
		log.Printf("[scheduler] expire sweep error: %v", err)
	} else if expired > 0 {
		log.Printf("[scheduler] expired %d stale offer(s)", expired)
	}

	if err := s.stats.RefreshPlatform(ctx); err != nil {
		log.Printf("[scheduler] stats refresh error: %v", err)
	}
}
