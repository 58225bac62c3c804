// Package scheduler runs the periodic maintenance jobs of the platform.
// Currently that is a single sweep closing active postings whose expiry
// date has passed.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"worklink/internal/config"
)

// JobCloser is the slice of the job repository the sweep needs.
type JobCloser interface {
	CloseExpired(ctx context.Context, now time.Time, batch int) (int64, error)
}

type Scheduler struct {
	cron   *cron.Cron
	jobs   JobCloser
	spec   string
	batch  int
	logger *log.Logger
	now    func() time.Time
}

func New(jobs JobCloser, cfg config.SchedulerConfig, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	spec := cfg.JobExpirySpec
	if spec == "" {
		spec = "@every 10m"
	}
	batch := cfg.SweepBatchSize
	if batch <= 0 {
		batch = 500
	}
	return &Scheduler{
		cron:   cron.New(),
		jobs:   jobs,
		spec:   spec,
		batch:  batch,
		logger: logger,
		now:    time.Now,
	}
}

// Start registers the sweep and starts the cron loop. One sweep runs
// immediately so expired postings do not linger until the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("register expiry sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("Scheduler started | spec=%s", s.spec)

	go s.sweep(ctx)
	return nil
}

// Stop halts the cron loop. A sweep already running finishes on its own.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}
	s.cron.Stop()
	s.logger.Printf("Scheduler stopped")
}

func (s *Scheduler) sweep(ctx context.Context) {
	closed, err := s.jobs.CloseExpired(ctx, s.now().UTC(), s.batch)
	if err != nil {
		s.logger.Printf("Expiry sweep failed | error=%v", err)
		return
	}
	if closed > 0 {
		s.logger.Printf("Expiry sweep | closed=%d", closed)
	}
}
