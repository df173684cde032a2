package workload

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the generator on a cron schedule. It supports the
// standard 5-field cron syntax and descriptors such as "@every 30s".
type Scheduler struct {
	gen     *Generator
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewScheduler creates a scheduler driving gen. If logger is nil,
// slog.Default() is used.
func NewScheduler(gen *Generator, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		gen:    gen,
		cron:   cron.New(),
		logger: logger.With("component", "workload.scheduler"),
	}
}

// Start begins scheduled generation using the generator's configured
// schedule.
//
// Common schedules:
//   - "@every 30s"   - Every 30 seconds
//   - "*/5 * * * *"  - Every 5 minutes
//   - "0 * * * *"    - Hourly
//
// If the schedule is empty, the scheduler does nothing. The scheduler
// stops when ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule := s.gen.Config().Schedule
	if schedule == "" {
		s.logger.Info("workload schedule not configured, skipping scheduler")
		return nil
	}

	// Validate cron expression
	_, err := cron.ParseStandard(schedule)
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	_, err = s.cron.AddFunc(schedule, func() {
		s.runBatch(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule workload: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("workload scheduler started",
		"schedule", schedule,
	)

	// Wait for context cancellation in background
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runBatch executes one generation pass.
func (s *Scheduler) runBatch(ctx context.Context) {
	s.logger.Debug("starting scheduled workload batch")

	stats := s.gen.Run(ctx)

	s.logger.Info("scheduled workload batch complete",
		"traces", stats.Traces,
		"spans", stats.Spans,
		"errors", stats.Errors,
	)
}

// Stop stops the scheduler and waits for a running batch to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done() // Wait for running jobs to finish
		s.running = false
		s.logger.Info("workload scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled generation time.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
