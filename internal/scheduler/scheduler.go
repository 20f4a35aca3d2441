// Package scheduler re-runs a sync on a fixed interval for watch mode.
// The default invocation is one-shot; the remote store is polled, so watch
// mode is just a convenience around repeated runs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"schoolsync/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncRun, error)
}

type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

// Start runs one sync immediately, then once per interval until the
// context is cancelled. A failed run is logged and the next tick proceeds;
// the operator's retry policy is simply the next interval.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	if _, err := s.syncer.Sync(ctx); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
