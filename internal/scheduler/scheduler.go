package scheduler

import (
	"context"
	"log/slog"
	"time"
)

const refreshTimeout = 2 * time.Minute

// Refresher reloads a data store from its backend.
type Refresher interface {
	RefreshData(ctx context.Context) error
}

type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	logger    *slog.Logger
}

func NewScheduler(refresher Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start refreshes immediately, then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	if err := s.refresher.RefreshData(refreshCtx); err != nil {
		s.logger.Error("refresh failed", "error", err)
	}
}
