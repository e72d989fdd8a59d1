package scheduler

import (
	"context"
	"log/slog"
	"time"
)

const defaultRunTimeout = 30 * time.Second

// Sweeper removes expired state and reports how much it removed.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type Scheduler struct {
	sweeper    Sweeper
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(sweeper Sweeper, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sweeper:    sweeper,
		interval:   interval,
		runTimeout: defaultRunTimeout,
		logger:     logger,
	}
}

// Start sweeps once and then every interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	removed, err := s.sweeper.Sweep(sweepCtx)
	if err != nil {
		s.logger.Error("sweep failed", "error", err)
		return
	}
	s.logger.Debug("sweep finished", "removed", removed)
}
