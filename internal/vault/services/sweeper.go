package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrijs2005/docvault/internal/logging"
)

// Sweeper runs the retention purge on a fixed schedule. It is the only
// automatic trigger for permanent deletion; everything else in the lifecycle
// is user-initiated.
type Sweeper struct {
	trash    *TrashService
	logger   logging.Logger
	interval time.Duration
	cron     *cron.Cron
}

func NewSweeper(trash *TrashService, interval time.Duration, logger logging.Logger) *Sweeper {
	return &Sweeper{
		trash:    trash,
		logger:   logger,
		interval: interval,
		cron:     cron.New(),
	}
}

// Start schedules the sweep and runs one immediately, so documents expired
// while the process was down do not wait a full interval.
func (s *Sweeper) Start(ctx context.Context) error {
	s.sweep(ctx)

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Info(ctx, "retention sweeper started", "interval", s.interval.String())
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

func (s *Sweeper) sweep(ctx context.Context) {
	summary, err := s.trash.SweepExpired(ctx)
	if err != nil {
		s.logger.Error(ctx, "retention sweep failed", "error", err.Error())
		return
	}

	if summary.Failed > 0 {
		s.logger.Warn(ctx, "retention sweep finished with failures",
			"purged", summary.Succeeded, "failed", summary.Failed)
		return
	}
	if summary.Succeeded > 0 {
		s.logger.Info(ctx, "retention sweep purged expired documents", "purged", summary.Succeeded)
	}
}
