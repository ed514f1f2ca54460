package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// PinFlusher publishes every pin whose scheduled time has elapsed.
type PinFlusher interface {
	PublishDue(ctx context.Context, now time.Time) (int, error)
}

// ScrapeRunner re-scrapes every project whose cadence has elapsed.
type ScrapeRunner interface {
	ScrapeDue(ctx context.Context, now time.Time) (int, error)
}

type Scheduler struct {
	pins     PinFlusher
	scrapes  ScrapeRunner
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(pins PinFlusher, scrapes ScrapeRunner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pins:     pins,
		scrapes:  scrapes,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runTick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	now := time.Now().UTC()

	published, err := s.pins.PublishDue(tickCtx, now)
	if err != nil {
		s.logger.Error("publishing due pins failed", "error", err)
	} else if published > 0 {
		s.logger.Info("published due pins", "count", published)
	}

	scraped, err := s.scrapes.ScrapeDue(tickCtx, now)
	if err != nil {
		s.logger.Error("scraping due projects failed", "error", err)
	} else if scraped > 0 {
		s.logger.Info("scraped due projects", "count", scraped)
	}
}
