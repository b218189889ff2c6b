// Package sched runs the periodic completion sweep that moves elapsed active
// bookings to done.
package sched

import (
	"context"
	"log/slog"
	"time"

	"nobat/internal/usecase/commands"
)

type Sweeper struct {
	bookings commands.BookingCommands
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(bookings commands.BookingCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{bookings: bookings, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, sweeping once per tick. A failed sweep
// logs and waits for the next tick; the sweep is idempotent so missed or
// doubled runs are harmless.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("completion sweeper started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("completion sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.bookings.CompleteDue(ctx)
	if err != nil {
		s.logger.Error("completion sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("bookings completed", "count", n)
	}
}
