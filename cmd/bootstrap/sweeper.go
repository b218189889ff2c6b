package bootstrap

import (
	"context"
	"log/slog"

	"nobat/internal/infra/sched"
	"nobat/internal/pkg/config"
	"nobat/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

// StartSweeper ties the completion sweep to the app lifecycle: it runs in the
// background from start and winds down with the app.
func StartSweeper(lc fx.Lifecycle, bookings commands.BookingCommands, cfg config.Config, logger *slog.Logger) {
	sweeper := sched.NewSweeper(bookings, cfg.Schedule.SweepInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
