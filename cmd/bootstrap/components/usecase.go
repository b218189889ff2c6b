package components

import (
	"log/slog"
	"time"

	"nobat/internal/pkg/clock"
	"nobat/internal/pkg/config"
	"nobat/internal/usecase/commands"
	"nobat/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		newBookingCommands,
		newMessagingCommands,
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewCreditQueries,
	),
)

func newBookingCommands(
	bookings commands.BookingRepository,
	services commands.ServiceRepository,
	credits commands.CreditRepository,
	gateway commands.SMSGateway,
	clk clock.Clock,
	loc *time.Location,
	cfg config.Config,
	logger *slog.Logger,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		bookings, services, credits, gateway, clk, loc, cfg.SMS.CostPerMsg, logger)
}

func newMessagingCommands(
	credits commands.CreditRepository,
	gateway commands.SMSGateway,
	cfg config.Config,
	logger *slog.Logger,
) commands.MessagingCommands {
	return commands.NewMessagingCommands(credits, gateway, cfg.SMS.CostPerMsg, logger)
}
