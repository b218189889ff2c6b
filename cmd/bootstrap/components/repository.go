package components

import (
	repo_impl "nobat/internal/infra/repository"
	"nobat/internal/usecase/commands"
	"nobat/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.ActiveIntervalReader)),
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			repo_impl.NewCreditRepository,
			fx.As(new(commands.CreditRepository)),
			fx.As(new(queries.CreditReader)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
			fx.As(new(queries.ServiceReader)),
		),
	),
)
