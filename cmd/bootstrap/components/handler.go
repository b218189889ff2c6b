package components

import (
	"nobat/internal/handler"
	"nobat/internal/handler/api"
	"nobat/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewSlotsHandler,
		api.NewMessagingHandler,
		api.NewCreditHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
