package bootstrap

import (
	"log/slog"

	"nobat/internal/infra/notify"
	"nobat/internal/pkg/config"
	"nobat/internal/usecase/commands"

	"go.uber.org/fx"
)

var SMSModule = fx.Module("sms",
	fx.Provide(
		NewSMSGateway,
	),
)

// NewSMSGateway picks the transport from config: a missing API key means the
// environment has no provider and every send is logged instead.
func NewSMSGateway(cfg config.Config, logger *slog.Logger) commands.SMSGateway {
	if cfg.SMS.APIKey == "" {
		logger.Warn("SMS_API_KEY not set, outbound messages are suppressed")
		return notify.NewNoopGateway(logger)
	}
	return notify.NewHTTPGateway(cfg.SMS, logger)
}
