package bootstrap

import (
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/schedule"
	"nobat/internal/pkg/config"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewLocation,
		NewBusinessHours,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Schedule.Location()
}

func NewBusinessHours(cfg config.Config) (schedule.BusinessHours, error) {
	open, err := booking.ParseTimeOfDay(cfg.Schedule.OpenTime)
	if err != nil {
		return schedule.BusinessHours{}, err
	}
	close, err := booking.ParseTimeOfDay(cfg.Schedule.CloseTime)
	if err != nil {
		return schedule.BusinessHours{}, err
	}
	return schedule.NewBusinessHours(open, close, cfg.Schedule.GranularityMin)
}
