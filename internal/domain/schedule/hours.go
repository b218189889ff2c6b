package schedule

import (
	"nobat/internal/domain/booking"
	"nobat/internal/pkg/errs"
)

var ErrInvalidHours = errs.New("invalid business hours")

// DefaultGranularityMin is the candidate grid step.
const DefaultGranularityMin = 15

// BusinessHours is the bookable window of a single day. One timeline per
// business; no per-weekday variation beyond the fixed Friday closure, which
// callers enforce via calendar.CivilDate.IsWeekend.
type BusinessHours struct {
	Open           booking.TimeOfDay
	Close          booking.TimeOfDay
	GranularityMin int
}

func NewBusinessHours(open, close booking.TimeOfDay, granularityMin int) (BusinessHours, error) {
	if close <= open {
		return BusinessHours{}, errs.Wrapf(ErrInvalidHours, "close %s not after open %s", close, open)
	}
	if granularityMin <= 0 {
		granularityMin = DefaultGranularityMin
	}
	return BusinessHours{Open: open, Close: close, GranularityMin: granularityMin}, nil
}
