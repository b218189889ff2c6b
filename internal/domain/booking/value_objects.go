package booking

import (
	"fmt"

	"nobat/internal/pkg/errs"
)

var ErrInvalidTimeOfDay = errs.New("invalid time of day")

// TimeOfDay is minutes past midnight, business-local. The wire format is
// "HH:MM".
type TimeOfDay int

func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "minutes out of range: %d", minutes)
	}
	return TimeOfDay(minutes), nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "malformed time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, errs.Wrapf(ErrInvalidTimeOfDay, "time out of range %q", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return TimeOfDay(int(t) + minutes)
}

// Interval is a half-open time range [Start, Start+DurationMin) within one
// day.
type Interval struct {
	Start       TimeOfDay
	DurationMin int
}

func NewInterval(start TimeOfDay, durationMin int) (Interval, error) {
	if durationMin <= 0 {
		return Interval{}, errs.Wrapf(ErrInvalidTimeOfDay, "non-positive duration: %d", durationMin)
	}
	return Interval{Start: start, DurationMin: durationMin}, nil
}

func (iv Interval) End() TimeOfDay {
	return iv.Start.Add(iv.DurationMin)
}

// Overlaps uses the half-open test: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 && s2 < e1. Back-to-back intervals do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End() && other.Start < iv.End()
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End().String()
}
