// Package schedule computes which start times are actually free for a
// requested duration. Its output is advisory: the booking repository's
// serialized overlap check is the only authoritative gate.
package schedule

import (
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
	"nobat/internal/pkg/errs"
)

var ErrInvalidDuration = errs.New("invalid duration")

// AvailableSlots returns the sorted candidate start times for a service of
// durationMin minutes on date, given the day's active booking intervals.
//
// now only matters when date is today: candidates at or before now are
// dropped so "right now" bookings are impossible. For any other date the
// wall clock never enters the computation.
func AvailableSlots(
	date calendar.CivilDate,
	durationMin int,
	hours BusinessHours,
	active []booking.Interval,
	now time.Time,
	today calendar.CivilDate,
) ([]booking.TimeOfDay, error) {
	if durationMin <= 0 {
		return nil, errs.Wrapf(ErrInvalidDuration, "duration %d", durationMin)
	}
	if err := date.Validate(); err != nil {
		return nil, err
	}

	step := hours.GranularityMin
	if step <= 0 {
		step = DefaultGranularityMin
	}

	// A day too short for the service yields an empty list, not an error:
	// "fully booked or too short" is a valid answer.
	slots := make([]booking.TimeOfDay, 0)
	latestStart := hours.Close.Minutes() - durationMin

	sameDay := date.Equal(today)
	nowMin := now.Hour()*60 + now.Minute()

	for start := hours.Open.Minutes(); start <= latestStart; start += step {
		if sameDay && start <= nowMin {
			continue
		}
		candidate := booking.Interval{Start: booking.TimeOfDay(start), DurationMin: durationMin}
		if occupied(candidate, active) {
			continue
		}
		slots = append(slots, candidate.Start)
	}

	return slots, nil
}

// ConflictFor re-runs the occupancy scan for a single candidate, so a caller
// whose previously chosen start time vanished from a fresh AvailableSlots
// result can surface the specific booking that consumed it.
func ConflictFor(candidate booking.Interval, active []booking.Interval) (booking.Interval, bool) {
	for _, iv := range active {
		if candidate.Overlaps(iv) {
			return iv, true
		}
	}
	return booking.Interval{}, false
}

func occupied(candidate booking.Interval, active []booking.Interval) bool {
	_, taken := ConflictFor(candidate, active)
	return taken
}
