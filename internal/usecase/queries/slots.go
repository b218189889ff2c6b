package queries

import (
	"context"
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
	"nobat/internal/domain/catalog"
	"nobat/internal/domain/schedule"
	"nobat/internal/pkg/clock"

	"github.com/google/uuid"
)

//go:generate mockgen -source=slots.go -destination=../../../tests/mock/queries/slots_mock.go -package=queriesmock

type ActiveIntervalReader interface {
	ListActiveIntervals(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate) ([]booking.Interval, error)
}

type ServiceReader interface {
	FindActiveByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]*catalog.Service, error)
}

type SlotQueries interface {
	// AvailableSlots is advisory: a returned start time is expected to book
	// successfully, but only the creation gate decides.
	AvailableSlots(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate, serviceIDs []uuid.UUID) ([]booking.TimeOfDay, error)
}

type slotQueries struct {
	intervals ActiveIntervalReader
	services  ServiceReader
	hours     schedule.BusinessHours
	clock     clock.Clock
	loc       *time.Location
}

func NewSlotQueries(
	intervals ActiveIntervalReader,
	services ServiceReader,
	hours schedule.BusinessHours,
	clk clock.Clock,
	loc *time.Location,
) SlotQueries {
	return &slotQueries{
		intervals: intervals,
		services:  services,
		hours:     hours,
		clock:     clk,
		loc:       loc,
	}
}

func (q *slotQueries) AvailableSlots(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate, serviceIDs []uuid.UUID) ([]booking.TimeOfDay, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	// Friday is the fixed non-working day; a closed day has no slots.
	if date.IsWeekend() {
		return []booking.TimeOfDay{}, nil
	}

	durationMin := catalog.DefaultDurationMin
	if len(serviceIDs) > 0 {
		services, err := q.services.FindActiveByIDs(ctx, businessID, serviceIDs)
		if err != nil {
			return nil, err
		}
		durationMin = catalog.TotalDuration(services)
	}

	active, err := q.intervals.ListActiveIntervals(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	now := clock.NowIn(q.clock, q.loc)
	return schedule.AvailableSlots(date, durationMin, q.hours, active, now, calendar.CivilDateOf(now))
}
