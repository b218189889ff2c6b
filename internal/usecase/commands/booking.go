package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
	"nobat/internal/domain/catalog"
	"nobat/internal/infra/metrics"
	"nobat/internal/pkg/clock"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	BusinessID   uuid.UUID
	Date         calendar.CivilDate
	StartTime    booking.TimeOfDay
	ServiceIDs   []uuid.UUID
	ClientPhone  string
	NotifyClient bool
}

type BookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*booking.Booking, error)
	Cancel(ctx context.Context, businessID, id uuid.UUID, notifyClient bool) (*booking.Booking, error)
	// CompleteDue is the periodic active -> done sweep; safe to re-run and
	// to run concurrently with creation.
	CompleteDue(ctx context.Context) (int, error)
}

type bookingCommands struct {
	bookings BookingRepository
	services ServiceRepository
	notifier *notifier
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
}

func NewBookingCommands(
	bookings BookingRepository,
	services ServiceRepository,
	credits CreditRepository,
	gateway SMSGateway,
	clk clock.Clock,
	loc *time.Location,
	messageCost int,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommands{
		bookings: bookings,
		services: services,
		notifier: newNotifier(credits, gateway, messageCost, logger),
		clock:    clk,
		loc:      loc,
		logger:   logger,
	}
}

func (c *bookingCommands) Create(ctx context.Context, p CreateBookingParams) (*booking.Booking, error) {
	durationMin, err := c.resolveDuration(ctx, p.BusinessID, p.ServiceIDs)
	if err != nil {
		return nil, err
	}

	interval, err := booking.NewInterval(p.StartTime, durationMin)
	if err != nil {
		return nil, err
	}

	now := clock.NowIn(c.clock, c.loc)
	entity, err := booking.NewBooking(
		p.BusinessID, p.ClientPhone, p.Date, interval, p.ServiceIDs,
		calendar.CivilDateOf(now), now,
	)
	if err != nil {
		return nil, err
	}

	// The advisory slot list the client saw may be stale by now; this is
	// the one serialized overlap check.
	if err := c.bookings.Create(ctx, entity); err != nil {
		if errors.Is(err, booking.ErrConflict) {
			metrics.IncBookingsConflicted()
		}
		return nil, err
	}
	metrics.IncBookingsCreated()

	if p.NotifyClient {
		content := fmt.Sprintf("Your appointment on %s at %s is confirmed.", p.Date, p.StartTime)
		c.notifier.trySend(ctx, p.BusinessID, p.ClientPhone, content, "booking_confirmed")
	}

	return entity, nil
}

func (c *bookingCommands) Cancel(ctx context.Context, businessID, id uuid.UUID, notifyClient bool) (*booking.Booking, error) {
	entity, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity.BusinessID() != businessID {
		return nil, booking.ErrNotFound
	}

	now := clock.NowIn(c.clock, c.loc)
	if err := entity.Cancel(now); err != nil {
		return nil, err
	}
	if err := c.bookings.UpdateStatus(ctx, id, booking.StatusCancelled, now); err != nil {
		return nil, err
	}
	metrics.IncBookingsCancelled()

	if notifyClient {
		content := fmt.Sprintf("Your appointment on %s at %s was cancelled.", entity.Date(), entity.Interval().Start)
		c.notifier.trySend(ctx, businessID, entity.ClientPhone(), content, "booking_cancelled")
	}

	return entity, nil
}

func (c *bookingCommands) CompleteDue(ctx context.Context) (int, error) {
	n, err := c.bookings.CompleteDue(ctx, clock.NowIn(c.clock, c.loc))
	if err != nil {
		return 0, err
	}
	metrics.AddBookingsCompleted(n)
	return n, nil
}

func (c *bookingCommands) resolveDuration(ctx context.Context, businessID uuid.UUID, serviceIDs []uuid.UUID) (int, error) {
	if len(serviceIDs) == 0 {
		return catalog.DefaultDurationMin, nil
	}
	services, err := c.services.FindActiveByIDs(ctx, businessID, serviceIDs)
	if err != nil {
		return 0, err
	}
	return catalog.TotalDuration(services), nil
}
