package queries

import (
	"context"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"

	"github.com/google/uuid"
)

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByDate(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, businessID, id uuid.UUID) (*booking.Booking, error)
	// ListByDate returns the whole day including cancelled and done rows;
	// history is never physically deleted.
	ListByDate(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate) ([]*booking.Booking, error)
}

type bookingQueries struct {
	bookings BookingReader
}

func NewBookingQueries(bookings BookingReader) BookingQueries {
	return &bookingQueries{bookings: bookings}
}

func (q *bookingQueries) GetByID(ctx context.Context, businessID, id uuid.UUID) (*booking.Booking, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.BusinessID() != businessID {
		return nil, booking.ErrNotFound
	}
	return b, nil
}

func (q *bookingQueries) ListByDate(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate) ([]*booking.Booking, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}
	return q.bookings.ListByDate(ctx, businessID, date)
}
