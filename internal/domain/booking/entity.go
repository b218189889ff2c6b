package booking

import (
	"errors"
	"fmt"
	"time"

	"nobat/internal/domain/calendar"

	"github.com/google/uuid"
)

var (
	ErrPastDate        = errors.New("booking date is in the past")
	ErrAlreadyTerminal = errors.New("booking is already cancelled or done")
	ErrNotFound        = errors.New("booking not found")
	ErrConflict        = errors.New("booking conflict")
)

// ConflictError carries the occupying booking's identity and interval so
// callers can tell the client exactly what blocked them.
type ConflictError struct {
	BookingID uuid.UUID
	Interval  Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflict with %s at %s", e.BookingID, e.Interval)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

type Booking struct {
	id          uuid.UUID
	businessID  uuid.UUID
	clientPhone string
	date        calendar.CivilDate
	interval    Interval
	serviceIDs  []uuid.UUID
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates an active booking. The past-date guard runs here; the
// overlap check is the repository's job because it must happen under the
// (business, date) serialization lock.
func NewBooking(
	businessID uuid.UUID,
	clientPhone string,
	date calendar.CivilDate,
	interval Interval,
	serviceIDs []uuid.UUID,
	today calendar.CivilDate,
	now time.Time,
) (*Booking, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}
	if date.Before(today) {
		return nil, ErrPastDate
	}

	return &Booking{
		id:          uuid.New(),
		businessID:  businessID,
		clientPhone: clientPhone,
		date:        date,
		interval:    interval,
		serviceIDs:  serviceIDs,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, businessID uuid.UUID,
	clientPhone string,
	date calendar.CivilDate,
	interval Interval,
	serviceIDs []uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		businessID:  businessID,
		clientPhone: clientPhone,
		date:        date,
		interval:    interval,
		serviceIDs:  serviceIDs,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Cancel moves active -> cancelled. Cancelling a terminal booking fails so
// callers can distinguish "nothing to do" from "did it".
func (b *Booking) Cancel(now time.Time) error {
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// Complete moves active -> done.
func (b *Booking) Complete(now time.Time) error {
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	b.status = StatusDone
	b.updatedAt = now
	return nil
}

// IsDue reports whether the booked interval has fully elapsed at now, making
// the booking eligible for the completion sweep.
func (b *Booking) IsDue(now time.Time, loc *time.Location) bool {
	if b.status != StatusActive {
		return false
	}
	end := b.date.At(b.interval.End().Minutes(), loc)
	return end.Before(now)
}

func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.businessID != other.businessID || !b.date.Equal(other.date) {
		return false
	}
	if b.status != StatusActive || other.status != StatusActive {
		return false
	}
	return b.interval.Overlaps(other.interval)
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) BusinessID() uuid.UUID     { return b.businessID }
func (b *Booking) ClientPhone() string       { return b.clientPhone }
func (b *Booking) Date() calendar.CivilDate  { return b.date }
func (b *Booking) Interval() Interval        { return b.interval }
func (b *Booking) ServiceIDs() []uuid.UUID   { return b.serviceIDs }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
