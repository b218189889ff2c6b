package commands

import (
	"context"
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
	"nobat/internal/domain/catalog"
	"nobat/internal/domain/credit"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// BookingRepository persists bookings. Create is the single authoritative
// overlap gate: it must run under per-(business, date) serialization and
// return booking.ConflictError when an active booking occupies the interval.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus persists an active -> terminal transition. It returns
	// booking.ErrAlreadyTerminal when the row exists but is no longer
	// active, closing the race between two concurrent transitions.
	UpdateStatus(ctx context.Context, id uuid.UUID, to booking.Status, now time.Time) error
	// CompleteDue flips every active booking whose interval has fully
	// elapsed to done, returning how many rows changed. Idempotent.
	CompleteDue(ctx context.Context, now time.Time) (int, error)
	ListActiveIntervals(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate) ([]booking.Interval, error)
}

// CreditRepository mutates the per-business credit pools. Debit and Refund
// are atomic per call; concurrent debits against one business serialize in
// the store.
type CreditRepository interface {
	Get(ctx context.Context, businessID uuid.UUID) (*credit.Account, error)
	// Debit draws plan pool first, then purchased, whole-or-nothing, and
	// returns the account after the debit. An unaffordable debit returns
	// credit.InsufficientCreditError and changes nothing.
	Debit(ctx context.Context, businessID uuid.UUID, amount int) (*credit.Account, error)
	Credit(ctx context.Context, businessID uuid.UUID, amount int, pool credit.Pool) (*credit.Account, error)
}

type ServiceRepository interface {
	// FindActiveByIDs resolves the given service ids for a business,
	// returning catalog.ErrServiceNotFound if any id is missing or
	// inactive.
	FindActiveByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]*catalog.Service, error)
}

// SMSGateway is the outbound transport. The ledger debits before Send and
// refunds when Send fails; the gateway itself knows nothing about credit.
type SMSGateway interface {
	Send(ctx context.Context, recipientPhone, content string) error
}
