package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
	"nobat/internal/infra"
	"nobat/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingRepository(pool *pgxpool.Pool, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{pool: pool, logger: logger}
}

const bookingColumns = `id, business_id, client_phone, civil_date, start_min, duration_min, service_ids, status, created_at, updated_at`

// Create inserts an active booking after the overlap check, both under a
// per-(business, date) advisory lock so two concurrent creations for the same
// day cannot interleave between check and insert.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "begin booking tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1 || '|' || $2, 0))`,
		b.BusinessID().String(), b.Date().String(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "acquire booking day lock", err)
	}

	var (
		conflictID    uuid.UUID
		conflictStart int
		conflictDur   int
	)
	err = tx.QueryRow(ctx, `
		SELECT id, start_min, duration_min
		FROM bookings
		WHERE business_id = $1
		  AND civil_date = $2
		  AND status = 'active'
		  AND start_min < $4
		  AND $3 < start_min + duration_min
		ORDER BY start_min
		LIMIT 1`,
		b.BusinessID(), dateArg(b.Date()),
		b.Interval().Start.Minutes(), b.Interval().End().Minutes(),
	).Scan(&conflictID, &conflictStart, &conflictDur)
	if err == nil {
		iv, _ := booking.NewInterval(booking.TimeOfDay(conflictStart), conflictDur)
		return &booking.ConflictError{BookingID: conflictID, Interval: iv}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "check booking overlap", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID(), b.BusinessID(), b.ClientPhone(), dateArg(b.Date()),
		b.Interval().Start.Minutes(), b.Interval().DurationMin,
		idsArg(b.ServiceIDs()), string(b.Status()), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "insert booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "commit booking tx", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, booking.ErrNotFound
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "find booking by id", err)
	}
	return b, nil
}

// UpdateStatus guards on status='active' so that of two racing terminal
// transitions exactly one wins; the loser sees ErrAlreadyTerminal.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, to booking.Status, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'active'`,
		id, string(to), now,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "check booking existence", err)
		}
		if !exists {
			return booking.ErrNotFound
		}
		return booking.ErrAlreadyTerminal
	}
	return nil
}

// CompleteDue flips every active booking whose interval has fully elapsed at
// now. Each run only touches rows still active, so re-running is free.
func (r *BookingRepository) CompleteDue(ctx context.Context, now time.Time) (int, error) {
	today := calendar.CivilDateOf(now)
	nowMin := now.Hour()*60 + now.Minute()

	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = 'done', updated_at = $3
		WHERE status = 'active'
		  AND (civil_date < $1
		       OR (civil_date = $1 AND start_min + duration_min <= $2))`,
		dateArg(today), nowMin, now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "complete due bookings", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *BookingRepository) ListActiveIntervals(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate) ([]booking.Interval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_min, duration_min
		FROM bookings
		WHERE business_id = $1 AND civil_date = $2 AND status = 'active'
		ORDER BY start_min`,
		businessID, dateArg(date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "list active intervals", err)
	}
	defer rows.Close()

	intervals := make([]booking.Interval, 0)
	for rows.Next() {
		var startMin, durationMin int
		if err := rows.Scan(&startMin, &durationMin); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "scan active interval", err)
		}
		iv, err := booking.NewInterval(booking.TimeOfDay(startMin), durationMin)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored interval invalid", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "iterate active intervals", err)
	}
	return intervals, nil
}

func (r *BookingRepository) ListByDate(ctx context.Context, businessID uuid.UUID, date calendar.CivilDate) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE business_id = $1 AND civil_date = $2
		ORDER BY start_min`,
		businessID, dateArg(date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "list bookings by date", err)
	}
	defer rows.Close()

	bookings := make([]*booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "iterate bookings", err)
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, businessID uuid.UUID
		clientPhone    string
		civilDate      time.Time
		startMin       int
		durationMin    int
		serviceIDs     []string
		status         string
		createdAt      time.Time
		updatedAt      time.Time
	)
	err := row.Scan(&id, &businessID, &clientPhone, &civilDate, &startMin,
		&durationMin, &serviceIDs, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	date, err := calendar.NewCivilDate(civilDate.Year(), int(civilDate.Month()), civilDate.Day())
	if err != nil {
		return nil, err
	}
	interval, err := booking.NewInterval(booking.TimeOfDay(startMin), durationMin)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs(serviceIDs)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, businessID, clientPhone, date, interval, ids,
		booking.Status(status), createdAt, updatedAt,
	), nil
}

// dateArg maps a civil date to the DATE column. The column carries the
// business-local calendar day, not an instant, so UTC midnight is arbitrary
// and fine.
func dateArg(d calendar.CivilDate) time.Time {
	return d.At(0, time.UTC)
}

func idsArg(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errs.Wrap(err, "stored service id invalid")
		}
		out[i] = id
	}
	return out, nil
}
