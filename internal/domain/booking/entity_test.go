//go:build unit

package booking_test

import (
	"testing"
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToday = calendar.CivilDate{Year: 2024, Month: 3, Day: 20}
	testNow   = time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)
)

func newTestBooking(t *testing.T, date calendar.CivilDate, start booking.TimeOfDay, durationMin int) *booking.Booking {
	t.Helper()
	iv, err := booking.NewInterval(start, durationMin)
	require.NoError(t, err)
	b, err := booking.NewBooking(uuid.New(), "+989121234567", date, iv, nil, testToday, testNow)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("creates active booking", func(t *testing.T) {
		b := newTestBooking(t, testToday, 10*60, 30)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusActive, b.Status())
		assert.Equal(t, "10:00", b.Interval().Start.String())
		assert.Equal(t, "10:30", b.Interval().End().String())
	})

	t.Run("rejects past date", func(t *testing.T) {
		iv, err := booking.NewInterval(10*60, 30)
		require.NoError(t, err)

		yesterday := calendar.CivilDate{Year: 2024, Month: 3, Day: 19}
		_, err = booking.NewBooking(uuid.New(), "0912", yesterday, iv, nil, testToday, testNow)
		require.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("allows same-day booking", func(t *testing.T) {
		b := newTestBooking(t, testToday, 9*60, 30)
		assert.Equal(t, booking.StatusActive, b.Status())
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		iv, err := booking.NewInterval(10*60, 30)
		require.NoError(t, err)

		bad := calendar.CivilDate{Year: 2024, Month: 2, Day: 30}
		_, err = booking.NewBooking(uuid.New(), "0912", bad, iv, nil, testToday, testNow)
		require.ErrorIs(t, err, calendar.ErrInvalidDate)
	})
}

func TestStateMachine(t *testing.T) {
	t.Run("cancel active", func(t *testing.T) {
		b := newTestBooking(t, testToday, 10*60, 30)
		require.NoError(t, b.Cancel(testNow))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("complete active", func(t *testing.T) {
		b := newTestBooking(t, testToday, 10*60, 30)
		require.NoError(t, b.Complete(testNow))
		assert.Equal(t, booking.StatusDone, b.Status())
	})

	t.Run("cancel is not idempotent", func(t *testing.T) {
		b := newTestBooking(t, testToday, 10*60, 30)
		require.NoError(t, b.Cancel(testNow))
		require.ErrorIs(t, b.Cancel(testNow), booking.ErrAlreadyTerminal)
	})

	t.Run("no transition leaves done", func(t *testing.T) {
		b := newTestBooking(t, testToday, 10*60, 30)
		require.NoError(t, b.Complete(testNow))
		require.ErrorIs(t, b.Cancel(testNow), booking.ErrAlreadyTerminal)
		require.ErrorIs(t, b.Complete(testNow), booking.ErrAlreadyTerminal)
	})
}

func TestIsDue(t *testing.T) {
	loc := time.UTC
	b := newTestBooking(t, testToday, 10*60, 60) // ends 11:00

	assert.False(t, b.IsDue(testToday.At(10*60+59, loc), loc))
	assert.False(t, b.IsDue(testToday.At(11*60, loc), loc), "strictly past, not at end")
	assert.True(t, b.IsDue(testToday.At(11*60+1, loc), loc))

	require.NoError(t, b.Cancel(testNow))
	assert.False(t, b.IsDue(testToday.At(12*60, loc), loc), "terminal bookings are never due")
}

func TestConflictsWith(t *testing.T) {
	a := newTestBooking(t, testToday, 10*60, 60)

	overlapping := newTestBooking(t, testToday, 10*60+30, 60)
	assert.False(t, a.ConflictsWith(overlapping), "different businesses never conflict")
}

func TestConflictError(t *testing.T) {
	iv, err := booking.NewInterval(10*60, 60)
	require.NoError(t, err)

	var conflictErr error = &booking.ConflictError{BookingID: uuid.New(), Interval: iv}
	assert.ErrorIs(t, conflictErr, booking.ErrConflict)
	assert.Contains(t, conflictErr.Error(), "10:00-11:00")
}
