//go:build e2e

package booking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nobat/internal/domain/calendar"
	"nobat/internal/handler/dto/response"
	"nobat/internal/pkg/jwt"
	"nobat/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	slotsURL    = "/api/slots"
	balanceURL  = "/api/credit/balance"
	bulkURL     = "/api/messages/bulk"
)

type BookingSuite struct {
	e2e.SharedSuite
	businessID uuid.UUID
	token      string
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	s.businessID = uuid.New()
	verifier := jwt.NewVerifier(s.Config.JWT.Secret)
	token, err := verifier.Sign(s.businessID, time.Hour)
	require.NoError(s.T(), err)
	s.token = token
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// futureDate picks a weekday at least a week out so same-day and past-date
// filtering never interferes with these cases.
func (s *BookingSuite) futureDate() calendar.CivilDate {
	loc, err := s.Config.Schedule.Location()
	require.NoError(s.T(), err)

	t := time.Now().In(loc).AddDate(0, 0, 7)
	for t.Weekday() == time.Friday {
		t = t.AddDate(0, 0, 1)
	}
	return calendar.CivilDateOf(t)
}

func (s *BookingSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingSuite) decode(rec *httptest.ResponseRecorder, out any) {
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), out))
}

func (s *BookingSuite) seedCredit(plan, purchased int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.DB.Exec(ctx, `
		INSERT INTO credit_accounts (business_id, plan_remaining, purchased_balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (business_id) DO UPDATE
		SET plan_remaining = $2, purchased_balance = $3`,
		s.businessID, plan, purchased)
	require.NoError(s.T(), err)
}

func (s *BookingSuite) createBooking(date calendar.CivilDate, startTime string) *httptest.ResponseRecorder {
	return s.perform(http.MethodPost, bookingsURL, map[string]any{
		"date":        date.String(),
		"startTime":   startTime,
		"clientPhone": "09120000001",
	})
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("create, conflict, cancel, rebook", func() {
		date := s.futureDate()

		rec := s.createBooking(date, "10:00")
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		var created response.BookingResponse
		s.decode(rec, &created)
		require.Equal(s.T(), "active", created.Status)
		require.Equal(s.T(), "10:00", created.StartTime)
		require.Equal(s.T(), "10:30", created.EndTime)
		require.NotEmpty(s.T(), created.JalaliDate)

		// Same slot again: the serialized gate reports the blocker.
		rec = s.createBooking(date, "10:00")
		require.Equal(s.T(), http.StatusConflict, rec.Code)
		require.Contains(s.T(), rec.Body.String(), created.ID.String())

		// Overlapping but not identical start also conflicts.
		rec = s.createBooking(date, "10:15")
		require.Equal(s.T(), http.StatusConflict, rec.Code)

		// Back-to-back does not.
		rec = s.createBooking(date, "10:30")
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		// Cancel frees the original slot.
		rec = s.perform(http.MethodPost, bookingsURL+"/"+created.ID.String()+"/cancel", nil)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		rec = s.createBooking(date, "10:00")
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		// Cancelling the already-cancelled booking is a conflict.
		rec = s.perform(http.MethodPost, bookingsURL+"/"+created.ID.String()+"/cancel", nil)
		require.Equal(s.T(), http.StatusConflict, rec.Code)
	})

	s.Run("past date is rejected", func() {
		rec := s.createBooking(calendar.CivilDate{Year: 2020, Month: 1, Day: 6}, "10:00")
		require.Equal(s.T(), http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *BookingSuite) TestAvailableSlots() {
	s.Run("booked starts disappear from the grid", func() {
		date := s.futureDate()

		rec := s.createBooking(date, "10:00")
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		rec = s.perform(http.MethodGet, slotsURL+"?date="+date.String(), nil)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		var slots response.SlotsResponse
		s.decode(rec, &slots)
		require.NotEmpty(s.T(), slots.Slots)
		require.NotContains(s.T(), slots.Slots, "10:00")
		require.NotContains(s.T(), slots.Slots, "09:45")
		require.Contains(s.T(), slots.Slots, "10:30")
		require.Contains(s.T(), slots.Slots, "09:30")
	})

	s.Run("jalali date addresses the same day", func() {
		date := s.futureDate()
		jd, err := calendar.ToJalali(date)
		require.NoError(s.T(), err)

		rec := s.perform(http.MethodGet, slotsURL+"?jalaliDate="+jd.String(), nil)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		var slots response.SlotsResponse
		s.decode(rec, &slots)
		require.Equal(s.T(), date.String(), slots.Date)
	})
}

func (s *BookingSuite) TestCreditAndBulkSend() {
	s.Run("bulk send drains plan pool first", func() {
		s.seedCredit(2, 3)

		rec := s.perform(http.MethodPost, bulkURL, map[string]any{
			"messages": []map[string]any{
				{"recipientPhone": "0911", "content": "reminder"},
				{"recipientPhone": "0912", "content": "reminder"},
				{"recipientPhone": "0913", "content": "reminder"},
			},
		})
		require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

		var result response.BulkSendResponse
		s.decode(rec, &result)
		require.Equal(s.T(), 3, result.Sent)
		require.Equal(s.T(), 0, result.Failed)

		rec = s.perform(http.MethodGet, balanceURL, nil)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		var balance response.BalanceResponse
		s.decode(rec, &balance)
		require.Equal(s.T(), 0, balance.PlanRemaining)
		require.Equal(s.T(), 2, balance.Purchased)
		require.Equal(s.T(), 2, balance.Total)
	})

	s.Run("unaffordable batch changes nothing", func() {
		s.seedCredit(1, 0)

		rec := s.perform(http.MethodPost, bulkURL, map[string]any{
			"messages": []map[string]any{
				{"recipientPhone": "0911", "content": "reminder"},
				{"recipientPhone": "0912", "content": "reminder"},
			},
		})
		require.Equal(s.T(), http.StatusPaymentRequired, rec.Code)
		require.Contains(s.T(), rec.Body.String(), `"shortfall":1`)

		rec = s.perform(http.MethodGet, balanceURL, nil)
		var balance response.BalanceResponse
		s.decode(rec, &balance)
		require.Equal(s.T(), 1, balance.Total)
	})

	s.Run("missing account reads as not found", func() {
		rec := s.perform(http.MethodGet, balanceURL, nil)
		require.Equal(s.T(), http.StatusNotFound, rec.Code)
	})
}
