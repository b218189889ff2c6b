//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
	"nobat/internal/handler/api"
	"nobat/internal/usecase/commands"
	commandsmock "nobat/tests/mock/commands"
	queriesmock "nobat/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	businessID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.businessID = uuid.New()

	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("business_id", s.businessID)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url string, body any, withAuth bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		req.Header.Set("Authorization", "Bearer token")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) sampleBooking() *booking.Booking {
	date, err := calendar.ParseCivilDate("2026-03-12")
	s.Require().NoError(err)
	iv, err := booking.NewInterval(booking.TimeOfDay(10*60), 60)
	s.Require().NoError(err)
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(
		uuid.New(), s.businessID, "09120000001", date, iv, nil,
		booking.StatusActive, now, now,
	)
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	validBody := map[string]any{
		"date":        "2026-03-12",
		"startTime":   "10:00",
		"clientPhone": "09120000001",
	}

	s.Run("returns 201 with both calendar dates for a valid request", func() {
		created := s.sampleBooking()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)

		rec := s.perform(http.MethodPost, url, validBody, true)
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"date":"2026-03-12"`)
		s.Contains(rec.Body.String(), `"jalaliDate":"1404-12-21"`)
		s.Contains(rec.Body.String(), `"status":"active"`)
	})

	s.Run("accepts a jalali date and converts it", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.CreateBookingParams) (*booking.Booking, error) {
				s.Equal("2026-03-12", p.Date.String())
				return s.sampleBooking(), nil
			})

		body := map[string]any{
			"jalaliDate":  "1404-12-21",
			"startTime":   "10:00",
			"clientPhone": "09120000001",
		}
		rec := s.perform(http.MethodPost, url, body, true)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("returns 401 without a token", func() {
		rec := s.perform(http.MethodPost, url, validBody, false)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("returns 400 when both dates are given", func() {
		body := map[string]any{
			"date":        "2026-03-12",
			"jalaliDate":  "1404-12-21",
			"startTime":   "10:00",
			"clientPhone": "09120000001",
		}
		rec := s.perform(http.MethodPost, url, body, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 400 for an impossible jalali date", func() {
		body := map[string]any{
			"jalaliDate":  "1404-13-01",
			"startTime":   "10:00",
			"clientPhone": "09120000001",
		}
		rec := s.perform(http.MethodPost, url, body, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 400 for a malformed start time", func() {
		body := map[string]any{
			"date":        "2026-03-12",
			"startTime":   "25:99",
			"clientPhone": "09120000001",
		}
		rec := s.perform(http.MethodPost, url, body, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 409 with the blocking interval on conflict", func() {
		blocking := uuid.New()
		iv, err := booking.NewInterval(booking.TimeOfDay(10*60), 60)
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &booking.ConflictError{BookingID: blocking, Interval: iv})

		rec := s.perform(http.MethodPost, url, validBody, true)
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), blocking.String())
		s.Contains(rec.Body.String(), `"startTime":"10:00"`)
		s.Contains(rec.Body.String(), `"endTime":"11:00"`)
	})

	s.Run("returns 422 for a past date", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrPastDate)

		rec := s.perform(http.MethodPost, url, validBody, true)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("returns 200 with the cancelled booking", func() {
		b := s.sampleBooking()
		s.Require().NoError(b.Cancel(time.Now()))
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.businessID, b.ID(), false).Return(b, nil)

		rec := s.perform(http.MethodPost, "/bookings/"+b.ID().String()+"/cancel", nil, true)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"status":"cancelled"`)
	})

	s.Run("returns 404 for an unknown booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.businessID, id, false).
			Return(nil, booking.ErrNotFound)

		rec := s.perform(http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, true)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns 409 for a terminal booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.businessID, id, false).
			Return(nil, booking.ErrAlreadyTerminal)

		rec := s.perform(http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, true)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("returns 400 for a malformed id", func() {
		rec := s.perform(http.MethodPost, "/bookings/not-a-uuid/cancel", nil, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("returns the whole day in start order", func() {
		date, err := calendar.ParseCivilDate("2026-03-12")
		s.Require().NoError(err)
		s.mockQueries.EXPECT().ListByDate(gomock.Any(), s.businessID, date).
			Return([]*booking.Booking{s.sampleBooking()}, nil)

		rec := s.perform(http.MethodGet, "/bookings?date=2026-03-12", nil, true)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"startTime":"10:00"`)
	})

	s.Run("returns 400 without a date", func() {
		rec := s.perform(http.MethodGet, "/bookings", nil, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
