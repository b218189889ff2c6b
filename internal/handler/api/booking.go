package api

import (
	"errors"
	"net/http"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
	"nobat/internal/domain/catalog"
	reqdto "nobat/internal/handler/dto/request"
	resdto "nobat/internal/handler/dto/response"
	"nobat/internal/handler/httperr"
	"nobat/internal/handler/middleware"
	"nobat/internal/usecase/commands"
	"nobat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create booking
// @Description Book an appointment slot for a client
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ResolveDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	startTime, err := booking.ParseTimeOfDay(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time",
		})
		return
	}

	created, err := h.commands.Create(c.Request.Context(), commands.CreateBookingParams{
		BusinessID:   businessID,
		Date:         date,
		StartTime:    startTime,
		ServiceIDs:   req.ServiceIDs,
		ClientPhone:  req.ClientPhone,
		NotifyClient: req.NotifyClient,
	})
	if err != nil {
		var conflict *booking.ConflictError
		switch {
		case errors.As(err, &conflict):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"Requested slot is already booked", resdto.FromConflict(conflict))
		case errors.Is(err, booking.ErrPastDate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking date is in the past",
			})
		case errors.Is(err, catalog.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, calendar.ErrInvalidDate), errors.Is(err, booking.ErrInvalidTimeOfDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Cancel booking
// @Description Cancel an active booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancel options"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	// Body is optional; absence means no client notification.
	var req reqdto.CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	cancelled, err := h.commands.Cancel(c.Request.Context(), businessID, id, req.NotifyClient)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, booking.ErrAlreadyTerminal):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled or done",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(cancelled))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	b, err := h.queries.GetByID(c.Request.Context(), businessID, id)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary List bookings
// @Description List all bookings of one day, any status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string false "Gregorian date YYYY-MM-DD"
// @Param jalaliDate query string false "Jalali date YYYY-MM-DD"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var q reqdto.BookingsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query format",
		})
		return
	}

	date, err := q.ResolveDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	bookings, err := h.queries.ListByDate(c.Request.Context(), businessID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(bookings))
	for i, b := range bookings {
		response[i] = resdto.FromBooking(b)
	}

	c.JSON(http.StatusOK, response)
}
