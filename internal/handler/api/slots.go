package api

import (
	"errors"
	"net/http"

	"nobat/internal/domain/calendar"
	"nobat/internal/domain/catalog"
	"nobat/internal/domain/schedule"
	reqdto "nobat/internal/handler/dto/request"
	resdto "nobat/internal/handler/dto/response"
	"nobat/internal/handler/middleware"
	"nobat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotsHandler struct {
	slots queries.SlotQueries
}

func NewSlotsHandler(slots queries.SlotQueries) *SlotsHandler {
	return &SlotsHandler{slots: slots}
}

// @Summary Available slots
// @Description List bookable start times for a day and service selection
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param date query string false "Gregorian date YYYY-MM-DD"
// @Param jalaliDate query string false "Jalali date YYYY-MM-DD"
// @Param serviceIds query []string false "Selected service IDs"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots [get]
func (h *SlotsHandler) GetSlots(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var q reqdto.SlotsQuery
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

	slots, err := h.slots.AvailableSlots(c.Request.Context(), businessID, date, q.ServiceIDs)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, calendar.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidDuration):
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

	c.JSON(http.StatusOK, resdto.FromSlots(date, slots))
}
