package response

import (
	"time"

	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID   `json:"id"`
	ClientPhone string      `json:"clientPhone"`
	Date        string      `json:"date"`
	JalaliDate  string      `json:"jalaliDate,omitempty"`
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	DurationMin int         `json:"durationMin"`
	ServiceIDs  []uuid.UUID `json:"serviceIds,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:          b.ID(),
		ClientPhone: b.ClientPhone(),
		Date:        b.Date().String(),
		StartTime:   b.Interval().Start.String(),
		EndTime:     b.Interval().End().String(),
		DurationMin: b.Interval().DurationMin,
		ServiceIDs:  b.ServiceIDs(),
		Status:      string(b.Status()),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
	if jd, err := calendar.ToJalali(b.Date()); err == nil {
		resp.JalaliDate = jd.String()
	}
	return resp
}

// ConflictDetail is the 409 payload: which booking blocked the creation and
// when it runs.
type ConflictDetail struct {
	BookingID uuid.UUID `json:"bookingId"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

func FromConflict(e *booking.ConflictError) ConflictDetail {
	return ConflictDetail{
		BookingID: e.BookingID,
		StartTime: e.Interval.Start.String(),
		EndTime:   e.Interval.End().String(),
	}
}
