package request

import (
	"fmt"

	"nobat/internal/domain/calendar"

	"github.com/google/uuid"
)

// Booking dates arrive in either calendar: `date` is Gregorian YYYY-MM-DD,
// `jalaliDate` is Jalali YYYY-MM-DD. Exactly one must be set; everything past
// the handler works in Gregorian.
type CreateBookingRequest struct {
	Date         string      `json:"date,omitempty"`
	JalaliDate   string      `json:"jalaliDate,omitempty"`
	StartTime    string      `json:"startTime" binding:"required"`
	ServiceIDs   []uuid.UUID `json:"serviceIds,omitempty"`
	ClientPhone  string      `json:"clientPhone" binding:"required"`
	NotifyClient bool        `json:"notifyClient,omitempty"`
}

func (r CreateBookingRequest) ResolveDate() (calendar.CivilDate, error) {
	return resolveDate(r.Date, r.JalaliDate)
}

type CancelBookingRequest struct {
	NotifyClient bool `json:"notifyClient,omitempty"`
}

// SlotsQuery binds the availability lookup's query string; the same dual-
// calendar date rule as bookings applies.
type SlotsQuery struct {
	Date       string      `form:"date"`
	JalaliDate string      `form:"jalaliDate"`
	ServiceIDs []uuid.UUID `form:"serviceIds"`
}

func (q SlotsQuery) ResolveDate() (calendar.CivilDate, error) {
	return resolveDate(q.Date, q.JalaliDate)
}

type BookingsQuery struct {
	Date       string `form:"date"`
	JalaliDate string `form:"jalaliDate"`
}

func (q BookingsQuery) ResolveDate() (calendar.CivilDate, error) {
	return resolveDate(q.Date, q.JalaliDate)
}

func resolveDate(civil, jalali string) (calendar.CivilDate, error) {
	switch {
	case civil != "" && jalali != "":
		return calendar.CivilDate{}, fmt.Errorf("%w: both date and jalaliDate given", calendar.ErrInvalidDate)
	case civil != "":
		return calendar.ParseCivilDate(civil)
	case jalali != "":
		jd, err := calendar.ParseJalaliDate(jalali)
		if err != nil {
			return calendar.CivilDate{}, err
		}
		return jd.ToCivil()
	default:
		return calendar.CivilDate{}, fmt.Errorf("%w: date or jalaliDate required", calendar.ErrInvalidDate)
	}
}
