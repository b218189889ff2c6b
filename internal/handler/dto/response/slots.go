package response

import (
	"nobat/internal/domain/booking"
	"nobat/internal/domain/calendar"
)

type SlotsResponse struct {
	Date       string   `json:"date"`
	JalaliDate string   `json:"jalaliDate,omitempty"`
	Slots      []string `json:"slots"`
}

func FromSlots(date calendar.CivilDate, slots []booking.TimeOfDay) *SlotsResponse {
	resp := &SlotsResponse{
		Date:  date.String(),
		Slots: make([]string, len(slots)),
	}
	for i, s := range slots {
		resp.Slots[i] = s.String()
	}
	if jd, err := calendar.ToJalali(date); err == nil {
		resp.JalaliDate = jd.String()
	}
	return resp
}
