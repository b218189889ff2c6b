// Package calendar implements the two civil calendars the booking timeline
// speaks: Gregorian for storage and Jalali (Persian) for everything
// user-facing. Conversions go through a shared total day count so the
// round-trip invariant holds in both directions.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Structural year bounds for each calendar. Conversions are further
// restricted to the window where both calendars are in range, civil
// 1601-03-21 through 2300-03-20 (Jalali 980-01-01 through 1678-12-29), so
// every date a conversion accepts round-trips; outside it conversions are
// rejected rather than silently extrapolated.
const (
	MinCivilYear  = 1601
	MaxCivilYear  = 2300
	MinJalaliYear = 980
	MaxJalaliYear = 1678
)

// CivilDate is a Gregorian calendar date with no time-of-day component.
// Months are 1-based, matching time.Month.
type CivilDate struct {
	Year  int
	Month int
	Day   int
}

const civilLayout = "2006-01-02"

func NewCivilDate(year, month, day int) (CivilDate, error) {
	d := CivilDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return CivilDate{}, err
	}
	return d, nil
}

func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewCivilDate(t.Year(), int(t.Month()), t.Day())
}

// CivilDateOf truncates an instant to its calendar date in the instant's
// location.
func CivilDateOf(t time.Time) CivilDate {
	return CivilDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d CivilDate) Validate() error {
	if d.Year < MinCivilYear || d.Year > MaxCivilYear {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > civilDaysInMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: day %d of %d-%02d", ErrInvalidDate, d.Day, d.Year, d.Month)
	}
	return nil
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// At returns the instant at the given minutes past midnight on this date in
// loc.
func (d CivilDate) At(minutes int, loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, minutes/60, minutes%60, 0, 0, loc)
}

func (d CivilDate) Weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsWeekend reports the single fixed non-working day: Friday.
func (d CivilDate) IsWeekend() bool {
	return d.Weekday() == time.Friday
}

func (d CivilDate) Before(other CivilDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d CivilDate) Equal(other CivilDate) bool {
	return d == other
}

func IsCivilLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var civilMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func civilDaysInMonth(year, month int) int {
	if month == 2 && IsCivilLeap(year) {
		return 29
	}
	return civilMonthDays[month-1]
}
