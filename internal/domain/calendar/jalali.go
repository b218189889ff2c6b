package calendar

import "fmt"

// JalaliDate is a Persian (Jalali) calendar date. Months are 1-based:
// Farvardin = 1 .. Esfand = 12.
type JalaliDate struct {
	Year  int
	Month int
	Day   int
}

// Leap years follow the 33-year intercalation cycle: a year is leap exactly
// when year mod 33 lands on one of the eight remainders below. This is not
// %4 arithmetic; e.g. 1403 (r=17) is leap while 1402 and 1404 are not.
var jalaliLeapRemainders = map[int]struct{}{
	1: {}, 5: {}, 9: {}, 13: {}, 17: {}, 22: {}, 26: {}, 30: {},
}

func IsJalaliLeap(year int) bool {
	_, ok := jalaliLeapRemainders[year%33]
	return ok
}

var jalaliMonthDays = [12]int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}

func JalaliDaysInMonth(year, month int) int {
	if month == 12 && IsJalaliLeap(year) {
		return 30
	}
	return jalaliMonthDays[month-1]
}

func NewJalaliDate(year, month, day int) (JalaliDate, error) {
	d := JalaliDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return JalaliDate{}, err
	}
	return d, nil
}

func (d JalaliDate) Validate() error {
	if d.Year < MinJalaliYear || d.Year > MaxJalaliYear {
		return fmt.Errorf("%w: jalali year %d out of range", ErrInvalidDate, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: jalali month %d", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > JalaliDaysInMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: jalali day %d of %d-%02d", ErrInvalidDate, d.Day, d.Year, d.Month)
	}
	return nil
}

func ParseJalaliDate(s string) (JalaliDate, error) {
	var y, m, day int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &day); err != nil {
		return JalaliDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewJalaliDate(y, m, day)
}

func (d JalaliDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Day counts below are anchored at 1 Farvardin 979 AP == 20 March 1600 AD,
// which sits 79 days after 1 January 1600. Converting through this single
// epoch is what makes ToJalali/ToCivil exact inverses of each other.
const jalaliEpochOffset = 79

// The conversion window is the overlap of the two calendars' year ranges:
// 1 Farvardin 980 (1601-03-21) through 29 Esfand 1678 (2300-03-20). Day
// numbers count from the 979 epoch.
const (
	minConversionDay = 366    // 1 Farvardin 980 == 1601-03-21
	maxConversionDay = 255669 // 29 Esfand 1678 == 2300-03-20
)

// civilDayNumber counts days since 1600-01-01.
func civilDayNumber(d CivilDate) int {
	gy := d.Year - 1600
	n := 365*gy + (gy+3)/4 - (gy+99)/100 + (gy+399)/400
	for m := 1; m < d.Month; m++ {
		n += civilDaysInMonth(d.Year, m)
	}
	return n + d.Day - 1
}

// jalaliDayNumber counts days since 1 Farvardin 979.
func jalaliDayNumber(d JalaliDate) int {
	jy := d.Year - 979
	n := 365*jy + (jy/33)*8 + (jy%33+3)/4
	for m := 1; m < d.Month; m++ {
		n += jalaliMonthDays[m-1]
	}
	return n + d.Day - 1
}

// ToJalali converts a Gregorian civil date to its Jalali representation.
func ToJalali(d CivilDate) (JalaliDate, error) {
	if err := d.Validate(); err != nil {
		return JalaliDate{}, err
	}

	days := civilDayNumber(d) - jalaliEpochOffset
	if days < minConversionDay || days > maxConversionDay {
		return JalaliDate{}, fmt.Errorf("%w: %s outside the conversion window", ErrInvalidDate, d)
	}

	// 12053 days per 33-year cycle, 1461 per 4-year leap block.
	cycles := days / 12053
	days %= 12053

	jy := 979 + 33*cycles + 4*(days/1461)
	days %= 1461
	if days >= 366 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	month := 1
	for month < 12 && days >= jalaliMonthDays[month-1] {
		days -= jalaliMonthDays[month-1]
		month++
	}

	// The output is structurally valid by construction; only the input range
	// is policed, so conversion stays total over the supported window.
	return JalaliDate{Year: jy, Month: month, Day: days + 1}, nil
}

// ToCivil converts a Jalali date to its Gregorian representation.
func (d JalaliDate) ToCivil() (CivilDate, error) {
	if err := d.Validate(); err != nil {
		return CivilDate{}, err
	}

	days := jalaliDayNumber(d) + jalaliEpochOffset

	gy := 1600 + 400*(days/146097)
	days %= 146097

	leap := true
	if days >= 36525 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		} else {
			leap = false
		}
	}

	gy += 4 * (days / 1461)
	days %= 1461
	if days >= 366 {
		leap = false
		days--
		gy += days / 365
		days %= 365
	}

	month := 1
	for {
		dim := civilMonthDays[month-1]
		if month == 2 && leap {
			dim++
		}
		if days < dim {
			break
		}
		days -= dim
		month++
	}

	return CivilDate{Year: gy, Month: month, Day: days + 1}, nil
}

// Weekday of a Jalali date, derived through the Gregorian side.
func (d JalaliDate) Weekday() (string, error) {
	g, err := d.ToCivil()
	if err != nil {
		return "", err
	}
	return g.Weekday().String(), nil
}
