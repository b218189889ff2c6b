//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"nobat/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJalaliKnownDates(t *testing.T) {
	testCases := []struct {
		name  string
		civil calendar.CivilDate
		want  calendar.JalaliDate
	}{
		{
			name:  "nowruz 1403",
			civil: calendar.CivilDate{Year: 2024, Month: 3, Day: 20},
			want:  calendar.JalaliDate{Year: 1403, Month: 1, Day: 1},
		},
		{
			name:  "nowruz 1404",
			civil: calendar.CivilDate{Year: 2025, Month: 3, Day: 21},
			want:  calendar.JalaliDate{Year: 1404, Month: 1, Day: 1},
		},
		{
			name:  "last day of leap esfand",
			civil: calendar.CivilDate{Year: 2025, Month: 3, Day: 20},
			want:  calendar.JalaliDate{Year: 1403, Month: 12, Day: 30},
		},
		{
			name:  "22 bahman 1357",
			civil: calendar.CivilDate{Year: 1979, Month: 2, Day: 11},
			want:  calendar.JalaliDate{Year: 1357, Month: 11, Day: 22},
		},
		{
			name:  "new year 2020",
			civil: calendar.CivilDate{Year: 2020, Month: 1, Day: 1},
			want:  calendar.JalaliDate{Year: 1398, Month: 10, Day: 11},
		},
		{
			name:  "mid dey 1403",
			civil: calendar.CivilDate{Year: 2024, Month: 12, Day: 25},
			want:  calendar.JalaliDate{Year: 1403, Month: 10, Day: 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calendar.ToJalali(tc.civil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := got.ToCivil()
			require.NoError(t, err)
			assert.Equal(t, tc.civil, back)
		})
	}
}

func TestJalaliLeapYears(t *testing.T) {
	leap := []int{1375, 1399, 1403, 1408, 1387, 1391, 1395}
	nonLeap := []int{1400, 1401, 1402, 1404, 1398, 1396}

	for _, y := range leap {
		assert.True(t, calendar.IsJalaliLeap(y), "year %d should be leap", y)
		assert.Equal(t, 30, calendar.JalaliDaysInMonth(y, 12))
	}
	for _, y := range nonLeap {
		assert.False(t, calendar.IsJalaliLeap(y), "year %d should not be leap", y)
		assert.Equal(t, 29, calendar.JalaliDaysInMonth(y, 12))
	}
}

func TestJalaliMonthBounds(t *testing.T) {
	for m := 1; m <= 6; m++ {
		assert.Equal(t, 31, calendar.JalaliDaysInMonth(1402, m))
	}
	for m := 7; m <= 11; m++ {
		assert.Equal(t, 30, calendar.JalaliDaysInMonth(1402, m))
	}
}

func TestJalaliDateValidation(t *testing.T) {
	testCases := []struct {
		name    string
		year    int
		month   int
		day     int
		wantErr bool
	}{
		{name: "valid mid-year", year: 1403, month: 5, day: 31},
		{name: "day 31 in month 7", year: 1403, month: 7, day: 31, wantErr: true},
		{name: "esfand 30 in leap year", year: 1403, month: 12, day: 30},
		{name: "esfand 30 in common year", year: 1402, month: 12, day: 30, wantErr: true},
		{name: "month 13", year: 1403, month: 13, day: 1, wantErr: true},
		{name: "day zero", year: 1403, month: 1, day: 0, wantErr: true},
		{name: "year below range", year: 900, month: 1, day: 1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendar.NewJalaliDate(tc.year, tc.month, tc.day)
			if tc.wantErr {
				require.ErrorIs(t, err, calendar.ErrInvalidDate)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Round-trip property: stepping through the civil range at a prime stride
// plus exhaustively around year boundaries keeps the test fast while still
// crossing every month length and leap pattern.
func TestRoundTripProperty(t *testing.T) {
	start := calendar.CivilDate{Year: 1921, Month: 3, Day: 22}
	d := start
	for i := 0; i < 5000; i++ {
		j, err := calendar.ToJalali(d)
		require.NoError(t, err, "civil %s", d)
		back, err := j.ToCivil()
		require.NoError(t, err, "jalali %s", j)
		require.Equal(t, d, back, "round trip through %s", j)
		d = addDays(d, 17)
	}
}

func TestRoundTripAroundNowruz(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		d := calendar.CivilDate{Year: year, Month: 3, Day: 15}
		for i := 0; i < 15; i++ {
			j, err := calendar.ToJalali(d)
			require.NoError(t, err)
			back, err := j.ToCivil()
			require.NoError(t, err)
			require.Equal(t, d, back)
			d = addDays(d, 1)
		}
	}
}

// The first and last convertible days must round-trip, and their neighbors
// just outside the window must be rejected in both directions.
func TestConversionWindowEdges(t *testing.T) {
	first := calendar.CivilDate{Year: 1601, Month: 3, Day: 21}
	j, err := calendar.ToJalali(first)
	require.NoError(t, err)
	assert.Equal(t, calendar.JalaliDate{Year: 980, Month: 1, Day: 1}, j)
	back, err := j.ToCivil()
	require.NoError(t, err)
	assert.Equal(t, first, back)

	last := calendar.CivilDate{Year: 2300, Month: 3, Day: 20}
	j, err = calendar.ToJalali(last)
	require.NoError(t, err)
	assert.Equal(t, calendar.JalaliDate{Year: 1678, Month: 12, Day: 29}, j)
	back, err = j.ToCivil()
	require.NoError(t, err)
	assert.Equal(t, last, back)

	_, err = calendar.ToJalali(calendar.CivilDate{Year: 1601, Month: 3, Day: 20})
	require.ErrorIs(t, err, calendar.ErrInvalidDate)
	_, err = calendar.ToJalali(calendar.CivilDate{Year: 2300, Month: 3, Day: 21})
	require.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = calendar.JalaliDate{Year: 979, Month: 12, Day: 29}.ToCivil()
	require.ErrorIs(t, err, calendar.ErrInvalidDate)
	_, err = calendar.JalaliDate{Year: 1679, Month: 1, Day: 1}.ToCivil()
	require.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestJalaliWeekday(t *testing.T) {
	// 1403-01-01 == 2024-03-20, a Wednesday.
	wd, err := calendar.JalaliDate{Year: 1403, Month: 1, Day: 1}.Weekday()
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", wd)
}

func addDays(d calendar.CivilDate, n int) calendar.CivilDate {
	return calendar.CivilDateOf(d.At(0, time.UTC).AddDate(0, 0, n))
}
