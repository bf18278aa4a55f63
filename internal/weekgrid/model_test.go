package weekgrid

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestWeekIndexOf(t *testing.T) {
	birth := date(2000, time.January, 1)

	tests := []struct {
		name   string
		target civil.Date
		want   int
	}{
		{"birth date is week zero", birth, 0},
		{"last day of week zero", date(2000, time.January, 7), 0},
		{"first day of week one", date(2000, time.January, 8), 1},
		{"one week before birth", date(1999, time.December, 25), -1},
		{"day before birth floors to -1", date(1999, time.December, 31), -1},
		{"eight days before birth", date(1999, time.December, 24), -2},
		{"across leap day", date(2000, time.March, 4), 9},
		{"eighty years later", date(2080, time.January, 1), 4174},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeekIndexOf(birth, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekIndexOfInvalidDate(t *testing.T) {
	valid := date(2000, time.January, 1)
	invalid := date(2023, time.February, 30)

	for _, args := range [][2]civil.Date{{invalid, valid}, {valid, invalid}} {
		_, err := WeekIndexOf(args[0], args[1])
		var dateErr *InvalidDateError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, "2023-02-30", dateErr.Input)
	}
}

func TestRoundTripContainment(t *testing.T) {
	births := []civil.Date{
		date(2000, time.January, 1),
		date(1996, time.February, 29),
		date(1987, time.December, 31),
	}

	for _, birth := range births {
		for offset := -400; offset <= 4000; offset++ {
			target := birth.AddDays(offset)
			week, err := WeekIndexOf(birth, target)
			require.NoError(t, err)

			start, end := DateRangeOf(birth, week)
			if target.Before(start) || !target.Before(end) {
				t.Fatalf("birth %s: %s not in week %d [%s, %s)", birth, target, week, start, end)
			}
			assert.Equal(t, 7, end.DaysSince(start))
		}
	}
}

func TestWeekIndexAdvancesWithSevenDays(t *testing.T) {
	birth := date(1990, time.June, 15)
	for offset := -30; offset < 800; offset += 3 {
		d1 := birth.AddDays(offset)
		w1, err := WeekIndexOf(birth, d1)
		require.NoError(t, err)
		w2, err := WeekIndexOf(birth, d1.AddDays(7))
		require.NoError(t, err)
		if w2 != w1+1 {
			t.Fatalf("offset %d: week %d then %d", offset, w1, w2)
		}
	}
}

func TestWeekIndexIsMonotonic(t *testing.T) {
	birth := date(1975, time.March, 3)
	prev := -1 << 31
	for offset := -100; offset < 1000; offset++ {
		w, err := WeekIndexOf(birth, birth.AddDays(offset))
		require.NoError(t, err)
		if w < prev {
			t.Fatalf("week index decreased at offset %d: %d < %d", offset, w, prev)
		}
		prev = w
	}
}

func TestDateRangeOf(t *testing.T) {
	birth := date(2000, time.January, 1)

	start, end := DateRangeOf(birth, 1)
	assert.Equal(t, date(2000, time.January, 8), start)
	assert.Equal(t, date(2000, time.January, 15), end)

	start, end = DateRangeOf(birth, -1)
	assert.Equal(t, date(1999, time.December, 25), start)
	assert.Equal(t, birth, end)
}

func TestDayOfWeekOffset(t *testing.T) {
	start := date(2000, time.January, 8)

	for want := range 7 {
		got, err := DayOfWeekOffset(start, start.AddDays(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, offset := range []int{-1, 7, 30} {
		_, err := DayOfWeekOffset(start, start.AddDays(offset))
		var rangeErr *OutOfRangeError
		require.ErrorAs(t, err, &rangeErr, "offset %d", offset)
		assert.Equal(t, offset, rangeErr.Offset)
	}

	_, err := DayOfWeekOffset(date(2001, time.February, 29), start)
	var dateErr *InvalidDateError
	assert.ErrorAs(t, err, &dateErr)
}

func TestWeeksLived(t *testing.T) {
	birth := date(2000, time.January, 1)

	lived, err := WeeksLived(birth, date(2000, time.July, 1))
	require.NoError(t, err)
	assert.Equal(t, 26, lived)

	lived, err = WeeksLived(birth, date(1999, time.December, 1))
	require.NoError(t, err)
	assert.Equal(t, -5, lived, "raw count is not clamped")
	assert.Equal(t, 0, ClampWeeks(lived))
	assert.Equal(t, 26, ClampWeeks(26))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 1990-05-17 ")
	require.NoError(t, err)
	assert.Equal(t, date(1990, time.May, 17), d)

	for _, input := range []string{"", "17/05/1990", "2023-02-30", "1990-13-01", "tomorrow"} {
		_, err := ParseDate(input)
		var dateErr *InvalidDateError
		require.ErrorAs(t, err, &dateErr, "input %q", input)
		assert.Equal(t, input, dateErr.Input)
	}
}

func TestInvalidDateErrorUnwrap(t *testing.T) {
	_, err := ParseDate("2023-02-30")
	require.Error(t, err)

	var dateErr *InvalidDateError
	require.True(t, errors.As(err, &dateErr))
	assert.NotNil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "2023-02-30")
}

func TestCoordinatesOf(t *testing.T) {
	tests := []struct {
		week int
		want Coordinates
	}{
		{0, Coordinates{0, 0, 0}},
		{51, Coordinates{0, 0, 51}},
		{52, Coordinates{0, 1, 0}},
		{519, Coordinates{0, 9, 51}},
		{520, Coordinates{1, 0, 0}},
		{1613, Coordinates{3, 1, 1}},
		{-1, Coordinates{-1, 9, 51}},
	}

	for _, tt := range tests {
		got := CoordinatesOf(tt.week)
		assert.Equal(t, tt.want, got, "week %d", tt.week)
		assert.Equal(t, tt.week, got.WeekIndex(), "round trip of week %d", tt.week)
	}
}

func TestLabels(t *testing.T) {
	c := CoordinatesOf(1613)
	assert.Equal(t, "Year 32", c.YearLabel())
	assert.Equal(t, "Week 2", c.WeekLabel())
	assert.Equal(t, "Years 1-10", DecadeLabel(0))
	assert.Equal(t, "Years 71-80", DecadeLabel(7))
	assert.Equal(t, 31, AgeAt(1613))
	assert.Equal(t, -1, AgeAt(-1))
}

func TestParseWeekStart(t *testing.T) {
	tests := []struct {
		input   string
		want    WeekStart
		wantErr bool
	}{
		{"", BirthdayAnchored, false},
		{"birthday", BirthdayAnchored, false},
		{"Sunday", CalendarWeek(time.Sunday), false},
		{"monday", CalendarWeek(time.Monday), false},
		{"6", CalendarWeek(time.Saturday), false},
		{"0", CalendarWeek(time.Sunday), false},
		{"7", BirthdayAnchored, true},
		{"someday", BirthdayAnchored, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekStart(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestWeekStartText(t *testing.T) {
	for s := BirthdayAnchored; s <= CalendarWeek(time.Saturday); s++ {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var back WeekStart
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	_, err := WeekStart(42).MarshalText()
	assert.Error(t, err)
	assert.False(t, WeekStart(-1).Valid())
}
