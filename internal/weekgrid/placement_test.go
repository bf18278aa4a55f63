package weekgrid

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceExplicitDate(t *testing.T) {
	// 2000-01-01 is a Saturday; 2000-01-10 is the Monday of week 1.
	birth := date(2000, time.January, 1)
	mode := ExplicitDate{Date: date(2000, time.January, 10)}

	tests := []struct {
		name  string
		model Model
		want  Placement
	}{
		{"birthday anchored", Model{}, Placement{WeekIndex: 1, DayOfWeek: 2}},
		{"weeks start on sunday", Model{WeekStart: CalendarWeek(time.Sunday)}, Placement{WeekIndex: 1, DayOfWeek: 1}},
		{"weeks start on monday", Model{WeekStart: CalendarWeek(time.Monday)}, Placement{WeekIndex: 1, DayOfWeek: 0}},
		{"weeks start on saturday", Model{WeekStart: CalendarWeek(time.Saturday)}, Placement{WeekIndex: 1, DayOfWeek: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.model.PlaceEvent(birth, mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaceExplicitDateBeforeBirth(t *testing.T) {
	birth := date(2000, time.January, 1)
	got, err := Model{}.PlaceEvent(birth, ExplicitDate{Date: date(1999, time.December, 31)})
	require.NoError(t, err)
	assert.Equal(t, Placement{WeekIndex: -1, DayOfWeek: 6}, got)
}

func TestPlaceExplicitDateAlwaysInRange(t *testing.T) {
	birth := date(1993, time.August, 19)
	models := []Model{{}}
	for d := time.Sunday; d <= time.Saturday; d++ {
		models = append(models, Model{WeekStart: CalendarWeek(d)})
	}

	for _, m := range models {
		for offset := -60; offset < 900; offset++ {
			target := birth.AddDays(offset)
			p, err := m.PlaceEvent(birth, ExplicitDate{Date: target})
			require.NoError(t, err)
			if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
				t.Fatalf("%s: day %d out of range for %s", m.WeekStart, p.DayOfWeek, target)
			}
			if got := m.DateOf(birth, p); got != target {
				t.Fatalf("%s: %s placed at %+v maps back to %s", m.WeekStart, target, p, got)
			}
		}
	}
}

func TestPlaceWeekAndDay(t *testing.T) {
	birth := date(2000, time.January, 1)

	got, err := Model{WeekStart: CalendarWeek(time.Sunday)}.PlaceEvent(birth, WeekAndDay{WeekIndex: 1613, DayOfWeek: 4})
	require.NoError(t, err)
	assert.Equal(t, Placement{WeekIndex: 1613, DayOfWeek: 4}, got)

	for _, day := range []int{-1, 7} {
		_, err := Model{}.PlaceEvent(birth, WeekAndDay{WeekIndex: 3, DayOfWeek: day})
		var rangeErr *OutOfRangeError
		assert.ErrorAs(t, err, &rangeErr, "day %d", day)
	}
}

func TestPlaceEventInvalidBirthDate(t *testing.T) {
	bad := civil.Date{Year: 2001, Month: time.February, Day: 29}
	var dateErr *InvalidDateError

	_, err := Model{}.PlaceEvent(bad, ExplicitDate{Date: date(2001, time.March, 1)})
	assert.ErrorAs(t, err, &dateErr)

	_, err = Model{}.PlaceEvent(bad, WeekAndDay{WeekIndex: 1, DayOfWeek: 1})
	assert.ErrorAs(t, err, &dateErr)
}

func TestParseExplicitDate(t *testing.T) {
	mode, err := ParseExplicitDate("2000-01-10")
	require.NoError(t, err)
	assert.Equal(t, date(2000, time.January, 10), mode.Date)

	_, err = ParseExplicitDate("10.01.2000")
	var dateErr *InvalidDateError
	assert.ErrorAs(t, err, &dateErr)
}

func TestDateOf(t *testing.T) {
	birth := date(2000, time.January, 1)
	p := Placement{WeekIndex: 1, DayOfWeek: 2}

	assert.Equal(t, date(2000, time.January, 10), Model{}.DateOf(birth, p))
	// Under a Sunday convention day 2 is the Tuesday of the bucket.
	assert.Equal(t, date(2000, time.January, 11), Model{WeekStart: CalendarWeek(time.Sunday)}.DateOf(birth, p))
}

func TestWeekDatesAndDayNumber(t *testing.T) {
	birth := date(2000, time.January, 1)
	dates := WeekDates(birth, 1)
	require.Len(t, dates, 7)
	assert.Equal(t, date(2000, time.January, 8), dates[0])
	assert.Equal(t, date(2000, time.January, 14), dates[6])

	day, err := Model{WeekStart: CalendarWeek(time.Monday)}.DayNumber(birth, dates[0])
	require.NoError(t, err)
	assert.Equal(t, 5, day, "Saturday is day 5 of a Monday week")
}
