package weekgrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	DaysPerWeek    = 7
	WeeksPerYear   = 52
	YearsPerDecade = 10
	// WeeksPerDecade is the number of cells in one decade panel. The grid
	// ignores leap-week drift: every year is exactly 52 cells.
	WeeksPerDecade = WeeksPerYear * YearsPerDecade

	// DefaultHorizonYears is the life expectancy the grid is drawn for.
	DefaultHorizonYears = 80
	// MaxWeekIndex is the last cell of the default horizon.
	MaxWeekIndex = DefaultHorizonYears * WeeksPerYear
)

// WeekStart selects how days inside a week bucket are numbered.
//
// The zero value, BirthdayAnchored, numbers days from the bucket start
// (birth date + 7w), so day 0 always has the birth date's weekday. A calendar
// convention numbers days from a fixed weekday instead, like a calendar
// widget's "week starts on" setting. Either way the bucket itself is the same
// seven days; only the numbering inside it changes.
type WeekStart int

const BirthdayAnchored WeekStart = 0

// CalendarWeek returns the convention whose weeks start on first.
func CalendarWeek(first time.Weekday) WeekStart {
	return WeekStart(first) + 1
}

// Calendar reports the first weekday of a calendar convention.
func (s WeekStart) Calendar() (time.Weekday, bool) {
	if s <= BirthdayAnchored || s > CalendarWeek(time.Saturday) {
		return 0, false
	}
	return time.Weekday(s - 1), true
}

// Valid reports whether s is BirthdayAnchored or one of the seven calendar
// conventions.
func (s WeekStart) Valid() bool {
	return s >= BirthdayAnchored && s <= CalendarWeek(time.Saturday)
}

func (s WeekStart) String() string {
	if first, ok := s.Calendar(); ok {
		return strings.ToLower(first.String())
	}
	if s == BirthdayAnchored {
		return "birthday"
	}
	return fmt.Sprintf("WeekStart(%d)", int(s))
}

// ParseWeekStart accepts "birthday", an English weekday name, or a digit 0..6
// with 0 meaning Sunday.
func ParseWeekStart(s string) (WeekStart, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "birthday" {
		return BirthdayAnchored, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 6 {
			return BirthdayAnchored, fmt.Errorf("week start %d outside 0..6", n)
		}
		return CalendarWeek(time.Weekday(n)), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == v {
			return CalendarWeek(d), nil
		}
	}
	return BirthdayAnchored, fmt.Errorf("unknown week start %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s WeekStart) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid week start %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *WeekStart) UnmarshalText(text []byte) error {
	v, err := ParseWeekStart(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Model carries the configuration used for event placement. The zero value
// is ready to use and numbers days from the birthday-anchored bucket start.
type Model struct {
	WeekStart WeekStart
}

// WeekIndexOf returns the number of whole 7-day buckets between birth and
// target. Dates before birth produce negative indices.
func WeekIndexOf(birth, target civil.Date) (int, error) {
	if err := validate(birth, target); err != nil {
		return 0, err
	}
	return floorDiv(target.DaysSince(birth), DaysPerWeek), nil
}

// DateRangeOf returns the bucket of week w as a half-open range
// [start, endExclusive). birth must be a valid date.
func DateRangeOf(birth civil.Date, week int) (start, endExclusive civil.Date) {
	start = birth.AddDays(week * DaysPerWeek)
	return start, start.AddDays(DaysPerWeek)
}

// DayOfWeekOffset returns the number of days from weekStart to eventDate. An
// offset outside 0..6 means the two dates do not belong together and is
// reported as an OutOfRangeError.
func DayOfWeekOffset(weekStart, eventDate civil.Date) (int, error) {
	if err := validate(weekStart, eventDate); err != nil {
		return 0, err
	}
	offset := eventDate.DaysSince(weekStart)
	if offset < 0 || offset >= DaysPerWeek {
		return 0, &OutOfRangeError{Offset: offset}
	}
	return offset, nil
}

// WeeksLived counts the whole weeks between birth and asOf. The result is
// not clamped: an asOf before birth yields a negative count. Use ClampWeeks
// for display.
func WeeksLived(birth, asOf civil.Date) (int, error) {
	return WeekIndexOf(birth, asOf)
}

// ClampWeeks clamps a raw week count to zero for display.
func ClampWeeks(weeks int) int {
	return max(weeks, 0)
}

// AgeAt returns the age in grid years at week w.
func AgeAt(week int) int {
	return floorDiv(week, WeeksPerYear)
}

// Coordinates locates a week index on the decade grid.
type Coordinates struct {
	Decade       int
	YearInDecade int
	WeekInYear   int
}

// CoordinatesOf splits a week index into decade, year and week coordinates.
// Negative indices land in negative decades with in-range year and week.
func CoordinatesOf(week int) Coordinates {
	return Coordinates{
		Decade:       floorDiv(week, WeeksPerDecade),
		YearInDecade: floorMod(week, WeeksPerDecade) / WeeksPerYear,
		WeekInYear:   floorMod(week, WeeksPerYear),
	}
}

// WeekIndex reverses CoordinatesOf.
func (c Coordinates) WeekIndex() int {
	return c.Decade*WeeksPerDecade + c.YearInDecade*WeeksPerYear + c.WeekInYear
}

// YearOfLife is the 1-based year the cell belongs to.
func (c Coordinates) YearOfLife() int {
	return c.Decade*YearsPerDecade + c.YearInDecade + 1
}

// YearLabel renders the row label, e.g. "Year 31".
func (c Coordinates) YearLabel() string {
	return fmt.Sprintf("Year %d", c.YearOfLife())
}

// WeekLabel renders the column label, e.g. "Week 12".
func (c Coordinates) WeekLabel() string {
	return fmt.Sprintf("Week %d", c.WeekInYear+1)
}

// DecadeLabel renders a panel heading, e.g. "Years 11-20".
func DecadeLabel(decade int) string {
	return fmt.Sprintf("Years %d-%d", decade*YearsPerDecade+1, (decade+1)*YearsPerDecade)
}
