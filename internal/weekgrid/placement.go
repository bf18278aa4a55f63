package weekgrid

import "cloud.google.com/go/civil"

// Placement is the grid coordinate stored on an event.
type Placement struct {
	WeekIndex int `json:"week_index"`
	DayOfWeek int `json:"day_of_week"`
}

// Mode is an input to PlaceEvent: ExplicitDate or WeekAndDay.
type Mode interface {
	place(m Model, birth civil.Date) (Placement, error)
}

// ExplicitDate places an event on the bucket holding Date.
type ExplicitDate struct {
	Date civil.Date
}

// ParseExplicitDate builds an ExplicitDate from form input.
func ParseExplicitDate(s string) (ExplicitDate, error) {
	d, err := ParseDate(s)
	if err != nil {
		return ExplicitDate{}, err
	}
	return ExplicitDate{Date: d}, nil
}

func (e ExplicitDate) place(m Model, birth civil.Date) (Placement, error) {
	week, err := WeekIndexOf(birth, e.Date)
	if err != nil {
		return Placement{}, err
	}
	day, err := m.dayNumber(birth, week, e.Date)
	if err != nil {
		return Placement{}, err
	}
	return Placement{WeekIndex: week, DayOfWeek: day}, nil
}

// WeekAndDay is a selection made on the grid: a cell, then a day in it.
// DayOfWeek is stored as given.
type WeekAndDay struct {
	WeekIndex int
	DayOfWeek int
}

func (s WeekAndDay) place(_ Model, birth civil.Date) (Placement, error) {
	if err := validate(birth); err != nil {
		return Placement{}, err
	}
	if s.DayOfWeek < 0 || s.DayOfWeek >= DaysPerWeek {
		return Placement{}, &OutOfRangeError{Offset: s.DayOfWeek}
	}
	return Placement{WeekIndex: s.WeekIndex, DayOfWeek: s.DayOfWeek}, nil
}

// PlaceEvent resolves the placement for an event of a person born on birth.
func (m Model) PlaceEvent(birth civil.Date, mode Mode) (Placement, error) {
	return mode.place(m, birth)
}

// DateOf returns the calendar date a placement stands for. It is the inverse
// of placing an ExplicitDate under the same Model: the result always lies
// inside the placement's week bucket.
func (m Model) DateOf(birth civil.Date, p Placement) civil.Date {
	start, _ := DateRangeOf(birth, p.WeekIndex)
	first, ok := m.WeekStart.Calendar()
	if !ok {
		return start.AddDays(p.DayOfWeek)
	}
	// Exactly one day of the bucket carries the wanted day number.
	shift := floorMod(int(first)+p.DayOfWeek-int(weekdayOf(start)), DaysPerWeek)
	return start.AddDays(shift)
}

// WeekDates lists the seven dates of week in bucket order, for day pickers.
func WeekDates(birth civil.Date, week int) []civil.Date {
	start, _ := DateRangeOf(birth, week)
	dates := make([]civil.Date, DaysPerWeek)
	for i := range dates {
		dates[i] = start.AddDays(i)
	}
	return dates
}

// DayNumber returns the day number d has inside its bucket under m.
func (m Model) DayNumber(birth, d civil.Date) (int, error) {
	week, err := WeekIndexOf(birth, d)
	if err != nil {
		return 0, err
	}
	return m.dayNumber(birth, week, d)
}

func (m Model) dayNumber(birth civil.Date, week int, d civil.Date) (int, error) {
	if first, ok := m.WeekStart.Calendar(); ok {
		return floorMod(int(weekdayOf(d))-int(first), DaysPerWeek), nil
	}
	start, _ := DateRangeOf(birth, week)
	return DayOfWeekOffset(start, d)
}
