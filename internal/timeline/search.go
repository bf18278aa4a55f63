package timeline

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mmynk/lifecubes/internal/models"
)

// Filter selects events. Zero fields match everything.
type Filter struct {
	// Text matches title, description or tag names, case-insensitively.
	Text string
	// Category matches the event icon; "all" matches everything.
	Category string
	// Tag matches one tag name exactly.
	Tag string
	// WeekIndex and DayOfWeek match exact placement fields.
	WeekIndex *int
	DayOfWeek *int
	// FromWeek and ToWeek bound the week index, inclusive.
	FromWeek *int
	ToWeek   *int
}

// Match reports whether e passes the filter.
func (f Filter) Match(e models.Event) bool {
	if f.Text != "" && !matchesText(e, strings.ToLower(f.Text)) {
		return false
	}
	if f.Category != "" && f.Category != "all" && e.Icon != f.Category {
		return false
	}
	if f.Tag != "" && !slices.Contains(e.Tags, f.Tag) {
		return false
	}
	if f.WeekIndex != nil && e.WeekIndex != *f.WeekIndex {
		return false
	}
	if f.DayOfWeek != nil && e.DayOfWeek != *f.DayOfWeek {
		return false
	}
	if f.FromWeek != nil && e.WeekIndex < *f.FromWeek {
		return false
	}
	if f.ToWeek != nil && e.WeekIndex > *f.ToWeek {
		return false
	}
	return true
}

func matchesText(e models.Event, query string) bool {
	if strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Description), query) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Search returns the events matching f, keeping their order.
func Search(events []models.Event, f Filter) []models.Event {
	var out []models.Event
	for _, e := range events {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Orderings accepted by Sort. A leading "-" reverses the order.
var Orderings = []string{"week_index", "day_of_week", "created_at"}

// Sort orders events in place by field. An empty ordering sorts by
// placement.
func Sort(events []models.Event, ordering string) error {
	if ordering == "" {
		SortByPlacement(events)
		return nil
	}
	field, desc := strings.CutPrefix(ordering, "-")
	var key func(e models.Event) int64
	switch field {
	case "week_index":
		key = func(e models.Event) int64 { return int64(e.WeekIndex) }
	case "day_of_week":
		key = func(e models.Event) int64 { return int64(e.DayOfWeek) }
	case "created_at":
		key = func(e models.Event) int64 { return e.CreatedAt }
	default:
		return fmt.Errorf("%w: unknown ordering %q", models.ErrInvalid, ordering)
	}
	slices.SortStableFunc(events, func(a, b models.Event) int {
		c := cmp.Compare(key(a), key(b))
		if desc {
			return -c
		}
		return c
	})
	return nil
}
