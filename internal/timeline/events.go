// Package timeline holds pure helpers over a user's events and life span.
// Callers own all state; nothing here reads the clock or touches storage.
package timeline

import (
	"cmp"
	"slices"

	"github.com/mmynk/lifecubes/internal/models"
)

// EventSet is a flat collection of events keyed by ID. It is not safe for
// concurrent mutation.
type EventSet struct {
	byID map[string]models.Event
}

// NewEventSet builds a set from events. Later duplicates replace earlier ones.
func NewEventSet(events ...models.Event) *EventSet {
	s := &EventSet{byID: make(map[string]models.Event, len(events))}
	for _, e := range events {
		s.Put(e)
	}
	return s
}

// Put inserts or replaces the event with e.ID.
func (s *EventSet) Put(e models.Event) {
	if s.byID == nil {
		s.byID = make(map[string]models.Event)
	}
	s.byID[e.ID] = e
}

// Delete removes the event and reports whether it was present.
func (s *EventSet) Delete(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

// Get returns the event with id.
func (s *EventSet) Get(id string) (models.Event, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Len returns the number of events.
func (s *EventSet) Len() int {
	return len(s.byID)
}

// All returns every event in grid order.
func (s *EventSet) All() []models.Event {
	out := make([]models.Event, 0, len(s.byID))
	for _, e := range s.byID {
		out = append(out, e)
	}
	SortByPlacement(out)
	return out
}

// InWeek returns the events placed in week, in day order.
func (s *EventSet) InWeek(week int) []models.Event {
	return s.InRange(week, week)
}

// InRange returns the events with from <= week index <= to, in grid order.
func (s *EventSet) InRange(from, to int) []models.Event {
	var out []models.Event
	for _, e := range s.byID {
		if e.WeekIndex >= from && e.WeekIndex <= to {
			out = append(out, e)
		}
	}
	SortByPlacement(out)
	return out
}

// ByWeek groups the events by week index.
func (s *EventSet) ByWeek() map[int][]models.Event {
	out := make(map[int][]models.Event)
	for _, e := range s.All() {
		out[e.WeekIndex] = append(out[e.WeekIndex], e)
	}
	return out
}

// SortByPlacement orders events by week, then day, then ID.
func SortByPlacement(events []models.Event) {
	slices.SortFunc(events, func(a, b models.Event) int {
		return cmp.Or(
			cmp.Compare(a.WeekIndex, b.WeekIndex),
			cmp.Compare(a.DayOfWeek, b.DayOfWeek),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
