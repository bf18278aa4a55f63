package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// ErrInvalid marks records that fail validation.
var ErrInvalid = errors.New("invalid")

const (
	// MaxTitleLength is the longest accepted event title, in characters.
	MaxTitleLength = 200
	// MaxTagLength is the longest accepted tag name, in characters.
	MaxTagLength = 50
)

// Event is an annotation on one week cell of a user's grid.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// UserID is the owner of the event.
	UserID string

	// WeekIndex is the grid cell, counted in weeks since the owner's birth.
	WeekIndex int

	// DayOfWeek is the day inside the week bucket, 0..6.
	DayOfWeek int

	Title       string
	Description string

	// Icon is a category ID (see Categories).
	Icon string

	// Color is a CSS color; defaults to the category color.
	Color string

	// Tags are tag names, without duplicates.
	Tags []string

	CreatedAt int64
	UpdatedAt int64
}

// Placement returns the event's grid coordinate.
func (e *Event) Placement() weekgrid.Placement {
	return weekgrid.Placement{WeekIndex: e.WeekIndex, DayOfWeek: e.DayOfWeek}
}

// SetPlacement moves the event to p.
func (e *Event) SetPlacement(p weekgrid.Placement) {
	e.WeekIndex = p.WeekIndex
	e.DayOfWeek = p.DayOfWeek
}

// Normalize trims text fields, fills defaults from the category and removes
// duplicate tags.
func (e *Event) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Icon = strings.TrimSpace(e.Icon)
	if e.Icon == "" {
		e.Icon = DefaultCategory.ID
	}
	if e.Color == "" {
		if c, ok := CategoryByID(e.Icon); ok {
			e.Color = c.Color
		}
	}
	e.Tags = NormalizeTags(e.Tags)
}

// Validate checks the constraints enforced before an event is stored. Week
// indices before birth or past the 80 year horizon are rejected.
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if utf8.RuneCountInString(e.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title longer than %d characters", ErrInvalid, MaxTitleLength)
	}
	if e.WeekIndex < 0 || e.WeekIndex > weekgrid.MaxWeekIndex {
		return fmt.Errorf("%w: week_index %d outside 0..%d", ErrInvalid, e.WeekIndex, weekgrid.MaxWeekIndex)
	}
	if e.DayOfWeek < 0 || e.DayOfWeek >= weekgrid.DaysPerWeek {
		return fmt.Errorf("%w: day_of_week %d outside 0..6", ErrInvalid, e.DayOfWeek)
	}
	if _, ok := CategoryByID(e.Icon); !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, e.Icon)
	}
	for _, tag := range e.Tags {
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return fmt.Errorf("%w: tag %q longer than %d characters", ErrInvalid, tag, MaxTagLength)
		}
	}
	return nil
}
