package models

import (
	"errors"
	"strings"
	"testing"
)

func TestEventNormalize(t *testing.T) {
	e := &Event{
		Title: "  Graduation ",
		Tags:  []string{"school", " school", "", "family"},
	}
	e.Normalize()

	if e.Title != "Graduation" {
		t.Errorf("Title = %q, want %q", e.Title, "Graduation")
	}
	if e.Icon != "personal" {
		t.Errorf("Icon = %q, want default category", e.Icon)
	}
	if e.Color != "#EC4899" {
		t.Errorf("Color = %q, want category color", e.Color)
	}
	if len(e.Tags) != 2 || e.Tags[0] != "school" || e.Tags[1] != "family" {
		t.Errorf("Tags = %v, want [school family]", e.Tags)
	}
}

func TestEventNormalizeKeepsExplicitColor(t *testing.T) {
	e := &Event{Title: "Trip", Icon: "experiences", Color: "#000000"}
	e.Normalize()
	if e.Color != "#000000" {
		t.Errorf("Color = %q, want explicit color kept", e.Color)
	}
}

func TestEventValidate(t *testing.T) {
	valid := func() *Event {
		return &Event{Title: "First job", Icon: "career", WeekIndex: 1200, DayOfWeek: 3}
	}

	tests := []struct {
		name    string
		mutate  func(e *Event)
		wantErr bool
	}{
		{"valid event", func(e *Event) {}, false},
		{"missing title", func(e *Event) { e.Title = "" }, true},
		{"title too long", func(e *Event) { e.Title = strings.Repeat("a", 201) }, true},
		{"title at limit", func(e *Event) { e.Title = strings.Repeat("ä", 200) }, false},
		{"negative week", func(e *Event) { e.WeekIndex = -1 }, true},
		{"last week of horizon", func(e *Event) { e.WeekIndex = 4160 }, false},
		{"past horizon", func(e *Event) { e.WeekIndex = 4161 }, true},
		{"day seven", func(e *Event) { e.DayOfWeek = 7 }, true},
		{"unknown category", func(e *Event) { e.Icon = "sports" }, true},
		{"tag too long", func(e *Event) { e.Tags = []string{strings.Repeat("t", 51)} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	for _, name := range []string{"light", "dark", "system"} {
		if _, err := ParseTheme(name); err != nil {
			t.Errorf("ParseTheme(%q) error = %v", name, err)
		}
	}
	if got, _ := ParseTheme(""); got != ThemeSystem {
		t.Errorf("ParseTheme(\"\") = %q, want system", got)
	}
	if _, err := ParseTheme("sepia"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseTheme(\"sepia\") error = %v, want ErrInvalid", err)
	}
}
