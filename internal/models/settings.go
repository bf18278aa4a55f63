package models

import (
	"fmt"

	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a theme name. An empty name selects ThemeSystem.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case "":
		return ThemeSystem, nil
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: unknown theme %q", ErrInvalid, s)
}

// Settings are per-user display preferences.
type Settings struct {
	UserID    string
	Theme     Theme
	WeekStart weekgrid.WeekStart
	CreatedAt int64
	UpdatedAt int64
}

// DefaultSettings returns the settings used before a user saves any.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:    userID,
		Theme:     ThemeSystem,
		WeekStart: weekgrid.BirthdayAnchored,
	}
}

// Model returns the placement model for these settings.
func (s *Settings) Model() weekgrid.Model {
	if s == nil {
		return weekgrid.Model{}
	}
	return weekgrid.Model{WeekStart: s.WeekStart}
}
