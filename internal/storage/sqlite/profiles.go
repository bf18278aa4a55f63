package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// GetProfile retrieves the profile of a user.
func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var birth string
	profile := &models.Profile{}
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, birth_date, created_at, updated_at FROM profiles WHERE user_id = ?",
		userID,
	).Scan(&profile.UserID, &birth, &profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile of %s: %w", userID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.BirthDate, err = civil.ParseDate(birth)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored birth date %q: %w", birth, err)
	}
	return profile, nil
}

// SaveProfile inserts or replaces the profile of profile.UserID.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	now := time.Now().Unix()
	if profile.CreatedAt == 0 {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, birth_date, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			birth_date = excluded.birth_date,
			updated_at = excluded.updated_at
	`, profile.UserID, profile.BirthDate.String(), profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetSettings retrieves the settings of a user, or the defaults when none
// are stored.
func (s *SQLiteStore) GetSettings(ctx context.Context, userID string) (*models.Settings, error) {
	var theme, weekStart string
	settings := &models.Settings{}
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, theme, week_start, created_at, updated_at FROM user_settings WHERE user_id = ?",
		userID,
	).Scan(&settings.UserID, &theme, &weekStart, &settings.CreatedAt, &settings.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.Theme, err = models.ParseTheme(theme); err != nil {
		return nil, fmt.Errorf("failed to parse stored theme: %w", err)
	}
	if settings.WeekStart, err = weekgrid.ParseWeekStart(weekStart); err != nil {
		return nil, fmt.Errorf("failed to parse stored week start: %w", err)
	}
	return settings, nil
}

// SaveSettings inserts or replaces the settings of settings.UserID.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings *models.Settings) error {
	now := time.Now().Unix()
	if settings.CreatedAt == 0 {
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_settings (user_id, theme, week_start, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			theme = excluded.theme,
			week_start = excluded.week_start,
			updated_at = excluded.updated_at
	`, settings.UserID, string(settings.Theme), settings.WeekStart.String(), settings.CreatedAt, settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
