// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/timeline"
)

var (
	// ErrNotFound is returned when a record does not exist or belongs to
	// another user.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a unique field is taken.
	ErrAlreadyExists = errors.New("already exists")
)

// EventQuery narrows ListEvents.
type EventQuery struct {
	timeline.Filter

	// Ordering is one of timeline.Orderings, optionally prefixed with "-".
	// Empty orders by placement.
	Ordering string

	// Limit caps the number of results; zero means no limit.
	Limit int
}

// UserStore persists accounts.
type UserStore interface {
	// CreateAccount stores a user together with their profile and default
	// settings in one transaction.
	CreateAccount(ctx context.Context, user *models.User, profile *models.Profile) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
	// DeleteUser removes the user and everything they own.
	DeleteUser(ctx context.Context, userID string) error
}

// ProfileStore persists birth dates and display preferences.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
	// GetSettings returns models.DefaultSettings when none are stored.
	GetSettings(ctx context.Context, userID string) (*models.Settings, error)
	SaveSettings(ctx context.Context, settings *models.Settings) error
}

// EventStore persists events and their tags. Every lookup is scoped to a
// user; another user's event is reported as ErrNotFound.
type EventStore interface {
	// CreateEvent assigns an ID and timestamps when unset.
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, userID, eventID string) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, userID, eventID string) error
	ListEvents(ctx context.Context, userID string, q EventQuery) ([]models.Event, error)
	CountEvents(ctx context.Context, userID string) (int, error)
	// ListTags returns the distinct tags on the user's events whose name
	// contains search, ordered by name.
	ListTags(ctx context.Context, userID, search string) ([]models.Tag, error)
}

// TokenStore records revoked refresh tokens.
type TokenStore interface {
	RevokeToken(ctx context.Context, jti, userID string, expiresAt int64) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	// PurgeRevokedTokens drops revocations of tokens that expired before
	// now and returns how many were removed.
	PurgeRevokedTokens(ctx context.Context, now int64) (int64, error)
}

// Store defines the full storage surface used by the services.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	UserStore
	ProfileStore
	EventStore
	TokenStore

	// Close releases any resources held by the store.
	Close() error
}
