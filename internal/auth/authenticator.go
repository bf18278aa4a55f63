// Package auth implements password authentication and JWT sessions.
package auth

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/mmynk/lifecubes/internal/models"
)

// Registration is the input of a sign-up.
type Registration struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	BirthDate civil.Date
}

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new user account together with its profile.
	Register(ctx context.Context, reg Registration) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// ChangeCredential replaces the credential after verifying the current one.
	ChangeCredential(ctx context.Context, userID, current, next string) error

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
