// Package service implements the lifecubes Connect RPC services.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"

	"github.com/mmynk/lifecubes/internal/auth"
	"github.com/mmynk/lifecubes/internal/middleware"
	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// Clock returns the current time. Services read "now" only through it.
type Clock func() time.Time

func (c Clock) today() civil.Date {
	if c == nil {
		return weekgrid.Today(time.Now())
	}
	return weekgrid.Today(c())
}

// requireUser returns the authenticated user ID or an Unauthenticated error.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// toConnectError maps domain errors to Connect codes. Errors that are
// already Connect errors pass through.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	var dateErr *weekgrid.InvalidDateError
	var rangeErr *weekgrid.OutOfRangeError
	switch {
	case errors.As(err, &dateErr),
		errors.As(err, &rangeErr),
		errors.Is(err, models.ErrInvalid),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrInvalidUsername):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists),
		errors.Is(err, auth.ErrUsernameTaken):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrRevokedToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// lifeContext is what placing and dating events needs to know about a user.
type lifeContext struct {
	birth    civil.Date
	settings *models.Settings
}

func (l lifeContext) model() weekgrid.Model {
	return l.settings.Model()
}

func loadLifeContext(ctx context.Context, store storage.ProfileStore, userID string) (lifeContext, error) {
	profile, err := store.GetProfile(ctx, userID)
	if err != nil {
		return lifeContext{}, err
	}
	settings, err := store.GetSettings(ctx, userID)
	if err != nil {
		return lifeContext{}, err
	}
	return lifeContext{birth: profile.BirthDate, settings: settings}, nil
}
