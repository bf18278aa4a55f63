package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
)

// RevocationStore records revoked refresh tokens.
type RevocationStore interface {
	RevokeToken(ctx context.Context, jti, userID string, expiresAt int64) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// SessionStore is what Sessions needs from storage: revocations and the
// accounts tokens are issued for.
type SessionStore interface {
	RevocationStore
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Sessions issues, refreshes and revokes token pairs.
type Sessions struct {
	jwt   *JWTManager
	store SessionStore
}

// NewSessions creates a Sessions backed by store.
func NewSessions(jwt *JWTManager, store SessionStore) *Sessions {
	return &Sessions{jwt: jwt, store: store}
}

// JWT returns the underlying token manager.
func (s *Sessions) JWT() *JWTManager {
	return s.jwt
}

// Start issues a token pair for a freshly authenticated user.
func (s *Sessions) Start(user *models.User) (TokenPair, error) {
	return s.jwt.GeneratePair(user)
}

// Refresh exchanges a valid, unrevoked refresh token for a new access token.
// The account the token was issued for must still exist.
func (s *Sessions) Refresh(ctx context.Context, refreshToken string) (string, time.Time, *Claims, error) {
	claims, err := s.validateRefresh(ctx, refreshToken)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	user, err := s.store.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", time.Time{}, nil, ErrInvalidToken
	}
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	access, expiresAt, err := s.jwt.Generate(user, AccessToken)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return access, expiresAt, claims, nil
}

// Revoke blacklists a refresh token until it expires. Revoking an already
// revoked token succeeds.
func (s *Sessions) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.jwt.ValidateType(refreshToken, RefreshToken)
	if err != nil {
		return err
	}
	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}
	if err := s.store.RevokeToken(ctx, claims.ID, claims.UserID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *Sessions) validateRefresh(ctx context.Context, refreshToken string) (*Claims, error) {
	claims, err := s.jwt.ValidateType(refreshToken, RefreshToken)
	if err != nil {
		return nil, err
	}
	revoked, err := s.store.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}
	return claims, nil
}
