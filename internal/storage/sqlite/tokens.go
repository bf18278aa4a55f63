package sqlite

import (
	"context"
	"fmt"
)

// RevokeToken records a refresh token ID as revoked. Revoking twice is not
// an error.
func (s *SQLiteStore) RevokeToken(ctx context.Context, jti, userID string, expiresAt int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO revoked_tokens (jti, user_id, expires_at) VALUES (?, ?, ?) ON CONFLICT(jti) DO NOTHING",
		jti, userID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether jti was revoked.
func (s *SQLiteStore) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM revoked_tokens WHERE jti = ?", jti).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return n > 0, nil
}

// PurgeRevokedTokens removes revocations whose tokens expired before now.
func (s *SQLiteStore) PurgeRevokedTokens(ctx context.Context, now int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM revoked_tokens WHERE expires_at < ?", now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}
	return res.RowsAffected()
}
