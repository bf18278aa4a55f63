package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
)

type memoryStore struct {
	mu      sync.Mutex
	users   map[string]*models.User
	revoked map[string]int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[string]*models.User{}, revoked: map[string]int64{}}
}

func (s *memoryStore) CreateAccount(_ context.Context, user *models.User, _ *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return storage.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *memoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func (s *memoryStore) UpdatePasswordHash(_ context.Context, userID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return storage.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (s *memoryStore) RevokeToken(_ context.Context, jti, _ string, expiresAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = expiresAt
	return nil
}

func (s *memoryStore) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[jti]
	return ok, nil
}

var birth = civil.Date{Year: 1990, Month: time.May, Day: 17}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryStore(), WithCost(bcrypt.MinCost))

	user, err := a.Register(ctx, Registration{Username: " ada ", Email: "ada@example.com", Password: "correct horse", BirthDate: birth})
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	tests := []struct {
		name    string
		reg     Registration
		wantErr error
	}{
		{"duplicate username", Registration{Username: "ada", Password: "another one", BirthDate: birth}, ErrUsernameTaken},
		{"short password", Registration{Username: "bob", Password: "short", BirthDate: birth}, ErrWeakPassword},
		{"empty username", Registration{Username: "  ", Password: "long enough", BirthDate: birth}, ErrInvalidUsername},
		{"username with space", Registration{Username: "bo b", Password: "long enough", BirthDate: birth}, ErrInvalidUsername},
		{"invalid birth date", Registration{Username: "bob", Password: "long enough", BirthDate: civil.Date{Year: 2001, Month: 2, Day: 29}}, models.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.reg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	got, err := a.Authenticate(ctx, "ada", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = a.Authenticate(ctx, "ada", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Authenticate(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	// Unknown usernames pay for a hash at the same cost as real ones.
	cost, err := bcrypt.Cost(a.dummyHash())
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.ErrorIs(t, a.ChangeCredential(ctx, user.ID, "wrong password", "new password"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.ChangeCredential(ctx, user.ID, "correct horse", "short"), ErrWeakPassword)
	require.NoError(t, a.ChangeCredential(ctx, user.ID, "correct horse", "battery staple"))

	_, err = a.Authenticate(ctx, "ada", "battery staple")
	assert.NoError(t, err)
}

func TestJWTManager(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	m := NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour).WithClock(func() time.Time { return now })
	user := &models.User{ID: "user-1", Username: "ada"}

	pair, err := m.GeneratePair(user)
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute), pair.AccessExpiresAt)
	assert.Equal(t, now.Add(24*time.Hour), pair.RefreshExpiresAt)

	claims, err := m.ValidateType(pair.Access, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada", claims.Username)
	assert.NotEmpty(t, claims.ID)

	_, err = m.ValidateType(pair.Refresh, AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTManager("other-secret", time.Minute, time.Hour)
	_, err = other.Validate(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	later := m.WithClock(func() time.Time { return now.Add(time.Hour) })
	_, err = later.Validate(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken, "access token expired")
	_, err = later.ValidateType(pair.Refresh, RefreshToken)
	assert.NoError(t, err)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	s := NewSessions(NewJWTManager("test-secret", time.Minute, time.Hour), store)
	user := &models.User{ID: "user-1", Username: "ada"}
	require.NoError(t, store.CreateAccount(ctx, user, nil))

	pair, err := s.Start(user)
	require.NoError(t, err)

	access, _, claims, err := s.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	accessClaims, err := s.JWT().ValidateType(access, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada", accessClaims.Username)

	_, _, _, err = s.Refresh(ctx, pair.Access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	require.NoError(t, s.Revoke(ctx, pair.Refresh))
	require.NoError(t, s.Revoke(ctx, pair.Refresh))
	_, _, _, err = s.Refresh(ctx, pair.Refresh)
	assert.True(t, errors.Is(err, ErrRevokedToken))

	// A token for an account that no longer exists is rejected.
	other, err := s.Start(&models.User{ID: "user-2", Username: "gone"})
	require.NoError(t, err)
	_, _, _, err = s.Refresh(ctx, other.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
