package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/lifecubes/internal/auth"
	"github.com/mmynk/lifecubes/internal/middleware"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/weekgrid"
	"github.com/mmynk/lifecubes/pkg/api"
	"github.com/mmynk/lifecubes/pkg/api/apiconnect"
)

var _ apiconnect.AuthServiceHandler = (*AuthService)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	sessions      *auth.Sessions
	store         storage.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, sessions *auth.Sessions, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		sessions:      sessions,
		store:         store,
		logger:        logger,
	}
}

func toAPITokens(pair auth.TokenPair) api.Tokens {
	return api.Tokens{
		Access:           pair.Access,
		Refresh:          pair.Refresh,
		AccessExpiresAt:  pair.AccessExpiresAt.Unix(),
		RefreshExpiresAt: pair.RefreshExpiresAt.Unix(),
	}
}

// Register creates a new user account with its profile and signs the user in.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	s.logger.Info("Register request", "username", req.Msg.Username)

	birth, err := weekgrid.ParseDate(req.Msg.BirthDate)
	if err != nil {
		return nil, toConnectError(err)
	}

	user, err := s.authenticator.Register(ctx, auth.Registration{
		Username:  req.Msg.Username,
		Email:     req.Msg.Email,
		FirstName: req.Msg.FirstName,
		LastName:  req.Msg.LastName,
		Password:  req.Msg.Password,
		BirthDate: birth,
	})
	if err != nil {
		s.logger.Warn("Registration failed", "username", req.Msg.Username, "error", err)
		return nil, toConnectError(err)
	}

	pair, err := s.sessions.Start(user)
	if err != nil {
		s.logger.Error("Failed to generate tokens", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	profile, err := s.store.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "username", user.Username)
	return connect.NewResponse(&api.RegisterResponse{
		User:   toAPIUser(user, profile),
		Tokens: toAPITokens(pair),
	}), nil
}

// Login authenticates a user and returns a token pair.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "username", req.Msg.Username)

	if req.Msg.Username == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Username, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "username", req.Msg.Username, "error", err)
		return nil, toConnectError(err)
	}

	pair, err := s.sessions.Start(user)
	if err != nil {
		s.logger.Error("Failed to generate tokens", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	profile, err := s.store.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return connect.NewResponse(&api.LoginResponse{
		User:   toAPIUser(user, profile),
		Tokens: toAPITokens(pair),
	}), nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, req *connect.Request[api.RefreshRequest]) (*connect.Response[api.RefreshResponse], error) {
	if req.Msg.Refresh == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrMissingToken)
	}

	access, expiresAt, claims, err := s.sessions.Refresh(ctx, req.Msg.Refresh)
	if err != nil {
		s.logger.Warn("Refresh failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Debug("Access token refreshed", "user_id", claims.UserID)
	return connect.NewResponse(&api.RefreshResponse{
		Access:          access,
		AccessExpiresAt: expiresAt.Unix(),
	}), nil
}

// Logout revokes the refresh token. The access token stays valid until it
// expires, so clients discard it.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	if req.Msg.Refresh == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrMissingToken)
	}
	if err := s.sessions.Revoke(ctx, req.Msg.Refresh); err != nil {
		s.logger.Warn("Logout failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("User logged out", "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&api.LogoutResponse{}), nil
}

// CurrentUser returns the currently authenticated user's information.
func (s *AuthService) CurrentUser(ctx context.Context, req *connect.Request[api.CurrentUserRequest]) (*connect.Response[api.CurrentUserResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.CurrentUserResponse{User: toAPIUser(user, profile)}), nil
}

// ChangePassword replaces the caller's password.
func (s *AuthService) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.authenticator.ChangeCredential(ctx, userID, req.Msg.OldPassword, req.Msg.NewPassword); err != nil {
		s.logger.Warn("ChangePassword failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Password changed", "user_id", userID)
	return connect.NewResponse(&api.ChangePasswordResponse{}), nil
}

// DeleteAccount removes the caller and all their data after checking the
// password.
func (s *AuthService) DeleteAccount(ctx context.Context, req *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if _, err := s.authenticator.Authenticate(ctx, user.Username, req.Msg.Password); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.DeleteUser(ctx, userID); err != nil {
		s.logger.Error("DeleteAccount failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Account deleted", "user_id", userID)
	return connect.NewResponse(&api.DeleteAccountResponse{}), nil
}
