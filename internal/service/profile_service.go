package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/weekgrid"
	"github.com/mmynk/lifecubes/pkg/api"
	"github.com/mmynk/lifecubes/pkg/api/apiconnect"
)

var (
	_ apiconnect.ProfileServiceHandler  = (*ProfileService)(nil)
	_ apiconnect.SettingsServiceHandler = (*SettingsService)(nil)
)

// ProfileService implements the ProfileService RPC interface.
type ProfileService struct {
	store  storage.Store
	clock  Clock
	logger *slog.Logger
}

// NewProfileService creates a new ProfileService with the given storage backend.
func NewProfileService(store storage.Store, clock Clock, logger *slog.Logger) *ProfileService {
	return &ProfileService{store: store, clock: clock, logger: logger}
}

func (s *ProfileService) weeksLived(p *models.Profile) int {
	lived, err := weekgrid.WeeksLived(p.BirthDate, s.clock.today())
	if err != nil {
		return 0
	}
	return weekgrid.ClampWeeks(lived)
}

// GetProfile returns the caller's account and birth date.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
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

	return connect.NewResponse(&api.GetProfileResponse{
		User:    toAPIUser(user, profile),
		Profile: toAPIProfile(profile, s.weeksLived(profile)),
	}), nil
}

// UpdateProfile changes the birth date and personal details that are set.
// Stored events keep their week indices when the birth date moves.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateProfile request", "user_id", userID)

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if req.Msg.BirthDate != nil {
		birth, err := weekgrid.ParseDate(*req.Msg.BirthDate)
		if err != nil {
			return nil, toConnectError(err)
		}
		profile.BirthDate = birth
		if err := s.store.SaveProfile(ctx, profile); err != nil {
			s.logger.Error("SaveProfile failed", "user_id", userID, "error", err)
			return nil, toConnectError(err)
		}
	}

	if req.Msg.Email != nil || req.Msg.FirstName != nil || req.Msg.LastName != nil {
		if req.Msg.Email != nil {
			user.Email = strings.TrimSpace(*req.Msg.Email)
		}
		if req.Msg.FirstName != nil {
			user.FirstName = strings.TrimSpace(*req.Msg.FirstName)
		}
		if req.Msg.LastName != nil {
			user.LastName = strings.TrimSpace(*req.Msg.LastName)
		}
		if err := s.store.UpdateUser(ctx, user); err != nil {
			s.logger.Error("UpdateUser failed", "user_id", userID, "error", err)
			return nil, toConnectError(err)
		}
	}

	return connect.NewResponse(&api.UpdateProfileResponse{
		User:    toAPIUser(user, profile),
		Profile: toAPIProfile(profile, s.weeksLived(profile)),
	}), nil
}

// SettingsService implements the SettingsService RPC interface.
type SettingsService struct {
	store  storage.ProfileStore
	logger *slog.Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store storage.ProfileStore, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

// GetSettings returns the caller's display preferences.
func (s *SettingsService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.store.GetSettings(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetSettingsResponse{Settings: toAPISettings(settings)}), nil
}

// UpdateSettings changes the preferences that are set. A new week start
// convention renumbers how dates map to days; stored placements are kept.
func (s *SettingsService) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.store.GetSettings(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if req.Msg.Theme != nil {
		theme, err := models.ParseTheme(*req.Msg.Theme)
		if err != nil {
			return nil, toConnectError(err)
		}
		settings.Theme = theme
	}
	if req.Msg.WeekStart != nil {
		weekStart, err := weekgrid.ParseWeekStart(*req.Msg.WeekStart)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		settings.WeekStart = weekStart
	}

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		s.logger.Error("SaveSettings failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Settings updated", "user_id", userID, "theme", settings.Theme, "week_start", settings.WeekStart)
	return connect.NewResponse(&api.UpdateSettingsResponse{Settings: toAPISettings(settings)}), nil
}
