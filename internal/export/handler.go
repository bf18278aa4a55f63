package export

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmynk/lifecubes/internal/middleware"
	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
)

// Path is where the feed is mounted.
const Path = "/export/events.ics"

// Store is the storage the export reads.
type Store interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	GetSettings(ctx context.Context, userID string) (*models.Settings, error)
	ListEvents(ctx context.Context, userID string, q storage.EventQuery) ([]models.Event, error)
}

// Handler serves the authenticated user's events as text/calendar. It
// expects middleware.RequireAuthHTTP in front of it.
type Handler struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

// NewHandler creates a feed handler. now defaults to time.Now.
func NewHandler(store Store, now func() time.Time, logger *slog.Logger) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{store: store, now: now, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	feed, err := h.feed(r.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("Export failed", "user_id", userID, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lifecubes.ics"`)
	if err := feed.Write(w); err != nil {
		h.logger.Error("Writing export failed", "user_id", userID, "error", err)
		return
	}
	h.logger.Info("Events exported", "user_id", userID, "events", len(feed.Events))
}

func (h *Handler) feed(ctx context.Context, userID string) (Feed, error) {
	profile, err := h.store.GetProfile(ctx, userID)
	if err != nil {
		return Feed{}, err
	}
	settings, err := h.store.GetSettings(ctx, userID)
	if err != nil {
		return Feed{}, err
	}
	events, err := h.store.ListEvents(ctx, userID, storage.EventQuery{})
	if err != nil {
		return Feed{}, err
	}
	return Feed{
		Birth:  profile.BirthDate,
		Model:  settings.Model(),
		Events: events,
		Now:    h.now(),
	}, nil
}
