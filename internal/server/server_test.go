package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/lifecubes/internal/auth"
	"github.com/mmynk/lifecubes/internal/export"
	"github.com/mmynk/lifecubes/internal/middleware"
	"github.com/mmynk/lifecubes/internal/storage/sqlite"
	"github.com/mmynk/lifecubes/pkg/api"
	"github.com/mmynk/lifecubes/pkg/api/apiconnect"
	"github.com/mmynk/lifecubes/pkg/logging"
)

type clients struct {
	auth      apiconnect.AuthServiceClient
	profile   apiconnect.ProfileServiceClient
	settings  apiconnect.SettingsServiceClient
	events    apiconnect.EventServiceClient
	tags      apiconnect.TagServiceClient
	dashboard apiconnect.DashboardServiceClient
	grid      apiconnect.GridServiceClient
}

func newTestServer(t *testing.T) (*httptest.Server, clients) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwt := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>lifecubes</h1>"), 0o644))

	reg := prometheus.NewRegistry()
	handler := New(Options{
		Store:          store,
		Authenticator:  auth.NewPasswordAuthenticator(store, auth.WithCost(bcrypt.MinCost)),
		Sessions:       auth.NewSessions(jwt, store),
		Logger:         logging.Discard(),
		Metrics:        middleware.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Clock:          func() time.Time { return time.Date(2020, time.December, 1, 9, 0, 0, 0, time.UTC) },
		HorizonYears:   80,
		StaticDir:      static,
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := srv.Client()
	return srv, clients{
		auth:      apiconnect.NewAuthServiceClient(c, srv.URL),
		profile:   apiconnect.NewProfileServiceClient(c, srv.URL),
		settings:  apiconnect.NewSettingsServiceClient(c, srv.URL),
		events:    apiconnect.NewEventServiceClient(c, srv.URL),
		tags:      apiconnect.NewTagServiceClient(c, srv.URL),
		dashboard: apiconnect.NewDashboardServiceClient(c, srv.URL),
		grid:      apiconnect.NewGridServiceClient(c, srv.URL),
	}
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func register(t *testing.T, c clients, username string) api.Tokens {
	t.Helper()
	resp, err := c.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "correct horse",
		BirthDate: "1990-01-01",
	}))
	require.NoError(t, err)
	return resp.Msg.Tokens
}

func intPtr(v int) *int { return &v }

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)
	tokens := register(t, c, "alice")

	t.Run("current user", func(t *testing.T) {
		resp, err := c.auth.CurrentUser(ctx, withToken(&api.CurrentUserRequest{}, tokens.Access))
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Msg.User.Username)
		assert.Equal(t, "1990-01-01", resp.Msg.User.BirthDate)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := c.auth.CurrentUser(ctx, connect.NewRequest(&api.CurrentUserRequest{}))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

		_, err = c.events.ListEvents(ctx, connect.NewRequest(&api.ListEventsRequest{}))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := c.profile.GetProfile(ctx, withToken(&api.GetProfileRequest{}, tokens.Refresh))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Username: "alice", Password: "another pass", BirthDate: "1991-02-03",
		}))
		assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))
	})

	t.Run("invalid birth date", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Username: "bob", Password: "long enough", BirthDate: "2023-02-30",
		}))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "alice", Password: "nope nope"}))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("refresh then logout", func(t *testing.T) {
		login, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "alice", Password: "correct horse"}))
		require.NoError(t, err)
		refresh := login.Msg.Tokens.Refresh

		resp, err := c.auth.Refresh(ctx, connect.NewRequest(&api.RefreshRequest{Refresh: refresh}))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Msg.Access)

		_, err = c.auth.Logout(ctx, connect.NewRequest(&api.LogoutRequest{Refresh: refresh}))
		require.NoError(t, err)

		_, err = c.auth.Refresh(ctx, connect.NewRequest(&api.RefreshRequest{Refresh: refresh}))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})
}

func TestEventsEndToEnd(t *testing.T) {
	ctx := context.Background()
	srv, c := newTestServer(t)
	access := register(t, c, "alice").Access

	created, err := c.events.CreateEvent(ctx, withToken(&api.CreateEventRequest{
		Placement: api.Placement{Date: "1990-01-10"},
		Title:     "First steps",
		Icon:      "personal",
		Tags:      []string{"family", " family ", "milestone"},
	}, access))
	require.NoError(t, err)
	event := created.Msg.Event
	assert.Equal(t, 1, event.WeekIndex)
	assert.Equal(t, 2, event.DayOfWeek)
	assert.Equal(t, "1990-01-10", event.Date)
	assert.Len(t, event.Tags, 2)

	_, err = c.events.CreateEvent(ctx, withToken(&api.CreateEventRequest{
		Placement: api.Placement{WeekIndex: intPtr(1613), DayOfWeek: intPtr(0)},
		Title:     "Moved to Berlin",
		Icon:      "experiences",
	}, access))
	require.NoError(t, err)

	t.Run("place without storing", func(t *testing.T) {
		resp, err := c.events.PlaceEvent(ctx, withToken(&api.PlaceEventRequest{
			Placement: api.Placement{Date: "2020-12-01"},
		}, access))
		require.NoError(t, err)
		assert.Equal(t, 1613, resp.Msg.WeekIndex)
		assert.Equal(t, "Year 32", resp.Msg.YearLabel)
	})

	t.Run("missing placement", func(t *testing.T) {
		_, err := c.events.CreateEvent(ctx, withToken(&api.CreateEventRequest{Title: "Nowhere"}, access))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("search", func(t *testing.T) {
		resp, err := c.events.ListEvents(ctx, withToken(&api.ListEventsRequest{Search: "berlin"}, access))
		require.NoError(t, err)
		require.Equal(t, 1, resp.Msg.Count)
		assert.Equal(t, "Moved to Berlin", resp.Msg.Events[0].Title)
	})

	t.Run("week range", func(t *testing.T) {
		resp, err := c.events.WeekRange(ctx, withToken(&api.WeekRangeRequest{StartWeek: intPtr(0), EndWeek: intPtr(520)}, access))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Events, 1)

		_, err = c.events.WeekRange(ctx, withToken(&api.WeekRangeRequest{StartWeek: intPtr(0)}, access))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("update day within the week", func(t *testing.T) {
		title := "First real steps"
		resp, err := c.events.UpdateEvent(ctx, withToken(&api.UpdateEventRequest{
			ID:        event.ID,
			Placement: api.Placement{DayOfWeek: intPtr(5)},
			Title:     &title,
		}, access))
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Msg.Event.WeekIndex)
		assert.Equal(t, 5, resp.Msg.Event.DayOfWeek)
		assert.Equal(t, title, resp.Msg.Event.Title)
		assert.Len(t, resp.Msg.Event.Tags, 2, "tags untouched")
	})

	t.Run("tags", func(t *testing.T) {
		resp, err := c.tags.ListTags(ctx, withToken(&api.ListTagsRequest{Search: "mile"}, access))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Tags, 1)
		assert.Equal(t, "milestone", resp.Msg.Tags[0].Name)
	})

	t.Run("decade", func(t *testing.T) {
		resp, err := c.grid.GetDecade(ctx, withToken(&api.GetDecadeRequest{DecadeIndex: 3}, access))
		require.NoError(t, err)
		assert.Len(t, resp.Msg.Cells, 520)
		assert.Equal(t, "Years 31-40", resp.Msg.Label)
		assert.Equal(t, 1613-3*520, resp.Msg.LivedInDecade)

		current := resp.Msg.Cells[1613-3*520]
		assert.True(t, current.Current)
		assert.False(t, current.Lived)
		assert.Len(t, current.EventIDs, 1)

		_, err = c.grid.GetDecade(ctx, withToken(&api.GetDecadeRequest{DecadeIndex: 8}, access))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("dashboard", func(t *testing.T) {
		resp, err := c.dashboard.GetDashboard(ctx, withToken(&api.GetDashboardRequest{}, access))
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Msg.TotalEvents)
		assert.Equal(t, 2, resp.Msg.TotalTags)
		assert.Equal(t, 1613, resp.Msg.Stats.WeeksLived)
		assert.Equal(t, 4171, resp.Msg.Stats.TotalWeeks)
	})

	t.Run("calendar export", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+export.Path, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+access)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "SUMMARY:Moved to Berlin")

		anon, err := srv.Client().Get(srv.URL + export.Path)
		require.NoError(t, err)
		anon.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, anon.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := c.events.DeleteEvent(ctx, withToken(&api.DeleteEventRequest{ID: event.ID}, access))
		require.NoError(t, err)
		_, err = c.events.GetEvent(ctx, withToken(&api.GetEventRequest{ID: event.ID}, access))
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	})
}

func TestEventsAreScopedToTheirOwner(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)
	alice := register(t, c, "alice").Access
	bob := register(t, c, "bob").Access

	created, err := c.events.CreateEvent(ctx, withToken(&api.CreateEventRequest{
		Placement: api.Placement{WeekIndex: intPtr(10)},
		Title:     "Private",
	}, alice))
	require.NoError(t, err)

	_, err = c.events.GetEvent(ctx, withToken(&api.GetEventRequest{ID: created.Msg.Event.ID}, bob))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = c.events.DeleteEvent(ctx, withToken(&api.DeleteEventRequest{ID: created.Msg.Event.ID}, bob))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestSettingsChangeDates(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)
	access := register(t, c, "alice").Access

	sunday := "sunday"
	resp, err := c.settings.UpdateSettings(ctx, withToken(&api.UpdateSettingsRequest{WeekStart: &sunday}, access))
	require.NoError(t, err)
	assert.Equal(t, "sunday", resp.Msg.Settings.WeekStart)

	// 1990-01-01 is a Monday; under a Sunday week it is day 1 of week 0.
	placed, err := c.events.PlaceEvent(ctx, withToken(&api.PlaceEventRequest{
		Placement: api.Placement{Date: "1990-01-01"},
	}, access))
	require.NoError(t, err)
	assert.Equal(t, 0, placed.Msg.WeekIndex)
	assert.Equal(t, 1, placed.Msg.DayOfWeek)

	someday := "someday"
	_, err = c.settings.UpdateSettings(ctx, withToken(&api.UpdateSettingsRequest{WeekStart: &someday}, access))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestHTTPEndpoints(t *testing.T) {
	srv, c := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/timeline/deep/link")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "lifecubes", "unknown paths fall back to index.html")

	t.Run("rejected calls are counted", func(t *testing.T) {
		_, err := c.events.ListEvents(context.Background(), connect.NewRequest(&api.ListEventsRequest{}))
		require.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

		resp, err := srv.Client().Get(srv.URL + "/metrics")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.Contains(t, string(body), `lifecubes_rpc_requests_total{code="unauthenticated",procedure="/lifecubes.v1.EventService/ListEvents"} 1`)
	})

	resp, err = srv.Client().Get(srv.URL + "/lifecubes.v1.Unknown/Method")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfileMovesEventDates(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)
	access := register(t, c, "alice").Access

	created, err := c.events.CreateEvent(ctx, withToken(&api.CreateEventRequest{
		Placement: api.Placement{Date: "1990-01-10"},
		Title:     "First steps",
	}, access))
	require.NoError(t, err)
	require.Equal(t, "1990-01-10", created.Msg.Event.Date)

	bad := "1991-02-30"
	_, err = c.profile.UpdateProfile(ctx, withToken(&api.UpdateProfileRequest{BirthDate: &bad}, access))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	birth := "1991-03-15"
	resp, err := c.profile.UpdateProfile(ctx, withToken(&api.UpdateProfileRequest{BirthDate: &birth}, access))
	require.NoError(t, err)
	assert.Equal(t, birth, resp.Msg.Profile.BirthDate)

	list, err := c.events.ListEvents(ctx, withToken(&api.ListEventsRequest{}, access))
	require.NoError(t, err)
	require.Len(t, list.Msg.Events, 1)
	moved := list.Msg.Events[0]
	assert.Equal(t, 1, moved.WeekIndex)
	assert.Equal(t, 2, moved.DayOfWeek)
	assert.Equal(t, "1991-03-24", moved.Date)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)
	access := register(t, c, "alice").Access

	_, err := c.auth.ChangePassword(ctx, withToken(&api.ChangePasswordRequest{
		OldPassword: "wrong horse", NewPassword: "battery staple",
	}, access))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = c.auth.ChangePassword(ctx, withToken(&api.ChangePasswordRequest{
		OldPassword: "correct horse", NewPassword: "battery staple",
	}, access))
	require.NoError(t, err)

	_, err = c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "alice", Password: "correct horse"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "alice", Password: "battery staple"}))
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)
	tokens := register(t, c, "alice")

	_, err := c.auth.DeleteAccount(ctx, withToken(&api.DeleteAccountRequest{Password: "wrong horse"}, tokens.Access))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = c.auth.Logout(ctx, connect.NewRequest(&api.LogoutRequest{Refresh: tokens.Refresh}))
	require.NoError(t, err)

	_, err = c.auth.DeleteAccount(ctx, withToken(&api.DeleteAccountRequest{Password: "correct horse"}, tokens.Access))
	require.NoError(t, err)

	_, err = c.auth.CurrentUser(ctx, withToken(&api.CurrentUserRequest{}, tokens.Access))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	t.Run("logged out refresh token stays revoked", func(t *testing.T) {
		_, err := c.auth.Refresh(ctx, connect.NewRequest(&api.RefreshRequest{Refresh: tokens.Refresh}))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("live refresh token dies with the account", func(t *testing.T) {
		bob := register(t, c, "bob")
		_, err := c.auth.DeleteAccount(ctx, withToken(&api.DeleteAccountRequest{Password: "correct horse"}, bob.Access))
		require.NoError(t, err)

		_, err = c.auth.Refresh(ctx, connect.NewRequest(&api.RefreshRequest{Refresh: bob.Refresh}))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})
}
