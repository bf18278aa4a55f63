package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/lifecubes/internal/auth"
	"github.com/mmynk/lifecubes/internal/models"
)

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  http.Header
		want    string
		wantErr error
	}{
		{"bearer", http.Header{"Authorization": {"Bearer abc"}}, "abc", nil},
		{"lowercase scheme", http.Header{"Authorization": {"bearer abc"}}, "abc", nil},
		{"wrong scheme", http.Header{"Authorization": {"Basic abc"}}, "", auth.ErrInvalidToken},
		{"no token", http.Header{"Authorization": {"Bearer"}}, "", auth.ErrInvalidToken},
		{"cookie", http.Header{"Cookie": {"theme=dark; access_token=xyz"}}, "xyz", nil},
		{"header wins over cookie", http.Header{"Authorization": {"Bearer abc"}, "Cookie": {"access_token=xyz"}}, "abc", nil},
		{"missing", http.Header{}, "", auth.ErrMissingToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenFromHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireAuthHTTP(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Minute, time.Hour)
	pair, err := jwtManager.GeneratePair(&models.User{ID: "u1", Username: "ada"})
	require.NoError(t, err)

	h := RequireAuthHTTP(jwtManager, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetUserID(r.Context()) + "/" + GetUsername(r.Context())))
	}))

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{"access token", pair.Access, http.StatusOK, "u1/ada"},
		{"refresh token is rejected", pair.Refresh, http.StatusUnauthorized, ""},
		{"no token", "", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/export/events.ics", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	CORS(nil, next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	h := CORS([]string{"https://cubes.example"}, next)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Origin", "https://cubes.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "https://cubes.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "ok", codeOf(nil))
	assert.Equal(t, "not_found", codeOf(connect.NewError(connect.CodeNotFound, nil)))
	assert.Equal(t, "unknown", codeOf(context.Canceled))
}

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics(reg)
	m.requests.WithLabelValues("/x/Y", "ok").Inc()

	want := `
# HELP lifecubes_rpc_requests_total RPC calls by procedure and result code.
# TYPE lifecubes_rpc_requests_total counter
lifecubes_rpc_requests_total{code="ok",procedure="/x/Y"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "lifecubes_rpc_requests_total"))
}
