// Package server assembles the HTTP handler: Connect services, the
// calendar export, health and metrics endpoints, and the static frontend.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/lifecubes/internal/auth"
	"github.com/mmynk/lifecubes/internal/export"
	"github.com/mmynk/lifecubes/internal/middleware"
	"github.com/mmynk/lifecubes/internal/service"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/pkg/api/apiconnect"
)

const rpcPrefix = "/lifecubes.v1."

// Options configures New. Store, Authenticator, Sessions and Logger are
// required.
type Options struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	Sessions      *auth.Sessions
	Logger        *slog.Logger

	// Metrics instruments every RPC when set.
	Metrics        *middleware.Metrics
	// MetricsHandler is served on /metrics when set.
	MetricsHandler http.Handler

	Clock          service.Clock
	HorizonYears   int
	StaticDir      string
	AllowedOrigins []string
}

// New returns the complete handler, wrapped with h2c so Connect clients can
// speak HTTP/2 without TLS.
func New(opts Options) http.Handler {
	mux := http.NewServeMux()
	Register(mux, opts)

	if opts.MetricsHandler != nil {
		mux.Handle("/metrics", opts.MetricsHandler)
	}
	mux.HandleFunc("/healthz", healthz(opts.Store))
	if opts.StaticDir != "" {
		mux.Handle("/", staticHandler(opts.StaticDir, opts.Logger))
	}

	handler := middleware.RequestLogging(opts.Logger, middleware.CORS(opts.AllowedOrigins, mux))
	return h2c.NewHandler(handler, &http2.Server{})
}

// Register mounts the Connect services and the calendar export on mux.
func Register(mux *http.ServeMux, opts Options) {
	jwt := opts.Sessions.JWT()
	logger := opts.Logger

	// Metrics wrap everything so rejected calls are counted too. Auth runs
	// before logging so log lines carry the caller.
	chain := func(authn connect.UnaryInterceptorFunc) connect.HandlerOption {
		var interceptors []connect.Interceptor
		if opts.Metrics != nil {
			interceptors = append(interceptors, opts.Metrics.Interceptor())
		}
		interceptors = append(interceptors, authn, middleware.LoggingInterceptor(logger))
		return connect.WithInterceptors(interceptors...)
	}
	public := chain(middleware.OptionalAuth(jwt))
	protected := chain(middleware.RequireAuth(jwt))

	mux.Handle(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(opts.Authenticator, opts.Sessions, opts.Store, logger), public))
	mux.Handle(apiconnect.NewProfileServiceHandler(
		service.NewProfileService(opts.Store, opts.Clock, logger), protected))
	mux.Handle(apiconnect.NewSettingsServiceHandler(
		service.NewSettingsService(opts.Store, logger), protected))
	mux.Handle(apiconnect.NewEventServiceHandler(
		service.NewEventService(opts.Store, logger), protected))
	mux.Handle(apiconnect.NewTagServiceHandler(
		service.NewTagService(opts.Store, logger), protected))
	mux.Handle(apiconnect.NewDashboardServiceHandler(
		service.NewDashboardService(opts.Store, opts.Clock, opts.HorizonYears, logger), protected))
	mux.Handle(apiconnect.NewGridServiceHandler(
		service.NewGridService(opts.Store, opts.Clock, opts.HorizonYears, logger), protected))

	mux.Handle(export.Path, middleware.RequireAuthHTTP(jwt, export.NewHandler(opts.Store, opts.Clock, logger)))
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthz(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	}
}

// staticHandler serves the frontend. Unknown paths get index.html so the
// client-side router can resolve them.
func staticHandler(dir string, logger *slog.Logger) http.Handler {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		staticDir = dir
	}
	logger.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, rpcPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean("/"+urlPath))

		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}
