package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/lifecubes/internal/auth"
	"github.com/mmynk/lifecubes/internal/config"
	"github.com/mmynk/lifecubes/internal/middleware"
	"github.com/mmynk/lifecubes/internal/server"
	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/internal/storage/sqlite"
	"github.com/mmynk/lifecubes/pkg/logging"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		Long: `Run the Connect API server with the calendar export, Prometheus metrics on
/metrics, a health check on /healthz and the static frontend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logging.Setup(cfg.Log.Level)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Database.Path)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())
	var authOpts []auth.Option
	if cfg.Auth.BcryptCost > 0 {
		authOpts = append(authOpts, auth.WithCost(cfg.Auth.BcryptCost))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := server.New(server.Options{
		Store:          store,
		Authenticator:  auth.NewPasswordAuthenticator(store, authOpts...),
		Sessions:       auth.NewSessions(jwt, store),
		Logger:         logger,
		Metrics:        middleware.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Clock:          time.Now,
		HorizonYears:   cfg.Grid.HorizonYears,
		StaticDir:      cfg.Server.StaticDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Connect server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		purgeRevokedTokens(ctx, store, cfg.PurgeInterval(), logger)
		return nil
	})

	return g.Wait()
}

// purgeRevokedTokens deletes expired revocations every interval until ctx
// is done. A failed purge is logged and retried on the next tick.
func purgeRevokedTokens(ctx context.Context, store storage.TokenStore, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.PurgeRevokedTokens(ctx, now.Unix())
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Purging revoked tokens failed", "error", err)
				}
				continue
			}
			if n > 0 {
				logger.Info("Purged revoked tokens", "count", n)
			}
		}
	}
}
