package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/tugalex-backend/internal/config"
	"github.com/heartmarshall/tugalex-backend/internal/service/lexicon"
	"github.com/heartmarshall/tugalex-backend/internal/transport/middleware"
	"github.com/heartmarshall/tugalex-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// dataset, starts the HTTP server and blocks until ctx is canceled, then
// shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ds, err := OpenDataset(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer ds.Close()

	if cfg.Dataset.Preload {
		start := time.Now()
		if err := ds.Store.Preload(ctx); err != nil {
			return fmt.Errorf("preload dataset: %w", err)
		}
		logger.Info("dataset preloaded", slog.Duration("duration", time.Since(start)))
	}

	srv, stop := newServer(cfg, logger, ds)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newServer assembles handlers and middleware. The returned func stops
// background workers started for the server.
func newServer(cfg *config.Config, logger *slog.Logger, ds *Dataset) (*http.Server, func()) {
	svc := lexicon.NewService(logger, ds.Store)

	checks := []rest.Check{{Name: "dataset", Pinger: ds.Store}}
	if ds.Pool != nil {
		checks = append([]rest.Check{{Name: "database", Pinger: ds.Pool}}, checks...)
	}
	health := rest.NewHealthHandler(BuildVersion(), checks...)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	stop := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		mws = append(mws, rl.Limit(cfg.RateLimit.RequestsPerMinute))
		stop = rl.Stop
	}

	handler := rest.NewRouter(rest.NewLexiconHandler(svc, logger), health, middleware.Chain(mws...))

	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}, stop
}
