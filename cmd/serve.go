package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkpad/inkpad/db"
	"github.com/inkpad/inkpad/internal/api"
	"github.com/inkpad/inkpad/internal/config"
	"github.com/inkpad/inkpad/internal/log"
	"github.com/inkpad/inkpad/internal/note"
	"github.com/inkpad/inkpad/internal/password"
	"github.com/inkpad/inkpad/internal/session"
	"github.com/inkpad/inkpad/internal/user"
)

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

// runServe initializes and starts the HTTP API server.
func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr, err := parseServeAddr()
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New(log.Config{Level: cfg.SlogLevel(), JSON: cfg.LogJSON})
	logger.Info("starting inkpad", "version", Version)

	if err := db.Migrate(cfg.PostgresURL(), logger); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresConnectionString())
	if err != nil {
		return fmt.Errorf("creating connection pool: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	hasher, err := password.New(password.DefaultParams())
	if err != nil {
		return fmt.Errorf("configuring password hashing: %w", err)
	}

	apiServer, err := api.NewServer(api.ServerConfig{
		Logger:    logger,
		Users:     user.NewStore(pool, logger),
		Sessions:  session.NewStore(pool, cfg.SessionTTL, logger),
		Notes:     note.NewStore(pool, logger),
		Passwords: hasher,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("HTTP server ready", "addr", addr, "session_ttl", cfg.SessionTTL)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}
