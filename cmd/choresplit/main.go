package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/choresplit/internal/config"
	"github.com/dukerupert/choresplit/internal/ledger"
	"github.com/dukerupert/choresplit/internal/logging"
	"github.com/dukerupert/choresplit/internal/server"
)

const rateLimitIdle = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "choresplit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	// One ledger per process; it lives until shutdown.
	l := ledger.New()
	if cfg.Seed {
		ledger.Seed(l)
		logger.Info("ledger seeded", "roommates", len(l.Roommates()), "chores", len(l.Chores()))
	}

	srv := server.New(l, server.Options{
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
		OriginPatterns: cfg.AllowedOrigins,
		TrustProxy:     cfg.TrustProxy,
	}, logger)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(rateLimitIdle)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				srv.RateLimiter().Cleanup(rateLimitIdle)
			case <-ctx.Done():
				return
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("choresplit running", "addr", "http://localhost"+cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
