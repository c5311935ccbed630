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

	"github.com/heartmarshall/feedback-insights/internal/config"
	"github.com/heartmarshall/feedback-insights/internal/transport/middleware"
	"github.com/heartmarshall/feedback-insights/internal/transport/rest"
	"github.com/heartmarshall/feedback-insights/internal/worker"
)

// Run is the insights API entry point. It loads and validates
// configuration, wires the backend, starts the backfill worker and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	logger.Info("starting insights api",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	backend, err := NewBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	var backfill *worker.Backfill
	if cfg.Insights.BackfillSchedule != "" && backend.Feedback.GeneratorAvailable() {
		runTimeout := time.Duration(cfg.Insights.BackfillBatchSize) * cfg.LLM.RequestTimeout
		backfill, err = worker.NewBackfill(logger, backend.Feedback,
			cfg.Insights.BackfillSchedule, cfg.Insights.BackfillBatchSize, runTimeout)
		if err != nil {
			return err
		}
		backfill.Start()
	}

	limiter := middleware.NewRateLimiter(cfg.Insights.GenerateRatePerMinute, time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(
		rest.NewHealthHandler(backend.Pool, backend.Feedback, BuildVersion()),
		rest.NewFeedbackHandler(backend.Feedback, logger),
		middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		),
		limiter.Limit(),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	if backfill != nil {
		if err := backfill.Stop(shutdownCtx); err != nil {
			logger.Error("backfill worker shutdown", slog.String("error", err.Error()))
		}
	}

	logger.Info("insights api stopped")
	return nil
}
