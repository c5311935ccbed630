// Package worker runs the periodic insight backfill.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type backfiller interface {
	BackfillInsights(ctx context.Context, limit int) (int, error)
}

// Backfill generates missing insights on a cron schedule. A run that is
// still in progress when the next tick fires causes that tick to be
// skipped.
type Backfill struct {
	log     *slog.Logger
	svc     backfiller
	batch   int
	timeout time.Duration
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewBackfill schedules svc.BackfillInsights(batch) with a standard cron
// spec or descriptor ("@every 5m"). timeout bounds a single run; zero
// means no bound.
func NewBackfill(logger *slog.Logger, svc backfiller, schedule string, batch int, timeout time.Duration) (*Backfill, error) {
	log := logger.With("service", "backfill")
	cl := cronLogger{log: log}

	w := &Backfill{
		log:     log,
		svc:     svc,
		batch:   batch,
		timeout: timeout,
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())

	if _, err := w.cron.AddFunc(schedule, func() { w.RunOnce(w.ctx) }); err != nil {
		return nil, fmt.Errorf("worker: schedule %q: %w", schedule, err)
	}
	return w, nil
}

// Start begins scheduling in the background.
func (w *Backfill) Start() {
	w.log.Info("backfill worker started", slog.Int("batch", w.batch))
	w.cron.Start()
}

// Stop stops scheduling, cancels a running backfill and waits for it to
// return or for ctx to expire.
func (w *Backfill) Stop(ctx context.Context) error {
	done := w.cron.Stop()
	w.cancel()
	select {
	case <-done.Done():
		w.log.Info("backfill worker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce performs one backfill pass and returns the number of insights
// generated. Errors are logged, not returned.
func (w *Backfill) RunOnce(ctx context.Context) int {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := w.svc.BackfillInsights(ctx, w.batch)
	switch {
	case errors.Is(err, context.Canceled):
		w.log.Info("backfill interrupted", slog.Int("generated", n))
	case err != nil:
		w.log.Error("backfill failed",
			slog.String("error", err.Error()),
			slog.Int("generated", n))
	default:
		w.log.Debug("backfill run",
			slog.Int("generated", n),
			slog.Duration("duration", time.Since(start)))
	}
	return n
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append([]any{slog.String("error", err.Error())}, keysAndValues...)...)
}
