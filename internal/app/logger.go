package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/feedback-insights/internal/config"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output goes to cfg.File when set (the terminal viewer needs stderr clean),
// otherwise to os.Stderr. The returned close func must be called on exit.
func NewLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("app: open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := newLogger(w, cfg)
	slog.SetDefault(logger)

	return logger, closeFn, nil
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
