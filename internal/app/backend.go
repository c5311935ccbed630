package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/feedback-insights/internal/adapter/cipher"
	"github.com/heartmarshall/feedback-insights/internal/adapter/llm"
	"github.com/heartmarshall/feedback-insights/internal/adapter/postgres"
	feedbackrepo "github.com/heartmarshall/feedback-insights/internal/adapter/postgres/feedback"
	insightrepo "github.com/heartmarshall/feedback-insights/internal/adapter/postgres/insight"
	userrepo "github.com/heartmarshall/feedback-insights/internal/adapter/postgres/user"
	"github.com/heartmarshall/feedback-insights/internal/config"
	"github.com/heartmarshall/feedback-insights/internal/domain"
	"github.com/heartmarshall/feedback-insights/internal/service/feedback"
)

type insightGenerator interface {
	Generate(ctx context.Context, title, body string) (*domain.Insight, error)
}

// Backend is the wired persistence and service layer shared by the
// insights API and the one-shot tools.
type Backend struct {
	Pool     *pgxpool.Pool
	Feedback *feedback.Service
}

// NewBackend connects to the database and builds the feedback service.
// A provider that cannot be initialised leaves insight generation
// disabled instead of failing startup. The caller must call Close.
func NewBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	key, err := cfg.Encryption.DecodeKey()
	if err != nil {
		return nil, fmt.Errorf("app: encryption: %w", err)
	}
	box, err := cipher.NewFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("app: encryption: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, fmt.Errorf("app: migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	var gen insightGenerator
	completer, err := llm.NewCompleter(ctx, cfg.LLM)
	if err != nil {
		logger.Warn("insight generation disabled",
			slog.String("provider", cfg.LLM.Provider),
			slog.String("error", err.Error()),
		)
	} else {
		gen = llm.NewGenerator(completer, cfg.LLM.RequestTimeout, logger)
		logger.Info("insight generator ready", slog.String("llm", completer.Name()))
	}

	svc := feedback.NewService(
		logger,
		userrepo.New(pool),
		feedbackrepo.New(pool, box),
		insightrepo.New(pool),
		gen,
		postgres.NewTxManager(pool),
	)

	return &Backend{Pool: pool, Feedback: svc}, nil
}

// Close releases the database pool.
func (b *Backend) Close() {
	b.Pool.Close()
}
