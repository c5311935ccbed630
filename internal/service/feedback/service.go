// Package feedback provides business logic for feedback records and their
// insights.
package feedback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// ErrGeneratorUnavailable is returned by insight operations when no LLM
// provider is configured.
var ErrGeneratorUnavailable = errors.New("insight generator not configured")

type userRepo interface {
	GetOrCreate(ctx context.Context, username string) (*domain.User, error)
}

type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	GetByID(ctx context.Context, id string) (*domain.Feedback, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Feedback, error)
	ListWithoutInsight(ctx context.Context, limit, maxAttempts int) ([]domain.Feedback, error)
}

type insightRepo interface {
	Create(ctx context.Context, feedbackID string, in *domain.Insight) error
	ListByFeedbackIDs(ctx context.Context, ids []string) (map[string]*domain.Insight, error)
	RecordFailure(ctx context.Context, feedbackID, reason string) error
}

type generator interface {
	Generate(ctx context.Context, title, body string) (*domain.Insight, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user, feedback and insight operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	feedback  feedbackRepo
	insights  insightRepo
	generator generator
	tx        txManager
	now       func() time.Time
}

// NewService creates a new feedback service. gen may be nil, in which case
// insight generation fails with ErrGeneratorUnavailable.
func NewService(
	logger *slog.Logger,
	users userRepo,
	feedback feedbackRepo,
	insights insightRepo,
	gen generator,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "feedback"),
		users:     users,
		feedback:  feedback,
		insights:  insights,
		generator: gen,
		tx:        tx,
		now:       time.Now,
	}
}

// GeneratorAvailable reports whether insights can be generated.
func (s *Service) GeneratorAvailable() bool {
	return s.generator != nil
}
