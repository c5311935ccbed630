package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// defaultBackfillLimit bounds one backfill run when the caller passes a
// non-positive limit.
const defaultBackfillLimit = 20

// maxInsightAttempts is the number of failed generations after which the
// backfill stops picking a record. GenerateInsight can still retry it.
const maxInsightAttempts = 5

// maxFailureReason bounds the error text stored with a failed attempt.
const maxFailureReason = 500

// GenerateInsight computes and stores the insight of one feedback record
// and returns the record with the insight attached. A record that already
// has an insight fails with domain.ErrAlreadyExists before the model is
// called.
func (s *Service) GenerateInsight(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	if _, err := uuid.Parse(feedbackID); err != nil {
		return nil, domain.NewValidationError("feedback_id", "must be a UUID")
	}
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	f, err := s.feedback.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, fmt.Errorf("feedback.GenerateInsight: %w", err)
	}

	existing, err := s.insights.ListByFeedbackIDs(ctx, []string{f.ID})
	if err != nil {
		return nil, fmt.Errorf("feedback.GenerateInsight: %w", err)
	}
	if _, ok := existing[f.ID]; ok {
		return nil, fmt.Errorf("feedback.GenerateInsight: insight %s: %w", f.ID, domain.ErrAlreadyExists)
	}

	if err := s.generate(ctx, f); err != nil {
		return nil, fmt.Errorf("feedback.GenerateInsight: %w", err)
	}
	return f, nil
}

// BackfillInsights generates insights for up to limit records that have
// none, fewest failed attempts first, then oldest first. A failure on one
// record is logged and recorded against it, and the batch goes on; only a
// failure to list candidates is returned.
func (s *Service) BackfillInsights(ctx context.Context, limit int) (int, error) {
	if s.generator == nil {
		return 0, ErrGeneratorUnavailable
	}
	if limit <= 0 {
		limit = defaultBackfillLimit
	}

	pending, err := s.feedback.ListWithoutInsight(ctx, limit, maxInsightAttempts)
	if err != nil {
		return 0, fmt.Errorf("feedback.BackfillInsights: %w", err)
	}

	generated := 0
	for i := range pending {
		if err := ctx.Err(); err != nil {
			return generated, err
		}
		if err := s.generate(ctx, &pending[i]); err != nil {
			s.log.WarnContext(ctx, "insight generation failed",
				slog.String("feedback_id", pending[i].ID),
				slog.String("error", err.Error()))
			s.recordFailure(ctx, pending[i].ID, err)
			continue
		}
		generated++
	}

	if len(pending) > 0 {
		s.log.InfoContext(ctx, "insight backfill finished",
			slog.Int("candidates", len(pending)),
			slog.Int("generated", generated))
	}
	return generated, nil
}

// recordFailure stores a failed attempt so later runs move on to other
// records. Cancellation is not an attempt.
func (s *Service) recordFailure(ctx context.Context, feedbackID string, cause error) {
	if ctx.Err() != nil {
		return
	}
	reason := []rune(cause.Error())
	if len(reason) > maxFailureReason {
		reason = reason[:maxFailureReason]
	}
	if err := s.insights.RecordFailure(ctx, feedbackID, string(reason)); err != nil {
		s.log.ErrorContext(ctx, "record insight failure",
			slog.String("feedback_id", feedbackID),
			slog.String("error", err.Error()))
	}
}

// generate calls the model for f, stores the result and attaches it to f.
func (s *Service) generate(ctx context.Context, f *domain.Feedback) error {
	in, err := s.generator.Generate(ctx, f.Title, f.Body)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := s.insights.Create(ctx, f.ID, in); err != nil {
		return fmt.Errorf("store insight: %w", err)
	}

	s.log.InfoContext(ctx, "insight generated",
		slog.String("feedback_id", f.ID),
		slog.String("sentiment", in.Sentiment.String()),
		slog.Int("tokens", in.Tokens))

	f.Insight = in
	return nil
}
