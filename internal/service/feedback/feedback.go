package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// CreateFeedback stores a feedback record for input.Username, creating the
// user if needed. Both timestamps are set to the current time in UTC.
func (s *Service) CreateFeedback(ctx context.Context, input CreateFeedbackInput) (*domain.Feedback, error) {
	input = input.Trim()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Feedback
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetOrCreate(ctx, input.Username)
		if err != nil {
			return fmt.Errorf("get or create user: %w", err)
		}

		now := s.now().UTC()
		created, err = s.feedback.Create(ctx, &domain.Feedback{
			User:    *user,
			Title:   input.Title,
			Body:    input.Body,
			Created: now,
			Updated: now,
		})
		if err != nil {
			return fmt.Errorf("create feedback: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("feedback.CreateFeedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback created",
		slog.String("feedback_id", created.ID),
		slog.String("user_id", created.User.ID))

	return created, nil
}

// ListFeedback returns the user's feedback without insights, newest first.
// An unknown username yields an empty list.
func (s *Service) ListFeedback(ctx context.Context, username string) ([]domain.Feedback, error) {
	list, err := s.feedback.ListByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("feedback.ListFeedback: %w", err)
	}
	return list, nil
}

// ListFeedbackAndInsights returns the user's feedback with insights
// attached. Records without an insight keep a nil Insight.
func (s *Service) ListFeedbackAndInsights(ctx context.Context, username string) ([]domain.Feedback, error) {
	list, err := s.feedback.ListByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("feedback.ListFeedbackAndInsights: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}

	byID, err := s.insights.ListByFeedbackIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("feedback.ListFeedbackAndInsights: %w", err)
	}
	for i := range list {
		list[i].Insight = byID[list[i].ID]
	}
	return list, nil
}
