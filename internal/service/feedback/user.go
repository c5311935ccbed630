package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// GetOrCreateUser returns the user with the given name, creating it on
// first use.
func (s *Service) GetOrCreateUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if errs := validateUsername("username", username); errs != nil {
		return nil, domain.NewValidationErrors(errs)
	}

	user, err := s.users.GetOrCreate(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("feedback.GetOrCreateUser: %w", err)
	}

	s.log.DebugContext(ctx, "user resolved", slog.String("user_id", user.ID))
	return user, nil
}
