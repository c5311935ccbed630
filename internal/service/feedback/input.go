package feedback

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

func validateUsername(field, username string) []domain.FieldError {
	switch {
	case username == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case utf8.RuneCountInString(username) >= domain.MaxUsernameLength:
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

// CreateFeedbackInput holds parameters for feedback creation.
type CreateFeedbackInput struct {
	Username string
	Title    string
	Body     string
}

// Trim removes surrounding whitespace from the username and title.
// The body is kept verbatim.
func (i CreateFeedbackInput) Trim() CreateFeedbackInput {
	i.Username = strings.TrimSpace(i.Username)
	i.Title = strings.TrimSpace(i.Title)
	return i
}

// Validate validates the create feedback input.
func (i CreateFeedbackInput) Validate() error {
	errs := validateUsername("username", i.Username)

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
