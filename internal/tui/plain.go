package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// PrintList writes list as unstyled text, one block per record, for
// scripting and non-interactive terminals.
func PrintList(w io.Writer, list []domain.Feedback) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No feedback found.")
		return err
	}
	for _, f := range list {
		line := fmt.Sprintf("%-16s │ %-16s │ %s", formatTime(f.Created), f.User.Username, f.Title)
		if f.Insight == nil {
			line += " │ no insight yet"
		} else {
			line += " │ " + f.Insight.Sentiment.String()
			if f.Insight.ActionRequired {
				line += " │ ACTION REQUIRED"
			}
			if len(f.Insight.KeyTopics) > 0 {
				line += " │ " + strings.Join(f.Insight.KeyTopics, ", ")
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
