package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// formatTime renders t in local time. A zero time comes from a timestamp
// the backend sent in an unknown format.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown time"
	}
	return t.Local().Format(timeLayout)
}

// renderFeedback draws one feedback card of the given outer width.
func renderFeedback(f domain.Feedback, width int) string {
	var b strings.Builder

	b.WriteString(cardTitleStyle.Render(f.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("by %s · %s", f.User.Username, formatTime(f.Created))))
	if !f.Updated.Equal(f.Created) {
		b.WriteString(dimStyle.Render(" · edited " + formatTime(f.Updated)))
	}
	b.WriteString("\n\n")
	b.WriteString(f.Body)
	b.WriteString("\n\n")
	b.WriteString(renderInsight(f.Insight))

	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	return cardStyle.Width(inner).Render(b.String())
}

func renderInsight(in *domain.Insight) string {
	if in == nil {
		return dimStyle.Render("no insight yet")
	}

	head := []string{sentimentTag(in.Sentiment)}
	if in.ActionRequired {
		head = append(head, actionStyle.Render("ACTION REQUIRED"))
	}
	if len(in.KeyTopics) > 0 {
		topics := make([]string, len(in.KeyTopics))
		for i, t := range in.KeyTopics {
			topics[i] = topicStyle.Render("#" + t)
		}
		head = append(head, strings.Join(topics, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(head, "  "),
		in.Summary,
		dimStyle.Render(fmt.Sprintf("%d tokens · %.2fs", in.Tokens, in.Latency)),
	)
}

func sentimentTag(s domain.Sentiment) string {
	label := strings.ToUpper(s.String())
	switch s {
	case domain.SentimentPositive:
		return positiveTag.Render(label)
	case domain.SentimentNegative:
		return negativeTag.Render(label)
	default:
		return neutralTag.Render(label)
	}
}

func renderToast(n domain.Notification) string {
	if strings.Contains(n.Class, "red") {
		return alertToastStyle.Render(n.Message)
	}
	return infoToastStyle.Render(n.Message)
}
