// Package notify delivers user-facing notifications outside the display.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// Notifier delivers one notification.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Log writes notifications through slog. Classes that contain "red" are
// logged at error level, everything else at info.
type Log struct {
	log *slog.Logger
}

// NewLog creates a Log notifier.
func NewLog(logger *slog.Logger) *Log {
	return &Log{log: logger.With("adapter", "notify")}
}

func (l *Log) Notify(ctx context.Context, n domain.Notification) error {
	level := slog.LevelInfo
	if isAlert(n.Class) {
		level = slog.LevelError
	}
	l.log.Log(ctx, level, n.Message, slog.String("class", n.Class))
	return nil
}

// DefaultSlackTimeout bounds one webhook post.
const DefaultSlackTimeout = 5 * time.Second

// Slack posts notifications to a Slack incoming webhook.
type Slack struct {
	webhookURL string
	timeout    time.Duration
}

// NewSlack creates a Slack notifier for the given webhook URL. Each post
// is bounded by DefaultSlackTimeout on top of the caller's context.
func NewSlack(webhookURL string) *Slack {
	return &Slack{webhookURL: webhookURL, timeout: DefaultSlackTimeout}
}

func (s *Slack) Notify(ctx context.Context, n domain.Notification) error {
	color := "good"
	if isAlert(n.Class) {
		color = "danger"
	}
	msg := &slack.WebhookMessage{
		Attachments: []slack.Attachment{{
			Color:    color,
			Text:     n.Message,
			Fallback: n.Message,
		}},
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := slack.PostWebhookContext(ctx, s.webhookURL, msg); err != nil {
		return fmt.Errorf("notify: slack webhook: %w", err)
	}
	return nil
}

// Multi fans a notification out to every notifier in order. All of them
// are tried; their errors are joined.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, nt := range m {
		if err := nt.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isAlert(class string) bool {
	return strings.Contains(class, "red")
}
