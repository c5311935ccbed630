package app

import (
	"log/slog"

	"github.com/heartmarshall/feedback-insights/internal/adapter/insightsapi"
	"github.com/heartmarshall/feedback-insights/internal/adapter/notify"
	"github.com/heartmarshall/feedback-insights/internal/config"
	"github.com/heartmarshall/feedback-insights/internal/session"
	"github.com/heartmarshall/feedback-insights/internal/viewer"
)

// NewViewer builds a viewer for cfg.Client. username overrides the
// configured one when non-empty. Failures go to the extra notifiers (e.g.
// the terminal toasts) first, then to the log, then to the Slack webhook
// when one is configured.
func NewViewer(cfg *config.Config, logger *slog.Logger, username string, extra ...notify.Notifier) *viewer.Viewer {
	if username == "" {
		username = cfg.Client.Username
	}

	notifiers := append(notify.Multi{}, extra...)
	notifiers = append(notifiers, notify.NewLog(logger))
	if cfg.Notify.SlackWebhookURL != "" {
		notifiers = append(notifiers, notify.NewSlack(cfg.Notify.SlackWebhookURL))
	}

	return viewer.NewViewer(
		logger,
		session.New(username),
		insightsapi.NewClient(cfg.Client.BaseURL, cfg.Client.Timeout, logger),
		notifiers,
	)
}
