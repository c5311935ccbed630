package viewer

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

const (
	// FetchFailedMessage is shown once for every failed fetch.
	FetchFailedMessage = "Something went wrong fetching feedback and insight data!"
	// FetchFailedClass is the display class of FetchFailedMessage.
	FetchFailedClass = "red accent-3"
)

// GetFeedbackAndInsights fetches the feedback of the current session user
// and replaces the result list with it.
//
// On failure the previous list is kept and a single notification is sent.
// Overlapping calls are not coordinated: the list ends up holding the
// result of whichever call finished last.
func (v *Viewer) GetFeedbackAndInsights(ctx context.Context) {
	ctx, reqID := requestContext(ctx)
	username := v.state.Username()

	list, err := v.fetch.FetchFeedbackAndInsights(ctx, username)
	if err != nil {
		v.log.WarnContext(ctx, "fetch feedback and insights failed",
			slog.String("username", username),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		v.notifyFailure(ctx)
		return
	}

	v.mu.Lock()
	v.feedbacks = list
	v.mu.Unlock()

	v.log.DebugContext(ctx, "feedback list replaced",
		slog.String("username", username),
		slog.String("request_id", reqID),
		slog.Int("count", len(list)),
	)

	v.publish(list)
}

func (v *Viewer) notifyFailure(ctx context.Context) {
	n := domain.Notification{Message: FetchFailedMessage, Class: FetchFailedClass}
	if err := v.notify.Notify(ctx, n); err != nil {
		v.log.ErrorContext(ctx, "deliver notification", slog.String("error", err.Error()))
	}
}

// UserSaved records name as the session user, marks it saved and fetches
// its feedback. It returns after the fetch completes.
func (v *Viewer) UserSaved(ctx context.Context, name string) {
	v.state.SetUsername(name)
	v.state.SetUserWasSaved(true)
	v.GetFeedbackAndInsights(ctx)
}

// Mount runs the initial fetch when the session already has a username.
func (v *Viewer) Mount(ctx context.Context) {
	if v.state.Username() == "" {
		return
	}
	v.GetFeedbackAndInsights(ctx)
}
