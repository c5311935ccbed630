// Package viewer binds the session state and the feedback fetcher to a
// display: it owns the current result list and the save and mount flows.
package viewer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
	"github.com/heartmarshall/feedback-insights/internal/session"
	"github.com/heartmarshall/feedback-insights/pkg/ctxutil"
)

type fetcher interface {
	FetchFeedbackAndInsights(ctx context.Context, username string) ([]domain.Feedback, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Viewer exposes the fetched feedback list and the operations a display
// calls. None of its operations return errors: fetch failures leave the
// list untouched and are reported through the notifier.
type Viewer struct {
	state  *session.State
	fetch  fetcher
	notify notifier
	log    *slog.Logger

	mu        sync.RWMutex
	feedbacks []domain.Feedback

	subsMu sync.Mutex
	nextID int
	subs   map[int]func([]domain.Feedback)
}

// NewViewer creates a Viewer over an existing session state.
func NewViewer(
	log *slog.Logger,
	state *session.State,
	fetch fetcher,
	notify notifier,
) *Viewer {
	return &Viewer{
		state:  state,
		fetch:  fetch,
		notify: notify,
		log:    log.With("service", "viewer"),
		subs:   make(map[int]func([]domain.Feedback)),
	}
}

// State returns the session state the viewer reads from.
func (v *Viewer) State() *session.State {
	return v.state
}

// Feedbacks returns the current result list. The list is replaced
// wholesale on every successful fetch and never modified in place, so the
// returned slice stays valid.
func (v *Viewer) Feedbacks() []domain.Feedback {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.feedbacks
}

// Subscribe registers fn to be called with the new list after every
// successful fetch. It returns a func that removes the subscription.
func (v *Viewer) Subscribe(fn func([]domain.Feedback)) (unsubscribe func()) {
	v.subsMu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.subsMu.Lock()
			delete(v.subs, id)
			v.subsMu.Unlock()
		})
	}
}

func (v *Viewer) publish(list []domain.Feedback) {
	v.subsMu.Lock()
	fns := make([]func([]domain.Feedback), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.subsMu.Unlock()

	for _, fn := range fns {
		fn(list)
	}
}

// requestContext tags ctx with a request ID unless it already has one.
func requestContext(ctx context.Context) (context.Context, string) {
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		return ctx, id
	}
	return ctxutil.WithNewRequestID(ctx)
}
