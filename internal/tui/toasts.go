package tui

import (
	"context"
	"errors"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// ErrToastQueueFull is returned when the display has not consumed earlier
// notifications yet.
var ErrToastQueueFull = errors.New("tui: toast queue full")

// Toasts is a notifier whose notifications are shown by the terminal UI.
type Toasts struct {
	ch chan domain.Notification
}

// NewToasts creates a notifier holding up to size pending toasts.
func NewToasts(size int) *Toasts {
	if size < 1 {
		size = 1
	}
	return &Toasts{ch: make(chan domain.Notification, size)}
}

// Notify queues n for display. It never blocks.
func (t *Toasts) Notify(_ context.Context, n domain.Notification) error {
	select {
	case t.ch <- n:
		return nil
	default:
		return ErrToastQueueFull
	}
}

// C returns the channel the display reads from.
func (t *Toasts) C() <-chan domain.Notification {
	return t.ch
}
