package viewer

import (
	"context"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, n domain.Notification) error

	calls struct {
		Notify []struct {
			Ctx context.Context
			N   domain.Notification
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, n domain.Notification) error {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Notification
	}{Ctx: ctx, N: n}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, n)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Ctx context.Context
	N   domain.Notification
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
