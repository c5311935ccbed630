package viewer

import (
	"context"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

var _ fetcher = &fetcherMock{}

type fetcherMock struct {
	FetchFeedbackAndInsightsFunc func(ctx context.Context, username string) ([]domain.Feedback, error)

	calls struct {
		FetchFeedbackAndInsights []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockFetchFeedbackAndInsights sync.RWMutex
}

func (mock *fetcherMock) FetchFeedbackAndInsights(ctx context.Context, username string) ([]domain.Feedback, error) {
	if mock.FetchFeedbackAndInsightsFunc == nil {
		panic("fetcherMock.FetchFeedbackAndInsightsFunc: method is nil but fetcher.FetchFeedbackAndInsights was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockFetchFeedbackAndInsights.Lock()
	mock.calls.FetchFeedbackAndInsights = append(mock.calls.FetchFeedbackAndInsights, callInfo)
	mock.lockFetchFeedbackAndInsights.Unlock()
	return mock.FetchFeedbackAndInsightsFunc(ctx, username)
}

func (mock *fetcherMock) FetchFeedbackAndInsightsCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockFetchFeedbackAndInsights.RLock()
	calls := mock.calls.FetchFeedbackAndInsights
	mock.lockFetchFeedbackAndInsights.RUnlock()
	return calls
}
