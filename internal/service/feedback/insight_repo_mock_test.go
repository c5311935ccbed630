package feedback

import (
	"context"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

var _ insightRepo = &insightRepoMock{}

type insightRepoMock struct {
	CreateFunc            func(ctx context.Context, feedbackID string, in *domain.Insight) error
	ListByFeedbackIDsFunc func(ctx context.Context, ids []string) (map[string]*domain.Insight, error)
	RecordFailureFunc     func(ctx context.Context, feedbackID string, reason string) error

	calls struct {
		Create []struct {
			Ctx        context.Context
			FeedbackID string
			In         *domain.Insight
		}
		ListByFeedbackIDs []struct {
			Ctx context.Context
			IDs []string
		}
		RecordFailure []struct {
			Ctx        context.Context
			FeedbackID string
			Reason     string
		}
	}
	lockCreate            sync.RWMutex
	lockListByFeedbackIDs sync.RWMutex
	lockRecordFailure     sync.RWMutex
}

func (mock *insightRepoMock) Create(ctx context.Context, feedbackID string, in *domain.Insight) error {
	if mock.CreateFunc == nil {
		panic("insightRepoMock.CreateFunc: method is nil but insightRepo.Create was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FeedbackID string
		In         *domain.Insight
	}{
		Ctx:        ctx,
		FeedbackID: feedbackID,
		In:         in,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, feedbackID, in)
}

func (mock *insightRepoMock) CreateCalls() []struct {
	Ctx        context.Context
	FeedbackID string
	In         *domain.Insight
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *insightRepoMock) ListByFeedbackIDs(ctx context.Context, ids []string) (map[string]*domain.Insight, error) {
	if mock.ListByFeedbackIDsFunc == nil {
		panic("insightRepoMock.ListByFeedbackIDsFunc: method is nil but insightRepo.ListByFeedbackIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []string
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockListByFeedbackIDs.Lock()
	mock.calls.ListByFeedbackIDs = append(mock.calls.ListByFeedbackIDs, callInfo)
	mock.lockListByFeedbackIDs.Unlock()
	return mock.ListByFeedbackIDsFunc(ctx, ids)
}

func (mock *insightRepoMock) ListByFeedbackIDsCalls() []struct {
	Ctx context.Context
	IDs []string
} {
	mock.lockListByFeedbackIDs.RLock()
	calls := mock.calls.ListByFeedbackIDs
	mock.lockListByFeedbackIDs.RUnlock()
	return calls
}

func (mock *insightRepoMock) RecordFailure(ctx context.Context, feedbackID string, reason string) error {
	if mock.RecordFailureFunc == nil {
		panic("insightRepoMock.RecordFailureFunc: method is nil but insightRepo.RecordFailure was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FeedbackID string
		Reason     string
	}{
		Ctx:        ctx,
		FeedbackID: feedbackID,
		Reason:     reason,
	}
	mock.lockRecordFailure.Lock()
	mock.calls.RecordFailure = append(mock.calls.RecordFailure, callInfo)
	mock.lockRecordFailure.Unlock()
	return mock.RecordFailureFunc(ctx, feedbackID, reason)
}

func (mock *insightRepoMock) RecordFailureCalls() []struct {
	Ctx        context.Context
	FeedbackID string
	Reason     string
} {
	mock.lockRecordFailure.RLock()
	calls := mock.calls.RecordFailure
	mock.lockRecordFailure.RUnlock()
	return calls
}
