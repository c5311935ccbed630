package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
	"github.com/heartmarshall/feedback-insights/internal/service/feedback"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	GetOrCreateUserFunc         func(ctx context.Context, username string) (*domain.User, error)
	CreateFeedbackFunc          func(ctx context.Context, input feedback.CreateFeedbackInput) (*domain.Feedback, error)
	ListFeedbackFunc            func(ctx context.Context, username string) ([]domain.Feedback, error)
	ListFeedbackAndInsightsFunc func(ctx context.Context, username string) ([]domain.Feedback, error)
	GenerateInsightFunc         func(ctx context.Context, feedbackID string) (*domain.Feedback, error)

	calls struct {
		GetOrCreateUser []struct {
			Ctx      context.Context
			Username string
		}
		CreateFeedback []struct {
			Ctx   context.Context
			Input feedback.CreateFeedbackInput
		}
		ListFeedback []struct {
			Ctx      context.Context
			Username string
		}
		ListFeedbackAndInsights []struct {
			Ctx      context.Context
			Username string
		}
		GenerateInsight []struct {
			Ctx        context.Context
			FeedbackID string
		}
	}
	lockGetOrCreateUser         sync.RWMutex
	lockCreateFeedback          sync.RWMutex
	lockListFeedback            sync.RWMutex
	lockListFeedbackAndInsights sync.RWMutex
	lockGenerateInsight         sync.RWMutex
}

func (mock *feedbackServiceMock) GetOrCreateUser(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetOrCreateUserFunc == nil {
		panic("feedbackServiceMock.GetOrCreateUserFunc: method is nil but feedbackService.GetOrCreateUser was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetOrCreateUser.Lock()
	mock.calls.GetOrCreateUser = append(mock.calls.GetOrCreateUser, callInfo)
	mock.lockGetOrCreateUser.Unlock()
	return mock.GetOrCreateUserFunc(ctx, username)
}

func (mock *feedbackServiceMock) GetOrCreateUserCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetOrCreateUser.RLock()
	calls := mock.calls.GetOrCreateUser
	mock.lockGetOrCreateUser.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) CreateFeedback(ctx context.Context, input feedback.CreateFeedbackInput) (*domain.Feedback, error) {
	if mock.CreateFeedbackFunc == nil {
		panic("feedbackServiceMock.CreateFeedbackFunc: method is nil but feedbackService.CreateFeedback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.CreateFeedbackInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateFeedback.Lock()
	mock.calls.CreateFeedback = append(mock.calls.CreateFeedback, callInfo)
	mock.lockCreateFeedback.Unlock()
	return mock.CreateFeedbackFunc(ctx, input)
}

func (mock *feedbackServiceMock) CreateFeedbackCalls() []struct {
	Ctx   context.Context
	Input feedback.CreateFeedbackInput
} {
	mock.lockCreateFeedback.RLock()
	calls := mock.calls.CreateFeedback
	mock.lockCreateFeedback.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) ListFeedback(ctx context.Context, username string) ([]domain.Feedback, error) {
	if mock.ListFeedbackFunc == nil {
		panic("feedbackServiceMock.ListFeedbackFunc: method is nil but feedbackService.ListFeedback was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockListFeedback.Lock()
	mock.calls.ListFeedback = append(mock.calls.ListFeedback, callInfo)
	mock.lockListFeedback.Unlock()
	return mock.ListFeedbackFunc(ctx, username)
}

func (mock *feedbackServiceMock) ListFeedbackCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockListFeedback.RLock()
	calls := mock.calls.ListFeedback
	mock.lockListFeedback.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) ListFeedbackAndInsights(ctx context.Context, username string) ([]domain.Feedback, error) {
	if mock.ListFeedbackAndInsightsFunc == nil {
		panic("feedbackServiceMock.ListFeedbackAndInsightsFunc: method is nil but feedbackService.ListFeedbackAndInsights was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockListFeedbackAndInsights.Lock()
	mock.calls.ListFeedbackAndInsights = append(mock.calls.ListFeedbackAndInsights, callInfo)
	mock.lockListFeedbackAndInsights.Unlock()
	return mock.ListFeedbackAndInsightsFunc(ctx, username)
}

func (mock *feedbackServiceMock) ListFeedbackAndInsightsCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockListFeedbackAndInsights.RLock()
	calls := mock.calls.ListFeedbackAndInsights
	mock.lockListFeedbackAndInsights.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) GenerateInsight(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	if mock.GenerateInsightFunc == nil {
		panic("feedbackServiceMock.GenerateInsightFunc: method is nil but feedbackService.GenerateInsight was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FeedbackID string
	}{
		Ctx:        ctx,
		FeedbackID: feedbackID,
	}
	mock.lockGenerateInsight.Lock()
	mock.calls.GenerateInsight = append(mock.calls.GenerateInsight, callInfo)
	mock.lockGenerateInsight.Unlock()
	return mock.GenerateInsightFunc(ctx, feedbackID)
}

func (mock *feedbackServiceMock) GenerateInsightCalls() []struct {
	Ctx        context.Context
	FeedbackID string
} {
	mock.lockGenerateInsight.RLock()
	calls := mock.calls.GenerateInsight
	mock.lockGenerateInsight.RUnlock()
	return calls
}
