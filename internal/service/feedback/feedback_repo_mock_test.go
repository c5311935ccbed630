package feedback

import (
	"context"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc             func(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	GetByIDFunc            func(ctx context.Context, id string) (*domain.Feedback, error)
	ListByUsernameFunc     func(ctx context.Context, username string) ([]domain.Feedback, error)
	ListWithoutInsightFunc func(ctx context.Context, limit int, maxAttempts int) ([]domain.Feedback, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			F   *domain.Feedback
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		ListByUsername []struct {
			Ctx      context.Context
			Username string
		}
		ListWithoutInsight []struct {
			Ctx         context.Context
			Limit       int
			MaxAttempts int
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockListByUsername     sync.RWMutex
	lockListWithoutInsight sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feedback
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Feedback
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	if mock.GetByIDFunc == nil {
		panic("feedbackRepoMock.GetByIDFunc: method is nil but feedbackRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *feedbackRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) ListByUsername(ctx context.Context, username string) ([]domain.Feedback, error) {
	if mock.ListByUsernameFunc == nil {
		panic("feedbackRepoMock.ListByUsernameFunc: method is nil but feedbackRepo.ListByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockListByUsername.Lock()
	mock.calls.ListByUsername = append(mock.calls.ListByUsername, callInfo)
	mock.lockListByUsername.Unlock()
	return mock.ListByUsernameFunc(ctx, username)
}

func (mock *feedbackRepoMock) ListByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockListByUsername.RLock()
	calls := mock.calls.ListByUsername
	mock.lockListByUsername.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) ListWithoutInsight(ctx context.Context, limit int, maxAttempts int) ([]domain.Feedback, error) {
	if mock.ListWithoutInsightFunc == nil {
		panic("feedbackRepoMock.ListWithoutInsightFunc: method is nil but feedbackRepo.ListWithoutInsight was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Limit       int
		MaxAttempts int
	}{
		Ctx:         ctx,
		Limit:       limit,
		MaxAttempts: maxAttempts,
	}
	mock.lockListWithoutInsight.Lock()
	mock.calls.ListWithoutInsight = append(mock.calls.ListWithoutInsight, callInfo)
	mock.lockListWithoutInsight.Unlock()
	return mock.ListWithoutInsightFunc(ctx, limit, maxAttempts)
}

func (mock *feedbackRepoMock) ListWithoutInsightCalls() []struct {
	Ctx         context.Context
	Limit       int
	MaxAttempts int
} {
	mock.lockListWithoutInsight.RLock()
	calls := mock.calls.ListWithoutInsight
	mock.lockListWithoutInsight.RUnlock()
	return calls
}
