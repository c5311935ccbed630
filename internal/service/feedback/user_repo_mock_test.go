package feedback

import (
	"context"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		GetOrCreate []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGetOrCreate sync.RWMutex
}

func (mock *userRepoMock) GetOrCreate(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetOrCreateFunc == nil {
		panic("userRepoMock.GetOrCreateFunc: method is nil but userRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, username)
}

func (mock *userRepoMock) GetOrCreateCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}
