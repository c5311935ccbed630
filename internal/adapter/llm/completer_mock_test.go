package llm

import (
	"context"
	"sync"
)

var _ Completer = &CompleterMock{}

type CompleterMock struct {
	CompleteFunc func(ctx context.Context, system string, prompt string) (Completion, error)
	NameFunc     func() string

	calls struct {
		Complete []struct {
			Ctx    context.Context
			System string
			Prompt string
		}
		Name []struct{}
	}
	lockComplete sync.RWMutex
	lockName     sync.RWMutex
}

func (mock *CompleterMock) Complete(ctx context.Context, system string, prompt string) (Completion, error) {
	if mock.CompleteFunc == nil {
		panic("CompleterMock.CompleteFunc: method is nil but Completer.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		System string
		Prompt string
	}{Ctx: ctx, System: system, Prompt: prompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, system, prompt)
}

func (mock *CompleterMock) CompleteCalls() []struct {
	Ctx    context.Context
	System string
	Prompt string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *CompleterMock) Name() string {
	if mock.NameFunc == nil {
		panic("CompleterMock.NameFunc: method is nil but Completer.Name was just called")
	}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, struct{}{})
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *CompleterMock) NameCalls() []struct{} {
	mock.lockName.RLock()
	calls := mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}
