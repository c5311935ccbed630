package feedback

import (
	"context"
	"sync"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, title string, body string) (*domain.Insight, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Title string
			Body  string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, title string, body string) (*domain.Insight, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title string
		Body  string
	}{
		Ctx:   ctx,
		Title: title,
		Body:  body,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, title, body)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx   context.Context
	Title string
	Body  string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
