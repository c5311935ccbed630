// Package llm talks to the language model providers that generate
// feedback insights.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a provider answers without text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Completion is the text of one model answer and the tokens it consumed
// (prompt plus output).
type Completion struct {
	Text   string
	Tokens int
}

// Completer sends a system instruction and a user message to a model.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (Completion, error)
	// Name identifies the provider and model for logs.
	Name() string
}
