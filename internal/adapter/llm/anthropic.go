package llm

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic calls the Anthropic Messages API.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropic creates an Anthropic completer. Extra request options (base
// URL, retries) are passed to the SDK client.
func NewAnthropic(apiKey, model string, maxTokens int, opts ...option.RequestOption) *Anthropic {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (a *Anthropic) Name() string {
	return "anthropic (" + a.model + ")"
}

func (a *Anthropic) Complete(ctx context.Context, system, prompt string) (Completion, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return Completion{}, fmt.Errorf("llm: anthropic: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return Completion{}, ErrEmptyResponse
	}

	return Completion{
		Text:   b.String(),
		Tokens: int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
	}, nil
}
