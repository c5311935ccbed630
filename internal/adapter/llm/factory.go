package llm

import (
	"context"
	"fmt"

	"github.com/heartmarshall/feedback-insights/internal/config"
	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// NewCompleter creates the completer selected by cfg.Provider.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (Completer, error) {
	switch domain.LLMProvider(cfg.Provider) {
	case domain.LLMProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("llm: anthropic API key not configured")
		}
		return NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.MaxTokens), nil
	case domain.LLMProviderBedrock:
		b, err := NewBedrock(ctx, cfg.BedrockRegion, cfg.BedrockModel, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return b, nil
	case domain.LLMProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("llm: gemini API key not configured")
		}
		g, err := NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q (supported: anthropic, bedrock, gemini)", cfg.Provider)
	}
}
