package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini calls Google Gemini through the Gemini API backend.
type Gemini struct {
	models    geminiModels
	model     string
	maxTokens int
}

// NewGemini creates a Gemini completer.
func NewGemini(ctx context.Context, apiKey, model string, maxTokens int) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: gemini: new client: %w", err)
	}
	return newGemini(client.Models, model, maxTokens), nil
}

func newGemini(models geminiModels, model string, maxTokens int) *Gemini {
	return &Gemini{models: models, model: model, maxTokens: maxTokens}
}

func (g *Gemini) Name() string {
	return "gemini (" + g.model + ")"
}

func (g *Gemini) Complete(ctx context.Context, system, prompt string) (Completion, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		MaxOutputTokens:   int32(g.maxTokens),
	})
	if err != nil {
		return Completion{}, fmt.Errorf("llm: gemini: generate: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Completion{}, ErrEmptyResponse
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return Completion{}, ErrEmptyResponse
	}

	c := Completion{Text: text.String()}
	if resp.UsageMetadata != nil {
		c.Tokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return c, nil
}
