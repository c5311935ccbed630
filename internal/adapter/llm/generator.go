package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// llmInsight is the JSON object the model is asked to produce.
type llmInsight struct {
	Sentiment      string   `json:"sentiment"`
	KeyTopics      []string `json:"key_topics"`
	ActionRequired bool     `json:"action_required"`
	Summary        string   `json:"summary"`
}

// Generator turns one feedback record into an insight.
type Generator struct {
	llm     Completer
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time
}

// NewGenerator creates a Generator backed by c. timeout bounds each model
// call; zero means no bound.
func NewGenerator(c Completer, timeout time.Duration, logger *slog.Logger) *Generator {
	return &Generator{
		llm:     c,
		timeout: timeout,
		log:     logger.With("adapter", "llm"),
		now:     time.Now,
	}
}

// Name returns the underlying completer name.
func (g *Generator) Name() string {
	return g.llm.Name()
}

// Generate asks the model for an insight on title and body. Tokens come
// from the provider's usage report; Latency is the wall-clock duration of
// the model call in seconds.
func (g *Generator) Generate(ctx context.Context, title, body string) (*domain.Insight, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := g.now()
	c, err := g.llm.Complete(ctx, systemPrompt, buildPrompt(title, body))
	latency := g.now().Sub(start)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSON(c.Text)
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	var raw llmInsight
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("llm: decode insight: %w", err)
	}

	sentiment := domain.Sentiment(strings.ToLower(strings.TrimSpace(raw.Sentiment)))
	if !sentiment.IsValid() {
		return nil, fmt.Errorf("llm: invalid sentiment %q", raw.Sentiment)
	}
	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		return nil, fmt.Errorf("llm: empty summary")
	}

	topics := make([]string, 0, len(raw.KeyTopics))
	for _, t := range raw.KeyTopics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}

	g.log.DebugContext(ctx, "insight generated",
		slog.String("provider", g.llm.Name()),
		slog.Int("tokens", c.Tokens),
		slog.Duration("latency", latency),
	)

	return &domain.Insight{
		Sentiment:      sentiment,
		KeyTopics:      topics,
		ActionRequired: raw.ActionRequired,
		Summary:        summary,
		Tokens:         c.Tokens,
		Latency:        latency.Seconds(),
	}, nil
}
