package config

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// EncryptionKeySize is the decoded key length required by the at-rest cipher.
const EncryptionKeySize = 32

// Validate checks the settings every binary depends on.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Client.validate(); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	return nil
}

// ValidateServer checks the sections the insights API needs on top of
// Validate: database, encryption key, LLM provider and backfill worker.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if _, err := c.Encryption.DecodeKey(); err != nil {
		return fmt.Errorf("encryption: %w", err)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Insights.validate(); err != nil {
		return fmt.Errorf("insights: %w", err)
	}
	return nil
}

// DecodeKey returns the raw encryption key.
func (e EncryptionConfig) DecodeKey() ([]byte, error) {
	if e.Key == "" {
		return nil, fmt.Errorf("key is required")
	}
	key, err := hex.DecodeString(strings.TrimSpace(e.Key))
	if err != nil {
		return nil, fmt.Errorf("key must be hex-encoded: %w", err)
	}
	if len(key) != EncryptionKeySize {
		return nil, fmt.Errorf("key must decode to %d bytes (got %d)", EncryptionKeySize, len(key))
	}
	return key, nil
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url must include a host (got %q)", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", c.Timeout)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	provider := domain.LLMProvider(l.Provider)
	if !provider.IsValid() {
		return fmt.Errorf("unknown provider %q (supported: anthropic, bedrock, gemini)", l.Provider)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	switch provider {
	case domain.LLMProviderAnthropic:
		if l.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for provider anthropic")
		}
	case domain.LLMProviderGemini:
		if l.GeminiAPIKey == "" {
			return fmt.Errorf("gemini_api_key is required for provider gemini")
		}
	case domain.LLMProviderBedrock:
		if l.BedrockRegion == "" {
			return fmt.Errorf("bedrock_region is required for provider bedrock")
		}
	}
	return nil
}

func (i *InsightsConfig) validate() error {
	if i.BackfillBatchSize <= 0 {
		return fmt.Errorf("backfill_batch_size must be > 0 (got %d)", i.BackfillBatchSize)
	}
	if i.GenerateRatePerMinute <= 0 {
		return fmt.Errorf("generate_rate_per_minute must be > 0 (got %d)", i.GenerateRatePerMinute)
	}
	if i.BackfillSchedule == "" {
		return nil
	}
	if _, err := cron.ParseStandard(i.BackfillSchedule); err != nil {
		return fmt.Errorf("backfill_schedule: %w", err)
	}
	return nil
}
