package config

import "time"

// Config is the root application configuration shared by the viewer and
// the insights API. Each binary validates the sections it uses.
type Config struct {
	Client     ClientConfig     `yaml:"client"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Encryption EncryptionConfig `yaml:"encryption"`
	LLM        LLMConfig        `yaml:"llm"`
	Insights   InsightsConfig   `yaml:"insights"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Notify     NotifyConfig     `yaml:"notify"`
}

// ClientConfig holds settings of the feedback viewer.
// A zero Timeout means requests are bounded only by their context.
type ClientConfig struct {
	BaseURL  string        `yaml:"base_url" env:"FEEDBACK_API_BASE_URL" env-default:"http://localhost:8000"`
	Timeout  time.Duration `yaml:"timeout"  env:"FEEDBACK_API_TIMEOUT"  env-default:"0s"`
	Username string        `yaml:"username" env:"FEEDBACK_USERNAME"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// EncryptionConfig holds the key used to encrypt feedback text at rest.
// Key is hex-encoded and must decode to 32 bytes.
type EncryptionConfig struct {
	Key string `yaml:"key" env:"ENCRYPTION_KEY"`
}

// LLMConfig selects and configures the insight generation provider.
type LLMConfig struct {
	Provider        string        `yaml:"provider"          env:"LLM_PROVIDER"          env-default:"anthropic"`
	MaxTokens       int           `yaml:"max_tokens"        env:"LLM_MAX_TOKENS"        env-default:"1024"`
	RequestTimeout  time.Duration `yaml:"request_timeout"   env:"LLM_REQUEST_TIMEOUT"   env-default:"60s"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"       env-default:"claude-3-7-sonnet-20250219"`
	BedrockRegion   string        `yaml:"bedrock_region"    env:"BEDROCK_REGION"        env-default:"us-east-1"`
	BedrockModel    string        `yaml:"bedrock_model"     env:"BEDROCK_MODEL"         env-default:"anthropic.claude-3-7-sonnet-20250219-v1:0"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"GEMINI_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"      env:"GEMINI_MODEL"          env-default:"gemini-2.0-flash"`
}

// InsightsConfig holds settings of insight generation.
// An empty BackfillSchedule disables the backfill worker.
// GenerateRatePerMinute limits POST /feedback/{id}/insight per client IP.
type InsightsConfig struct {
	BackfillSchedule      string `yaml:"backfill_schedule"        env:"INSIGHTS_BACKFILL_SCHEDULE"        env-default:"@every 5m"`
	BackfillBatchSize     int    `yaml:"backfill_batch_size"      env:"INSIGHTS_BACKFILL_BATCH_SIZE"      env-default:"20"`
	GenerateRatePerMinute int    `yaml:"generate_rate_per_minute" env:"INSIGHTS_GENERATE_RATE_PER_MINUTE" env-default:"10"`
}

// LogConfig holds logging settings.
// File, when set, redirects log output away from stderr.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	File   string `yaml:"file"   env:"LOG_FILE"`
}

// NotifyConfig configures where failure notifications are delivered
// besides the local display.
type NotifyConfig struct {
	SlackWebhookURL string `yaml:"slack_webhook_url" env:"NOTIFY_SLACK_WEBHOOK_URL"`
}
