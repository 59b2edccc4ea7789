package config

import (
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// LLM provider names accepted in LLM_PROVIDER.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderMock      = "mock"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	RedisURL string

	LLMProvider     string
	ModelName       string
	AnthropicAPIKey string
	GeminiAPIKey    string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderMock)),
		ModelName:       getEnv("MODEL_NAME", ""),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements: a real provider needs its
// API key, the mock needs nothing.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.LLMProvider, validation.Required,
			validation.In(ProviderAnthropic, ProviderGemini, ProviderMock)),
		validation.Field(&c.AnthropicAPIKey,
			validation.Required.When(c.LLMProvider == ProviderAnthropic).
				Error("ANTHROPIC_API_KEY is required when LLM_PROVIDER=anthropic")),
		validation.Field(&c.GeminiAPIKey,
			validation.Required.When(c.LLMProvider == ProviderGemini).
				Error("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")),
	)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
