package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "REDIS_URL", "LLM_PROVIDER", "ANTHROPIC_API_KEY", "GEMINI_API_KEY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, ProviderMock, cfg.LLMProvider)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
}

func TestValidateRequiresProviderKey(t *testing.T) {
	cfg := &Config{Port: "8080", LLMProvider: ProviderAnthropic}
	assert.Error(t, cfg.Validate())

	cfg.AnthropicAPIKey = "sk-test"
	assert.NoError(t, cfg.Validate())

	gem := &Config{Port: "8080", LLMProvider: ProviderGemini}
	assert.Error(t, gem.Validate())
	gem.GeminiAPIKey = "g-test"
	assert.NoError(t, gem.Validate())
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := &Config{Port: "8080", LLMProvider: "ollama"}
	assert.Error(t, cfg.Validate())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestLoadClientMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadClient(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
}

func TestLoadClientExpandsEnv(t *testing.T) {
	t.Setenv("WORKBENCH_HOST", "example.test")
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: http://${WORKBENCH_HOST}:8080\ntone: bleak\n"), 0o644))

	cfg, err := LoadClient(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test:8080", cfg.APIBaseURL)
	assert.Equal(t, "bleak", cfg.Tone)
}

func TestLoadClientRejectsEmptyURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`api_base_url: ""`), 0o644))

	_, err := LoadClient(path)
	assert.Error(t, err)
}
