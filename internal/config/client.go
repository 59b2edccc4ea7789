package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ClientConfig configures the console client. It is read from a YAML
// file so a keeper can keep per-campaign settings next to their notes.
type ClientConfig struct {
	APIBaseURL string `yaml:"api_base_url"`
	Tone       string `yaml:"tone"`
	SaveSlot   string `yaml:"save_slot"`
}

// DefaultClientConfig is used when no config file exists.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		APIBaseURL: "http://localhost:8080",
	}
}

// Validate checks the client configuration.
func (c *ClientConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIBaseURL, validation.Required),
	)
}

// LoadClient reads a YAML client config, expanding ${ENV} references in
// the file body. A missing file is not an error; defaults are returned.
func LoadClient(filename string) (*ClientConfig, error) {
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultClientConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	cfg := DefaultClientConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
