package services

import (
	"context"
)

// LLMService defines the interface for interacting with a language model API.
type LLMService interface {
	// Generate sends one prompt under a system instruction and returns
	// the raw model text. Callers parse it; the service does not.
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)

	// Ping checks that the service is reachable and credentialed.
	Ping(ctx context.Context) error
}

// Generation defaults shared by the providers. The high temperature is
// intentional: the workbench wants invention, not transcription.
const (
	DefaultTemperature = 0.85
	DefaultMaxTokens   = 4096
)
