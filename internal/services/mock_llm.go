package services

import (
	"context"
	"sync"
)

// MockLLMService is a mock implementation of LLMService for testing
type MockLLMService struct {
	GenerateFunc func(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
	PingFunc     func(ctx context.Context) error

	// Track calls for testing
	GenerateCalls []GenerateCall

	mu sync.Mutex
}

type GenerateCall struct {
	SystemPrompt string
	UserPrompt   string
}

var _ LLMService = (*MockLLMService)(nil)

// NewMockLLMService creates a new mock LLM service
func NewMockLLMService() *MockLLMService {
	return &MockLLMService{
		GenerateCalls: make([]GenerateCall, 0),
	}
}

func (m *MockLLMService) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateCalls = append(m.GenerateCalls, GenerateCall{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, systemPrompt, userPrompt)
	}
	return "{}", nil
}

func (m *MockLLMService) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// CallCount returns how many Generate calls the mock has seen.
func (m *MockLLMService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GenerateCalls)
}
