package llm

import (
	"context"
	"sync"
)

// MockClient implements Client for testing. Each call is recorded; behavior
// is scripted through the function fields.
type MockClient struct {
	mu sync.Mutex

	GenerateFunc func(ctx context.Context, systemPrompt, userText string) (string, error)
	EmbedFunc    func(ctx context.Context, text string) ([]float32, error)

	generateCalls []GenerateCall
	embedCalls    []string
}

// GenerateCall records one Generate invocation.
type GenerateCall struct {
	SystemPrompt string
	UserText     string
}

// Generate returns the scripted response, defaulting to empty text.
func (m *MockClient) Generate(ctx context.Context, systemPrompt, userText string) (string, error) {
	m.mu.Lock()
	m.generateCalls = append(m.generateCalls, GenerateCall{SystemPrompt: systemPrompt, UserText: userText})
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, systemPrompt, userText)
	}
	return "", nil
}

// Embed returns the scripted vector, defaulting to nil.
func (m *MockClient) Embed(ctx context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.embedCalls = append(m.embedCalls, text)
	m.mu.Unlock()

	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, text)
	}
	return nil, nil
}

// GenerateCalls returns a copy of the recorded Generate invocations.
func (m *MockClient) GenerateCalls() []GenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GenerateCall(nil), m.generateCalls...)
}

// EmbedCalls returns a copy of the recorded Embed inputs.
func (m *MockClient) EmbedCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.embedCalls...)
}
