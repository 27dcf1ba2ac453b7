package analyze

import (
	"context"
)

// MockLLMClient returns canned completions. When Queue is set, responses are
// consumed in order; otherwise every call returns Response.
type MockLLMClient struct {
	Response string
	Queue    []string
	Err      error

	Prompts []string
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Queue) > 0 {
		next := m.Queue[0]
		m.Queue = m.Queue[1:]
		return next, nil
	}
	return m.Response, nil
}
