package llm

import "context"

// Mock is a canned-response Generator for local runs and tests.
type Mock struct {
	Response string
	Err      error
	// Prompts records everything the mock was asked, in call order.
	Prompts []string
}

func (m *Mock) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
