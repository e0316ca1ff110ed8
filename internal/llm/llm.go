// Package llm holds the generative-text clients. The pipeline makes at
// most one call per generation request; any transport or quota error
// propagates as a fatal error for that request, with no retry.
package llm

import (
	"context"
	"fmt"
)

// Generator abstracts the model client so tests can substitute a double.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Params are the fixed per-call generation parameters. They are system
// constants, not user-tunable.
type Params struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// DefaultParams mirrors the original generation settings.
func DefaultParams() Params {
	return Params{
		Temperature:     0.2,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 1024,
	}
}

// Settings configures a concrete client.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Params   Params
}

// New builds the Generator for the configured provider.
func New(ctx context.Context, s Settings) (Generator, error) {
	switch s.Provider {
	case "gemini":
		return NewGemini(ctx, s)
	case "openai":
		return NewOpenAI(s)
	default:
		return nil, fmt.Errorf("llm provider %q not supported", s.Provider)
	}
}
