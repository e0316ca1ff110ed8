package llm

import (
	"context"
	"errors"
	"fmt"

	genai "google.golang.org/genai"
)

// Gemini calls the Google generative-language API.
type Gemini struct {
	client *genai.Client
	model  string
	params Params
}

// NewGemini constructs the client from explicit settings. The credential
// is passed in; nothing is read from the environment here.
func NewGemini(ctx context.Context, s Settings) (*Gemini, error) {
	if s.APIKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	model := s.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: s.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: c, model: model, params: s.Params}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.params.Temperature),
		TopP:            genai.Ptr(g.params.TopP),
		TopK:            genai.Ptr(g.params.TopK),
		MaxOutputTokens: g.params.MaxOutputTokens,
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	return res.Text(), nil
}
