package llm

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// GeminiProvider calls Google's Gemini API through the official GenAI
// SDK. It is an optional hosted alternative; the contract is the same as
// the other backends: one request, one string, errors for the fallback.
type GeminiProvider struct {
	Model  string // e.g. "gemini-2.0-flash-exp"
	APIKey string // falls back to GEMINI_API_KEY
}

var _ Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) Name() string { return "gemini" }

// Generate sends a generateContent request with a light temperature
// suited to advisory prose.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	apiKey := p.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("gemini: API key not configured")
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.7)),
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini: generation failed: %w", err)
	}

	return result.Text(), nil
}
