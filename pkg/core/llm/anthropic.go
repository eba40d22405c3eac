package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicProvider calls the Claude Messages API. The SDK reads
// ANTHROPIC_API_KEY from the environment on its own.
type AnthropicProvider struct {
	Model string // defaults to a Sonnet model
}

var _ Provider = (*AnthropicProvider)(nil)

func (p *AnthropicProvider) Name() string { return "anthropic" }

// Generate sends a single user message and concatenates the text blocks
// of the reply.
func (p *AnthropicProvider) Generate(ctx context.Context, prompt string) (string, error) {
	model := p.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	client := anthropic.NewClient()
	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: generation failed: %w", err)
	}

	var out string
	for _, block := range message.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	if out == "" {
		return "", fmt.Errorf("anthropic: response contained no text blocks")
	}
	return out, nil
}
