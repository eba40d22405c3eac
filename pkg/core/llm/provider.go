// Package llm abstracts the text-generation backends the advice
// assembler can dispatch to. Exactly one provider is selected from
// configuration at process start; callers hold the instance and never
// re-dispatch per request.
package llm

import (
	"context"
	"errors"
)

// Provider is the capability interface every backend implements.
// Generate performs a single bounded request with no retries; any failure
// is returned to the caller, which is expected to fall back locally.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ErrNoBackend is returned by the null provider on every call.
var ErrNoBackend = errors.New("no text generation backend configured")

// Config selects and parameterizes the backend. Zero values fall back to
// environment variables and per-provider defaults.
type Config struct {
	Provider  string `yaml:"provider"`   // huggingface, ollama, gemini, anthropic or none
	Model     string `yaml:"model"`      // backend-specific model identifier
	APIKey    string `yaml:"api_key"`    // overrides the provider's env variable
	OllamaURL string `yaml:"ollama_url"` // base URL of the local inference server
}

// NewFromConfig builds the single process-wide provider. Unknown provider
// names map to the null backend, which always fails and therefore always
// triggers the rule-based fallback.
func NewFromConfig(cfg Config) Provider {
	switch cfg.Provider {
	case "huggingface":
		return NewHuggingFaceProvider(cfg.Model, cfg.APIKey)
	case "ollama":
		return NewOllamaProvider(cfg.OllamaURL, cfg.Model)
	case "gemini":
		return &GeminiProvider{Model: cfg.Model, APIKey: cfg.APIKey}
	case "anthropic":
		return &AnthropicProvider{Model: cfg.Model}
	default:
		return NullProvider{}
	}
}

// NullProvider is the backend of last resort: it has no transport and
// fails every request.
type NullProvider struct{}

func (NullProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrNoBackend
}

func (NullProvider) Name() string { return "none" }
