package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"finance_advisor/pkg/core/utils"
)

const (
	hfBaseURL      = "https://api-inference.huggingface.co/models/"
	hfDefaultModel = "mistralai/Mistral-7B-Instruct-v0.2"
	hfTimeout      = 30 * time.Second
)

// HuggingFaceProvider calls the hosted Inference API. The endpoint
// returns a JSON list of generations; only the first is used.
type HuggingFaceProvider struct {
	model  string
	apiKey string
	client *http.Client
}

// NewHuggingFaceProvider creates the hosted backend. An empty apiKey
// falls back to HUGGINGFACE_API_KEY; an empty model to the Mistral
// instruct default.
func NewHuggingFaceProvider(model, apiKey string) *HuggingFaceProvider {
	if model == "" {
		model = hfDefaultModel
	}
	if apiKey == "" {
		apiKey = os.Getenv("HUGGINGFACE_API_KEY")
	}
	return &HuggingFaceProvider{
		model:  model,
		apiKey: apiKey,
		client: &http.Client{Timeout: hfTimeout},
	}
}

func (p *HuggingFaceProvider) Name() string { return "huggingface" }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// Generate posts the prompt to the inference endpoint and extracts the
// first generation. A missing key, non-200 status or unusable body is an
// error for the caller's fallback to handle.
func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("huggingface: API key not configured")
	}

	body, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens:   500,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("huggingface: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hfBaseURL+p.model, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("huggingface: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface: unexpected status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("huggingface: read body: %w", err)
	}

	// The free tier occasionally returns bodies that fail strict JSON
	// parsing; the lenient decoder repairs what it can.
	var generations []hfGeneration
	if err := utils.UnmarshalLenient(raw, &generations); err != nil {
		return "", fmt.Errorf("huggingface: %w", err)
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("huggingface: empty generation list")
	}

	return generations[0].GeneratedText, nil
}
