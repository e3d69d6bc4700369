package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini-backed provider.
func NewGemini(apiKey string) (Provider, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: defaultGeminiModel}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) GenerateText(ctx context.Context, prompt string, opts *GenerateOptions) (*Result, error) {
	full, temperature, maxTokens := resolve(prompt, opts)

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(float32(temperature))
	model.SetMaxOutputTokens(int32(maxTokens))

	resp, err := model.GenerateContent(ctx, genai.Text(full))
	if err != nil {
		return nil, fmt.Errorf("failed to generate text with Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no content")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			content += string(txt)
		}
	}
	if content == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	// Usage metadata is not always populated; zero-fill missing counts and
	// omit usage entirely when the block is absent.
	var usage *Usage
	if resp.UsageMetadata != nil {
		usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return &Result{Content: content, Usage: usage}, nil
}
