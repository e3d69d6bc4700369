package llm

import "context"

// GenerateOptions tunes a single generation call. Zero values fall back to
// the provider defaults.
type GenerateOptions struct {
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
}

// Usage maps vendor-specific token accounting into one shape.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// Result is a completed generation. Usage is nil when the vendor reported
// nothing.
type Result struct {
	Content string
	Usage   *Usage
}

// Provider is the capability both vendor gateways implement. Failures are
// wrapped and returned without retries; retry policy, if any, belongs to the
// caller.
type Provider interface {
	GenerateText(ctx context.Context, prompt string, opts *GenerateOptions) (*Result, error)
	Name() string
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 4096
)

// resolve applies defaults and folds an optional system prompt ahead of the
// user prompt. Neither vendor is assumed to support a native system role.
func resolve(prompt string, opts *GenerateOptions) (full string, temperature float64, maxTokens int) {
	temperature = defaultTemperature
	maxTokens = defaultMaxTokens
	full = prompt
	if opts == nil {
		return full, temperature, maxTokens
	}
	if opts.Temperature > 0 {
		temperature = opts.Temperature
	}
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}
	if opts.SystemPrompt != "" {
		full = opts.SystemPrompt + "\n\n" + prompt
	}
	return full, temperature, maxTokens
}
