package llm

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/nishant/yojana/pkg/config"
)

// OpenAICompatClient serves any openai-compatible endpoint (OpenAI proper,
// OpenRouter, local servers) through langchaingo. The prompt is flattened
// the same way as for Gemini so both providers see identical input.
type OpenAICompatClient struct {
	model llms.Model
	name  string
}

// NewOpenAICompat builds the langchaingo-backed client.
func NewOpenAICompat(cfg config.ProviderConfig) (*OpenAICompatClient, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Message: "no API key configured for openai-compatible provider"}
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, &ConfigError{Message: err.Error()}
	}

	return &OpenAICompatClient{model: model, name: cfg.Model}, nil
}

func (c *OpenAICompatClient) Model() string {
	return c.name
}

// Generate sends the flattened prompt with the same fixed generation
// parameters as the Gemini client. langchaingo owns the HTTP exchange, so
// failures surface as transport errors without a separable status/body.
func (c *OpenAICompatClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, systemPrompt+"\n\n"+userPrompt,
		llms.WithTemperature(Temperature),
		llms.WithTopK(TopK),
		llms.WithTopP(TopP),
		llms.WithMaxTokens(MaxOutputTokens),
	)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	return out, nil
}
