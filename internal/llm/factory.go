package llm

import (
	"fmt"

	"github.com/nishant/yojana/pkg/config"
)

// New builds a client for the named provider. Gemini is the default; the
// openai-compatible path covers OpenAI proper and API-compatible hosts.
func New(name string, cfg config.ProviderConfig) (Client, error) {
	switch name {
	case "gemini", "":
		return NewGemini(cfg), nil
	case "openai", "openrouter", "local":
		return NewOpenAICompat(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider: %s (supported: gemini, openai, openrouter, local)", name)
	}
}
