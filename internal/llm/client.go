// Package llm talks to the text-generation upstream. The Gemini REST
// protocol is the default; any openai-compatible endpoint can be configured
// as an alternative provider.
package llm

import "context"

// Generation parameters are fixed, not per-call: the planner depends on the
// same creativity/determinism trade-off for every request.
const (
	Temperature     = 0.7
	TopK            = 40
	TopP            = 0.95
	MaxOutputTokens = 8192
)

// Client is the single-turn generation interface the planner consumes.
// The upstream has no distinct role channels, so implementations flatten
// the system and user prompts into one request body.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}
