package llm

import "context"

// Generator is the generation capability: prompt in, article text out.
// One synchronous request, no streaming, no retry — transport and quota
// failures surface to the caller as-is.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int64) (string, error)
}
