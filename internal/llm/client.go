package llm

import (
	"context"
)

// LLMClient is the single capability the analyzers need from a completion
// service: one prompt in, one text completion out.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
