// Package llm wraps the external generation and embedding service behind a
// small client interface so the rest of the system can be tested without
// network access.
package llm

import "context"

// Client is the contract consumed by the session pipeline. Generate produces
// text from a system prompt and user text; Embed produces a vector
// representation of text. Both block until the service responds; cancellation
// flows through the context.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userText string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}
