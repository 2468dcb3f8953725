// Package llm provides the inference provider abstraction, the ordered
// fallback controller and the structured output parser.
package llm

import (
	"context"

	"github.com/soruj/portfolio-assistant/internal/types"
)

// Chunk is one element of a provider's streamed output. A Chunk with a
// non-nil Err terminates the stream: a broken provider stream must be
// observable to the consumer, never presented as a clean end-of-stream.
type Chunk struct {
	Text string
	Err  error
}

// Provider is one inference backend. Implementations are stateless per call
// and safe for concurrent use.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Invoke runs a blocking completion over the ordered message list.
	Invoke(ctx context.Context, messages []types.PromptMessage) (string, error)
	// Stream runs a streaming completion. The returned channel is a lazy,
	// single-pass sequence: it is closed when the provider finishes, and
	// canceling ctx stops upstream consumption promptly.
	Stream(ctx context.Context, messages []types.PromptMessage) (<-chan Chunk, error)
}

// splitMessages separates an assembled prompt into the concatenated system
// text, the prior turns, and the final user message.
func splitMessages(messages []types.PromptMessage) (system string, history []types.PromptMessage, last string) {
	for i, m := range messages {
		switch {
		case m.Role == types.RoleSystem:
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
		case i == len(messages)-1:
			last = m.Content
		default:
			history = append(history, m)
		}
	}
	return system, history, last
}
