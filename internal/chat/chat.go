// Package chat implements the conversational flow: gather portfolio content,
// rank it against the visitor's question, assemble a bounded prompt and
// stream the provider's answer.
package chat

import (
	"context"
	"log"
	"strings"

	"github.com/soruj/portfolio-assistant/internal/content"
	"github.com/soruj/portfolio-assistant/internal/llm"
	"github.com/soruj/portfolio-assistant/internal/prompt"
	"github.com/soruj/portfolio-assistant/internal/ranking"
	"github.com/soruj/portfolio-assistant/internal/types"
)

// Engine answers visitor questions about the portfolio owner.
type Engine struct {
	store    *content.Store
	provider llm.Provider // nil when no cloud credential is configured
}

// NewEngine wires the chat flow. provider may be nil; the engine then answers
// every request with the configuration-guidance message instead of invoking
// anything.
func NewEngine(store *content.Store, provider llm.Provider) *Engine {
	return &Engine{store: store, provider: provider}
}

// Respond produces the streamed answer to one visitor message. The returned
// channel is a lazy, single-pass sequence; it always yields something
// renderable — a streamed model answer, the configuration-guidance message,
// or a deterministic summary built from ranked content when the provider
// cannot be invoked. Mid-stream provider errors pass through as error chunks
// so the transport can surface them instead of faking a clean end-of-stream.
func (e *Engine) Respond(ctx context.Context, message string, history []types.ConversationTurn) <-chan llm.Chunk {
	if e.provider == nil {
		return textStream(prompt.GuidanceMessage())
	}

	bundle := e.store.Gather(ctx)
	ranked := ranking.Rank(message, bundle)
	messages := prompt.ChatMessages(bundle.Profile, ranked, history, message)

	stream, err := e.provider.Stream(ctx, messages)
	if err != nil {
		log.Printf("[chat] provider %s unavailable, using content fallback: %v", e.provider.Name(), err)
		return textStream(fallbackAnswer(bundle.Profile, ranked))
	}
	return stream
}

// textStream wraps a fixed reply in the streaming shape.
func textStream(text string) <-chan llm.Chunk {
	ch := make(chan llm.Chunk, 1)
	ch <- llm.Chunk{Text: text}
	close(ch)
	return ch
}

// fallbackAnswer builds a deterministic non-model reply from ranked content,
// used when no provider invocation could start.
func fallbackAnswer(profile types.Profile, ranked ranking.Ranked) string {
	var b strings.Builder
	b.WriteString("I can't reach my language model right now, but here's what I can tell you")
	if profile.Name != "" {
		b.WriteString(" about " + profile.Name)
	}
	b.WriteString(":\n\n")

	if profile.Headline != "" {
		b.WriteString(profile.Headline + ".\n")
	}
	if len(ranked.Skills) > 0 {
		var names []string
		for _, c := range ranked.Skills {
			names = append(names, c.Title+" ("+strings.Join(c.Skills, ", ")+")")
		}
		b.WriteString("Skills: " + strings.Join(names, "; ") + ".\n")
	}
	if len(ranked.Projects) > 0 {
		b.WriteString("Selected projects:\n")
		for _, p := range ranked.Projects {
			b.WriteString("- " + p.Title + ": " + p.Description + "\n")
		}
	}
	if profile.Email != "" {
		b.WriteString("\nYou can reach out directly at " + profile.Email + ".")
	}
	return b.String()
}
