package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/soruj/portfolio-assistant/internal/types"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient implements Provider for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed provider. A missing API key is a
// ConfigurationError: the caller decides whether that disables a tier or
// short-circuits the whole request.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Variable: "GEMINI_API_KEY"}
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Name identifies the provider in logs.
func (c *GeminiClient) Name() string { return "gemini" }

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Invoke runs a blocking completion.
func (c *GeminiClient) Invoke(ctx context.Context, messages []types.PromptMessage) (string, error) {
	session, last := c.newSession(messages)
	resp, err := session.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}
	text, err := extractText(resp)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}
	return text, nil
}

// Stream runs a streaming completion, forwarding each chunk as it arrives.
func (c *GeminiClient) Stream(ctx context.Context, messages []types.PromptMessage) (<-chan Chunk, error) {
	session, last := c.newSession(messages)
	iter := session.SendMessageStream(ctx, genai.Text(last))

	ch := make(chan Chunk) // unbuffered: a slow consumer backpressures the producer
	go func() {
		defer close(ch)
		for {
			resp, err := iter.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				select {
				case ch <- Chunk{Err: &ProviderError{Provider: c.Name(), Err: err}}:
				case <-ctx.Done():
				}
				return
			}
			text, err := extractText(resp)
			if err != nil {
				continue // e.g. safety-filtered candidate mid-stream
			}
			select {
			case ch <- Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// newSession builds a chat session from an assembled prompt: system messages
// become the system instruction, prior turns become history, and the final
// user message is returned for sending.
func (c *GeminiClient) newSession(messages []types.PromptMessage) (*genai.ChatSession, string) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)

	system, history, last := splitMessages(messages)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	session := model.StartChat()
	for _, turn := range history {
		role := "user"
		if turn.Role == types.RoleAssistant {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}
	return session, last
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
