package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/soruj/portfolio-assistant/internal/types"
)

// Defaults for the local self-hosted engine.
const (
	DefaultOllamaURL   = "http://127.0.0.1:11434"
	DefaultOllamaModel = "llama3"
)

// OllamaClient implements Provider against a local Ollama server's chat API.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaClient creates a provider for the local inference engine. No
// connectivity check is performed here; unreachability surfaces as a
// ProviderError on invocation, which the controller treats as a tier failure.
func NewOllamaClient(baseURL, model string) *OllamaClient {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	return &OllamaClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{},
	}
}

// Name identifies the provider in logs.
func (c *OllamaClient) Name() string { return "ollama" }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
	Error   string        `json:"error,omitempty"`
}

// Invoke runs a blocking completion against /api/chat.
func (c *OllamaClient) Invoke(ctx context.Context, messages []types.PromptMessage) (string, error) {
	resp, err := c.send(ctx, messages, false)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if out.Error != "" {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("engine error: %s", out.Error)}
	}
	return out.Message.Content, nil
}

// Stream runs a streaming completion, decoding Ollama's newline-delimited
// JSON chunks and forwarding the text of each.
func (c *OllamaClient) Stream(ctx context.Context, messages []types.PromptMessage) (<-chan Chunk, error) {
	resp, err := c.send(ctx, messages, true)
	if err != nil {
		return nil, &ProviderError{Provider: c.Name(), Err: err}
	}

	ch := make(chan Chunk)
	go func() {
		defer close(ch)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			var out ollamaResponse
			if err := json.Unmarshal(scanner.Bytes(), &out); err != nil {
				c.emit(ctx, ch, Chunk{Err: &ProviderError{Provider: c.Name(), Err: fmt.Errorf("bad stream chunk: %w", err)}})
				return
			}
			if out.Error != "" {
				c.emit(ctx, ch, Chunk{Err: &ProviderError{Provider: c.Name(), Err: fmt.Errorf("engine error: %s", out.Error)}})
				return
			}
			if out.Message.Content != "" {
				if !c.emit(ctx, ch, Chunk{Text: out.Message.Content}) {
					return
				}
			}
			if out.Done {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.emit(ctx, ch, Chunk{Err: &ProviderError{Provider: c.Name(), Err: err}})
		}
	}()
	return ch, nil
}

func (c *OllamaClient) emit(ctx context.Context, ch chan<- Chunk, chunk Chunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *OllamaClient) send(ctx context.Context, messages []types.PromptMessage, stream bool) (*http.Response, error) {
	reqBody := ollamaRequest{Model: c.model, Stream: stream}
	for _, m := range messages {
		reqBody.Messages = append(reqBody.Messages, ollamaMessage{Role: m.Role, Content: m.Content})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("engine returned status %d", resp.StatusCode)
	}
	return resp, nil
}
