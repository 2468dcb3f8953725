package llm

import "fmt"

// ConfigurationError indicates a required credential or setting is missing.
// It is terminal for the affected provider, not retryable.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Variable)
}

// ProviderError wraps a failed provider invocation with the provider's name.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// parseSnippetLen bounds how much of the raw model output a ParseError carries.
const parseSnippetLen = 120

// ParseError indicates model output could not be coerced into the expected
// JSON shape after all recovery attempts. It carries a snippet of the
// original text for diagnostics.
type ParseError struct {
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse model output as JSON (output starts with %q)", e.Snippet)
}

func newParseError(text string) *ParseError {
	snippet := text
	if len(snippet) > parseSnippetLen {
		snippet = snippet[:parseSnippetLen]
	}
	return &ParseError{Snippet: snippet}
}
