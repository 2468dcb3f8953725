package prompt

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no braces",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "single pair",
			input:    "call f({x})",
			expected: "call f({{x}})",
		},
		{
			name:     "json snippet",
			input:    `{"key": "value"}`,
			expected: `{{"key": "value"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.expected {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRender_Placeholders(t *testing.T) {
	got := Render("Hello {name}, welcome to {place}.", map[string]string{
		"name":  "Ada",
		"place": "the site",
	})
	want := "Hello Ada, welcome to the site."
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_UnknownPlaceholderLeftIntact(t *testing.T) {
	got := Render("keep {unknown} as is", nil)
	if got != "keep {unknown} as is" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_CollapsesDoubledBraces(t *testing.T) {
	got := Render(`example: {{"a": 1}}`, nil)
	want := `example: {"a": 1}`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Literal braces in injected content must survive the escape/render round
// trip unchanged, even when the content looks like a template directive.
func TestEscapeRenderRoundTrip(t *testing.T) {
	inputs := []string{
		`{"professionalSummary": "uses {braces}"}`,
		"{name}",
		"{{already doubled}}",
		"mixed { open and } close",
		"no braces at all",
	}

	for _, input := range inputs {
		if got := Render(Escape(input), nil); got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}
}

// Escaped content substituted through a placeholder must also round-trip:
// the value's doubled braces collapse back to literals exactly once.
func TestRender_EscapedValueThroughPlaceholder(t *testing.T) {
	content := `visitor wrote {skills} and {"x": 1}`
	got := Render("Context: {body}", map[string]string{"body": Escape(content)})
	want := "Context: " + content
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
