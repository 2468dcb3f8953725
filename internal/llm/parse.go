package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON recovers a JSON object from raw model output. Providers wrap
// JSON in prose or code fences even when told not to, so recovery is layered:
//
//  1. the trimmed text itself,
//  2. the body of a fenced code block (with or without a language tag),
//  3. the balanced brace-delimited substring starting at the first '{',
//  4. the window from the first '{' to the last '}'.
//
// The first candidate that parses wins. When nothing parses, the result is a
// ParseError carrying a snippet of the original text. ExtractJSON either
// returns a complete JSON object or fails; it never returns a best guess.
func ExtractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	if isJSONObject(trimmed) {
		return trimmed, nil
	}

	if inner := fencedBlock(trimmed); inner != "" {
		if isJSONObject(inner) {
			return inner, nil
		}
	}

	if candidate := balancedBraces(trimmed); candidate != "" {
		if isJSONObject(candidate) {
			return candidate, nil
		}
	}

	first := strings.IndexByte(trimmed, '{')
	last := strings.LastIndexByte(trimmed, '}')
	if first >= 0 && last > first {
		window := trimmed[first : last+1]
		if isJSONObject(window) {
			return window, nil
		}
	}

	return "", newParseError(trimmed)
}

func isJSONObject(s string) bool {
	return strings.HasPrefix(s, "{") && json.Valid([]byte(s))
}

// fencedBlock returns the trimmed body of the first ``` fence, skipping a
// language tag on the opening line. Empty string when there is no complete
// fence.
func fencedBlock(text string) string {
	open := strings.Index(text, "```")
	if open < 0 {
		return ""
	}
	body := text[open+3:]
	// Drop the language tag (e.g. "json") up to the end of the opening line.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(body[:nl])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}") {
			body = body[nl+1:]
		}
	}
	closing := strings.Index(body, "```")
	if closing < 0 {
		return ""
	}
	return strings.TrimSpace(body[:closing])
}

// balancedBraces returns the substring from the first '{' to its matching
// '}', tracking nesting but not string literals; the subsequent JSON parse
// rejects any false positive this produces.
func balancedBraces(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
