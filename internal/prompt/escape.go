package prompt

import "strings"

// Escape doubles the template-control braces in text so that user-supplied or
// retrieved content can never be interpreted as template directives. Render
// collapses the doubled braces back, so literal braces round-trip intact.
func Escape(text string) string {
	if !strings.ContainsAny(text, "{}") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch r {
		case '{':
			b.WriteString("{{")
		case '}':
			b.WriteString("}}")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Render resolves a template string: "{{" and "}}" become literal braces, and
// "{name}" is replaced with data[name]. Values are rendered through the same
// brace rules, which is why every dynamic value must be passed through Escape
// first. A placeholder with no entry in data is left untouched.
func Render(tmpl string, data map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				b.WriteByte('{')
				i++
				continue
			}
			name := tmpl[i+1 : i+end]
			if value, ok := data[name]; ok {
				b.WriteString(Render(value, nil))
			} else {
				b.WriteString(tmpl[i : i+end+1])
			}
			i += end + 1
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
