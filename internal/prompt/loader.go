// Package prompt assembles role-tagged message lists for provider invocation.
// Prompt templates are stored as JSON and embedded at compile time.
package prompt

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed templates.json
var templateFiles embed.FS

var (
	templates     map[string]string
	templatesOnce sync.Once
)

// Get retrieves a template by key, panicking if missing. Templates are
// compiled in, so a missing key is a programming error.
func Get(key string) string {
	templatesOnce.Do(func() {
		data, err := templateFiles.ReadFile("templates.json")
		if err != nil {
			panic(fmt.Sprintf("failed to read templates: %v", err))
		}
		if err := json.Unmarshal(data, &templates); err != nil {
			panic(fmt.Sprintf("failed to parse templates: %v", err))
		}
	})
	tmpl, ok := templates[key]
	if !ok {
		panic(fmt.Sprintf("template key %q not found", key))
	}
	return tmpl
}
