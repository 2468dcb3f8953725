// Package resume implements the structured résumé-generation flow: gather
// portfolio content, rank it, prompt the tiered providers and parse the
// result into a strict payload.
package resume

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/soruj/portfolio-assistant/internal/content"
	"github.com/soruj/portfolio-assistant/internal/llm"
	"github.com/soruj/portfolio-assistant/internal/prompt"
	"github.com/soruj/portfolio-assistant/internal/ranking"
	"github.com/soruj/portfolio-assistant/internal/types"
)

//go:embed schema.json
var schemaFile embed.FS

// contentQuery is the fixed ranking query for résumé generation: there is no
// visitor question to rank against, so the query targets résumé-relevant
// content across all categories.
const contentQuery = "professional experience skills projects achievements summary"

// Generator runs the résumé-generation flow.
type Generator struct {
	store      *content.Store
	controller *llm.Controller
}

// NewGenerator wires the flow over a content store and a provider controller.
func NewGenerator(store *content.Store, controller *llm.Controller) *Generator {
	return &Generator{store: store, controller: controller}
}

// Generate produces a validated ResumePayload or fails. Unparsable output
// from one provider tier counts as a tier failure and falls through to the
// next; when every tier is exhausted the error is terminal. A payload is
// never fabricated from a model failure.
func (g *Generator) Generate(ctx context.Context) (*types.ResumePayload, error) {
	bundle := g.store.Gather(ctx)
	ranked := ranking.Rank(contentQuery, bundle)
	messages := prompt.ResumeMessages(bundle.Profile, ranked)

	var payload *types.ResumePayload
	_, err := g.controller.Invoke(ctx, messages, func(raw string) error {
		p, err := Parse(raw)
		if err != nil {
			return err
		}
		payload = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resume generation failed: %w", err)
	}
	return payload, nil
}

// Parse coerces raw provider output into a ResumePayload: JSON recovery,
// schema validation, then decoding. Either a fully-formed payload or an
// error; nothing in between.
func Parse(raw string) (*types.ResumePayload, error) {
	extracted, err := llm.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	if err := validatePayload(extracted); err != nil {
		return nil, err
	}

	var payload types.ResumePayload
	if err := json.Unmarshal([]byte(extracted), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode resume payload: %w", err)
	}
	return &payload, nil
}

// validatePayload checks the extracted JSON against the embedded payload
// schema. A schema violation is reported with the failing field paths.
func validatePayload(extracted string) error {
	schemaData, err := schemaFile.ReadFile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to read payload schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewStringLoader(extracted),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return fmt.Errorf("resume payload violates schema: %s", strings.Join(problems, "; "))
	}
	return nil
}
