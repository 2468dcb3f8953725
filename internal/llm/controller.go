package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/soruj/portfolio-assistant/internal/types"
)

// Controller executes inference against an ordered list of provider tiers,
// advancing to the next tier only when the current one fails. Adding or
// reordering tiers is a wiring change, not a code change.
type Controller struct {
	tiers []Provider
}

// NewController creates a controller over the given tiers, tried in order.
func NewController(tiers ...Provider) *Controller {
	return &Controller{tiers: tiers}
}

// Tiers reports the configured tier names in priority order.
func (c *Controller) Tiers() []string {
	names := make([]string, len(c.tiers))
	for i, t := range c.tiers {
		names[i] = t.Name()
	}
	return names
}

// Invoke tries each tier once, in order, short-circuiting on the first
// success. accept, when non-nil, validates the raw output; a rejection counts
// as a tier failure exactly like an invocation error, so unparsable output
// from one tier falls through to the next. Tiers are never run speculatively
// in parallel, and no tier is retried. When every tier fails the controller
// returns an error; it never fabricates output.
func (c *Controller) Invoke(ctx context.Context, messages []types.PromptMessage, accept func(raw string) error) (string, error) {
	if len(c.tiers) == 0 {
		return "", fmt.Errorf("no inference providers configured")
	}

	var lastErr error
	for _, tier := range c.tiers {
		raw, err := tier.Invoke(ctx, messages)
		if err == nil && accept != nil {
			err = accept(raw)
		}
		if err == nil {
			log.Printf("[llm] tier %s succeeded", tier.Name())
			return raw, nil
		}
		log.Printf("[llm] tier %s failed: %v", tier.Name(), err)
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("all inference providers failed: %w", lastErr)
}
