package router

import (
	"context"
	"fmt"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router/builder"
	"crm-intent-router/internal/router/classifier"
	"crm-intent-router/internal/router/guard"
	"crm-intent-router/internal/router/rules"
	"crm-intent-router/internal/router/slot"
	"crm-intent-router/pkg/log"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Router turns an utterance into a tool request or a routing error.
type Router interface {
	Route(ctx context.Context, text string) (model.ToolRequest, error)
	Analyze(ctx context.Context, text string) Analysis
	Tools() []model.Tool
}

// Engine composes guards, classifier, builder and validation.
// It is safe for concurrent use.
type Engine struct {
	l          log.Logger
	guard      *guard.Guard
	classifier *classifier.Classifier
	extractor  *slot.Extractor
	builder    *builder.Builder
	cache      *lru.Cache[string, cacheEntry]
	metrics    *Metrics
}

// Ensure Engine implements Router interface
var _ Router = (*Engine)(nil)

// New creates a new Engine.
func New(l log.Logger, cfg Config) (*Engine, error) {
	set := cfg.Rules
	if set == nil {
		var err error
		set, err = rules.Default()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogPrefixNew, err)
		}
	}

	guards := set.Guards
	if cfg.DisableGuards {
		guards.Enabled = false
	}

	x := slot.New(set.Slots)
	e := &Engine{
		l:          l,
		guard:      guard.New(guards),
		classifier: classifier.New(set.Tiers),
		extractor:  x,
		builder:    builder.New(x, set.Defaults),
		metrics:    cfg.Metrics,
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, cacheEntry](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("%s: create cache: %w", LogPrefixNew, err)
		}
		e.cache = cache
	}

	return e, nil
}

// GuardsEnabled reports whether guards run on Route.
func (e *Engine) GuardsEnabled() bool {
	return e.guard.Enabled()
}

// Tools lists routable tools in classification order.
func (e *Engine) Tools() []model.Tool {
	return e.classifier.Tools()
}
