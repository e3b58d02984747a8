package router

import (
	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router/classifier"
	"crm-intent-router/internal/router/rules"
)

// Config configures an Engine.
type Config struct {
	// Rules defaults to the embedded rule set when nil.
	Rules *rules.Set
	// CacheSize bounds the memo of routed utterances. Zero disables it.
	CacheSize int
	// DisableGuards turns the domain and syntax guards off even if the rule set enables them.
	DisableGuards bool
	// Metrics may be nil.
	Metrics *Metrics
}

// Analysis is a full trace of one routing call.
type Analysis struct {
	Text           string              `json:"text"`
	GuardsEnabled  bool                `json:"guards_enabled"`
	GuardError     *model.RoutingError `json:"guard_error,omitempty"`
	Classification classifier.Match    `json:"classification"`
	Slots          model.Args          `json:"slots"`
	Request        *model.ToolRequest  `json:"request,omitempty"`
	Error          *model.RoutingError `json:"error,omitempty"`
}

type cacheEntry struct {
	req model.ToolRequest
	err *model.RoutingError
}

func (c cacheEntry) unpack() (model.ToolRequest, error) {
	if c.err != nil {
		e := *c.err
		return model.ToolRequest{}, &e
	}
	return model.ToolRequest{Tool: c.req.Tool, Args: c.req.Args.Clone()}, nil
}
