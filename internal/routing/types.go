package routing

import (
	"encoding/json"

	"crm-intent-router/internal/model"
)

// --- UseCase Config ---

// Config controls how routed requests reach the CRM.
type Config struct {
	// DryRun describes calls instead of making them. Overridable per request.
	DryRun bool
	// Actions overrides the CRM action name per tool.
	Actions map[model.Tool]string
}

// --- UseCase Inputs ---

type RouteInput struct {
	Text string
}

type AnalyzeInput struct {
	Text string
	// DryRun overrides Config.DryRun when set.
	DryRun *bool
}

// --- UseCase Outputs ---

type RouteOutput struct {
	Request model.ToolRequest
}

// AnalyzeOutput describes one dispatch. Payload is set on live calls only.
type AnalyzeOutput struct {
	Status     string
	Message    string
	Note       string
	DryRun     bool
	Request    model.ToolRequest
	Action     string
	Inputs     map[string]any
	StatusCode int
	Payload    json.RawMessage
}

type ToolsOutput struct {
	Tools         []model.Tool
	DryRun        bool
	CRMConfigured bool
}
