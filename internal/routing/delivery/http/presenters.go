package http

import (
	"encoding/json"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router"
	"crm-intent-router/internal/routing"
)

// --- Request DTOs ---

type routeReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r routeReq) toInput() routing.RouteInput {
	return routing.RouteInput{Text: r.Text}
}

// ---

type analyzeReq struct {
	Text   string `json:"text"    binding:"required,max=2000"`
	DryRun *bool  `json:"dry_run"`
}

func (r analyzeReq) toInput() routing.AnalyzeInput {
	return routing.AnalyzeInput{Text: r.Text, DryRun: r.DryRun}
}

// --- Response DTOs ---

type routeResp struct {
	Tool model.Tool `json:"tool"`
	Args model.Args `json:"args"`
}

func (h *handler) newRouteResp(out routing.RouteOutput) routeResp {
	return routeResp{Tool: out.Request.Tool, Args: out.Request.Args}
}

type analyzeResp struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	DryRun     bool            `json:"dry_run"`
	Tool       model.Tool      `json:"tool"`
	Args       model.Args      `json:"args"`
	Action     string          `json:"action"`
	Inputs     map[string]any  `json:"inputs"`
	Note       string          `json:"note,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	Result     json.RawMessage `json:"result,omitempty" swaggertype:"object"`
}

func (h *handler) newAnalyzeResp(out routing.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Status:     out.Status,
		Message:    out.Message,
		DryRun:     out.DryRun,
		Tool:       out.Request.Tool,
		Args:       out.Request.Args,
		Action:     out.Action,
		Inputs:     out.Inputs,
		Note:       out.Note,
		StatusCode: out.StatusCode,
		Result:     out.Payload,
	}
}

type toolsResp struct {
	Tools         []model.Tool `json:"tools"`
	DryRun        bool         `json:"dry_run"`
	CRMConfigured bool         `json:"crm_configured"`
}

func (h *handler) newToolsResp(out routing.ToolsOutput) toolsResp {
	return toolsResp{
		Tools:         out.Tools,
		DryRun:        out.DryRun,
		CRMConfigured: out.CRMConfigured,
	}
}

type explainResp = router.Analysis

// errorDetail is the errors payload of a rejected utterance.
type errorDetail struct {
	Kind   model.ErrorKind `json:"kind"`
	Field  string          `json:"field,omitempty"`
	Reason string          `json:"reason,omitempty"`
}
