package routing

import (
	"context"

	"crm-intent-router/internal/router"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Route classifies an utterance and returns the tool request.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
	// Analyze routes an utterance and dispatches it to the CRM, or describes the call on a dry run.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	// Explain returns the stage-by-stage trace for an utterance.
	Explain(ctx context.Context, input RouteInput) (router.Analysis, error)
	// Tools lists the supported tools in classification order.
	Tools(ctx context.Context) ToolsOutput
}
