package usecase

import (
	"context"
	"strings"

	"crm-intent-router/internal/router"
	"crm-intent-router/internal/routing"
)

// Route classifies the utterance. Routing errors are returned as *model.RoutingError.
func (uc *implUseCase) Route(ctx context.Context, input routing.RouteInput) (routing.RouteOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return routing.RouteOutput{}, routing.ErrEmptyText
	}

	req, err := uc.router.Route(ctx, input.Text)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Route: %v", err)
		return routing.RouteOutput{}, err
	}

	return routing.RouteOutput{Request: req}, nil
}

// Explain traces every routing stage for the utterance.
func (uc *implUseCase) Explain(ctx context.Context, input routing.RouteInput) (router.Analysis, error) {
	if strings.TrimSpace(input.Text) == "" {
		return router.Analysis{}, routing.ErrEmptyText
	}
	return uc.router.Analyze(ctx, input.Text), nil
}

// Tools lists supported tools with the dispatch mode.
func (uc *implUseCase) Tools(ctx context.Context) routing.ToolsOutput {
	return routing.ToolsOutput{
		Tools:         uc.router.Tools(),
		DryRun:        uc.dryRun,
		CRMConfigured: uc.crm != nil,
	}
}
