package usecase

import (
	"context"
	"fmt"

	"crm-intent-router/internal/routing"
)

// Analyze routes the utterance and hands the request to the CRM action for its tool.
// On a dry run the would-be call is returned instead.
func (uc *implUseCase) Analyze(ctx context.Context, input routing.AnalyzeInput) (routing.AnalyzeOutput, error) {
	routed, err := uc.Route(ctx, routing.RouteInput{Text: input.Text})
	if err != nil {
		return routing.AnalyzeOutput{}, err
	}

	dryRun := uc.dryRun
	if input.DryRun != nil {
		dryRun = *input.DryRun
	}

	req := routed.Request
	out := routing.AnalyzeOutput{
		Status:  routing.StatusSuccess,
		DryRun:  dryRun,
		Request: req,
		Action:  uc.actions[req.Tool],
		Inputs:  actionInputs(ctx, input.Text, req),
	}

	if dryRun {
		out.Message = fmt.Sprintf("Dry run: routed to %s", req.Tool)
		out.Note = routing.DryRunNote
		return out, nil
	}

	if uc.crm == nil {
		return routing.AnalyzeOutput{}, routing.ErrCRMNotConfigured
	}

	res, err := uc.crm.Invoke(ctx, out.Action, out.Inputs)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze crm.Invoke %q: %v", out.Action, err)
		return routing.AnalyzeOutput{}, fmt.Errorf("%w: %w", routing.ErrDispatchFailed, err)
	}

	uc.l.Infof(ctx, "uc.Analyze: %s dispatched to %q (%d)", req.Tool, out.Action, res.StatusCode)
	out.Message = fmt.Sprintf("Called %s", out.Action)
	out.StatusCode = res.StatusCode
	out.Payload = res.Payload
	return out, nil
}
