package router

import (
	"context"
	"strings"
	"time"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router/builder"
)

// Route classifies text and builds validated arguments for the chosen tool.
// Every failure is a *model.RoutingError.
func (e *Engine) Route(ctx context.Context, text string) (model.ToolRequest, error) {
	start := time.Now()

	if e.cache != nil {
		if entry, ok := e.cache.Get(text); ok {
			e.metrics.cacheHit()
			req, err := entry.unpack()
			e.metrics.observe(req, err, time.Since(start))
			return req, err
		}
	}

	req, rerr := e.route(ctx, text)
	if e.cache != nil {
		e.cache.Add(text, cacheEntry{req: req, err: rerr})
	}

	if rerr != nil {
		e.l.Infof(ctx, "%s: rejected %s: %s", LogPrefixRoute, rerr.Kind, rerr.Message)
		e.metrics.observe(req, rerr, time.Since(start))
		// Hand out a copy; the cached entry stays untouched.
		return cacheEntry{err: rerr}.unpack()
	}

	e.metrics.observe(req, nil, time.Since(start))
	return cacheEntry{req: req}.unpack()
}

func (e *Engine) route(ctx context.Context, text string) (model.ToolRequest, *model.RoutingError) {
	if err := e.guard.Check(text); err != nil {
		return model.ToolRequest{}, asRoutingError(err)
	}

	m := e.classifier.Match(text)
	e.l.Debugf(ctx, "%s: tool=%s tier=%s pattern=%q", LogPrefixRoute, m.Tool, m.Tier, m.Pattern)

	tool := m.Tool
	if tool == model.ToolUnrecognized {
		return model.ToolRequest{}, &model.RoutingError{
			Kind:    model.KindClassificationFailure,
			Message: builder.MsgUnrecognized,
		}
	}

	args, err := e.builder.Build(tool, text)
	if err != nil {
		return model.ToolRequest{}, asRoutingError(err)
	}
	if err := builder.Validate(args); err != nil {
		return model.ToolRequest{}, asRoutingError(err)
	}

	return model.ToolRequest{Tool: tool, Args: args}, nil
}

// Analyze runs every stage independently and reports what each one saw.
// Guards are evaluated even when disabled so the trace shows what they would do.
func (e *Engine) Analyze(ctx context.Context, text string) Analysis {
	a := Analysis{
		Text:           text,
		GuardsEnabled:  e.guard.Enabled(),
		Classification: e.classifier.Match(text),
		Slots:          e.slots(text),
	}

	if err := e.guard.CheckDomain(text); err != nil {
		a.GuardError = asRoutingError(err)
	} else if err := e.guard.CheckUnsupportedSyntax(text); err != nil {
		a.GuardError = asRoutingError(err)
	}

	req, rerr := e.route(ctx, text)
	if rerr != nil {
		a.Error = rerr
	} else {
		a.Request = &req
	}

	e.l.Debugf(ctx, "%s: tool=%s tier=%s slots=%d", LogPrefixAnalyze, a.Classification.Tool, a.Classification.Tier, len(a.Slots))
	return a
}

// slots collects every extractor's output, present values only.
func (e *Engine) slots(text string) model.Args {
	x := e.extractor
	out := model.Args{}

	strs := map[string]interface{ Get() (string, bool) }{
		model.ArgOUName:          x.OperatingUnit(text),
		model.ArgCountry:         x.Country(text),
		model.ArgProductListCsv:  x.ProductList(text),
		model.ArgTimeFrame:       x.TimeFrame(text),
		model.ArgTopic:           x.Topic(text),
		model.ArgRegion:          x.Region(text),
		model.ArgExpertise:       x.Expertise(text),
		model.ArgOpportunityType: x.OpportunityType(text),
		model.ArgSegment:         x.Segment(text),
		model.ArgProduct:         x.Product(text),
	}
	for k, v := range strs {
		if s, ok := v.Get(); ok {
			out[k] = s
		}
	}
	if n, ok := x.MinStage(text).Get(); ok {
		out[model.ArgMinStage] = n
	}
	if n, ok := x.Limit(text).Get(); ok {
		out[model.ArgLimitN] = n
	}
	if excluded := x.ExcludedProducts(text); len(excluded) > 0 {
		out[model.ArgExcludeProducts] = strings.Join(excluded, ",")
	}
	out[model.ArgSource] = x.Source(text)
	return out
}

func asRoutingError(err error) *model.RoutingError {
	if re, ok := model.AsRoutingError(err); ok {
		return re
	}
	return &model.RoutingError{Kind: model.KindClassificationFailure, Message: err.Error()}
}
