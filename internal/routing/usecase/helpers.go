package usecase

import (
	"context"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/routing"
	"crm-intent-router/pkg/log"

	"github.com/google/uuid"
)

// actionInputs maps a tool request onto the CRM action inputs.
// Both open pipe tools share one action and need its field names; other tools pass through.
func actionInputs(ctx context.Context, text string, req model.ToolRequest) map[string]any {
	args := req.Args
	in := map[string]any{routing.InputNaturalLanguageQuery: text}

	switch req.Tool {
	case model.ToolOpenPipeAnalyze:
		in[routing.InputOUName] = args[model.ArgOUName]
		in[routing.InputLimitN] = args[model.ArgLimitN]
		in[routing.InputCorrelationID] = correlationID(ctx)
		copyIfSet(in, routing.InputCountry, args, model.ArgCountry)
		copyIfSet(in, routing.InputTimeFrame, args, model.ArgTimeFrame)
		copyIfSet(in, routing.InputMinStage, args, model.ArgMinStage)
		copyIfSet(in, routing.InputProductListCsv, args, model.ArgProductListCsv)

	case model.ToolOpenPipeNegative:
		in[routing.InputOUName] = args[model.ArgOUName]
		in[routing.InputExcludeProductListCsv] = stringOr(args[model.ArgExcludeProducts], "")
		in[routing.InputNegativeIntent] = true
		in[routing.InputRequireNoProductMatch] = true
		in[routing.InputLimitN] = args[model.ArgLimitN]
		in[routing.InputCorrelationID] = stringOr(args[model.ArgCorrelationID], correlationID(ctx))
		copyIfSet(in, routing.InputCountry, args, model.ArgCountry)

	default:
		for k, v := range args {
			in[k] = v
		}
	}

	return in
}

// correlationID returns the request ID, or a fresh UUID outside a request.
func correlationID(ctx context.Context) string {
	if id := log.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

func copyIfSet(dst map[string]any, dstKey string, src model.Args, srcKey string) {
	if v, ok := src[srcKey]; ok {
		dst[dstKey] = v
	}
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
