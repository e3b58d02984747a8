package model

// Tool is the closed set of backend operations an utterance can be routed to.
type Tool string

const (
	ToolOpenPipeAnalyze  Tool = "open_pipe_analyze"
	ToolOpenPipeNegative Tool = "open_pipe_negative"
	ToolKpiAnalyze       Tool = "kpi_analyze"
	ToolContentSearch    Tool = "content_search"
	ToolSmeSearch        Tool = "sme_search"
	ToolWorkflow         Tool = "workflow"
	ToolFuturePipeline   Tool = "future_pipeline"

	// ToolUnrecognized is the sentinel for utterances no rule claims.
	ToolUnrecognized Tool = "unrecognized"
)

// Tools lists every routable tool (the sentinel excluded).
var Tools = []Tool{
	ToolOpenPipeAnalyze,
	ToolOpenPipeNegative,
	ToolKpiAnalyze,
	ToolContentSearch,
	ToolSmeSearch,
	ToolWorkflow,
	ToolFuturePipeline,
}

// ParseTool maps a wire name to a Tool. Unknown names return false.
func ParseTool(name string) (Tool, bool) {
	if name == string(ToolUnrecognized) {
		return ToolUnrecognized, true
	}
	for _, t := range Tools {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

func (t Tool) String() string { return string(t) }

// Args is the tool argument map handed to the downstream collaborator.
// Values are string, int or bool. Keys are the downstream field names.
type Args map[string]any

// Clone returns a shallow copy of the map; values are immutable scalars.
func (a Args) Clone() Args {
	if a == nil {
		return nil
	}
	out := make(Args, len(a))
	for k, v := range a {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		out[k] = v
	}
	return out
}

// ToolRequest is the structured result of routing one utterance.
type ToolRequest struct {
	Tool Tool `json:"tool"`
	Args Args `json:"args"`
}

// Downstream argument names. These are the compatibility surface with the
// CRM actions and must not change.
const (
	ArgOUName          = "ouName"
	ArgCountry         = "country"
	ArgMinStage        = "minStage"
	ArgProductListCsv  = "productListCsv"
	ArgTimeFrame       = "timeFrame"
	ArgLimitN          = "limitN"
	ArgLimit           = "limit"
	ArgExcludeProducts = "excludeProducts"
	ArgNegativeIntent  = "negativeIntent"
	ArgCorrelationID   = "correlationId"
	ArgTopic           = "topic"
	ArgSource          = "source"
	ArgRegion          = "region"
	ArgExpertise       = "expertise"
	ArgProcess         = "process"
	ArgContext         = "context"
	ArgOpportunityType = "opportunityType"
	ArgSegment         = "segment"
	ArgProduct         = "product"
)
