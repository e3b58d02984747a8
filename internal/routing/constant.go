package routing

import "crm-intent-router/internal/model"

const (
	StatusSuccess = "success"

	// DefaultPipeAction serves both open pipe tools.
	DefaultPipeAction = "ANAGENT Open Pipe Analysis V3 - MCP Enhanced"

	DryRunNote = "This is a dry run. Set DRY_RUN=false to call the CRM."
)

// Inputs sent to the CRM action. These names belong to the CRM and must not change.
const (
	InputNaturalLanguageQuery  = "naturalLanguageQuery"
	InputOUName                = "ouName"
	InputLimitN                = "limitN"
	InputCorrelationID         = "correlationId"
	InputCountry               = "country"
	InputTimeFrame             = "timeFrame"
	InputMinStage              = "minStage"
	InputProductListCsv        = "productListCsv"
	InputExcludeProductListCsv = "excludeProductListCsv"
	InputNegativeIntent        = "negativeIntent"
	InputRequireNoProductMatch = "requireNoProductMatch"
)

// DefaultActions maps every tool to its CRM action.
var DefaultActions = map[model.Tool]string{
	model.ToolOpenPipeAnalyze:  DefaultPipeAction,
	model.ToolOpenPipeNegative: DefaultPipeAction,
	model.ToolKpiAnalyze:       "ANAGENT KPI Analyze",
	model.ToolContentSearch:    "ANAGENT Content Search",
	model.ToolSmeSearch:        "ANAGENT SME Search",
	model.ToolWorkflow:         "ANAGENT Workflow",
	model.ToolFuturePipeline:   "ANAGENT Future Pipeline",
}
