package builder

import (
	"strings"
	"testing"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router/rules"
	"crm-intent-router/internal/router/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	set := rules.MustDefault()
	return New(slot.New(set.Slots), set.Defaults)
}

func TestBuild_OpenPipe(t *testing.T) {
	b := newTestBuilder(t)

	args, err := b.Build(model.ToolOpenPipeAnalyze,
		"Show me all the products that passed stage 4 within AMER ACC for open pipe.")
	require.NoError(t, err)
	assert.Equal(t, model.Args{
		model.ArgOUName:    "AMER ACC",
		model.ArgTimeFrame: "CURRENT",
		model.ArgLimitN:    10,
		model.ArgMinStage:  4,
	}, args)

	args, err = b.Build(model.ToolOpenPipeAnalyze,
		"Open pipe for EMEA ENTR in Germany, top 5, last quarter filter to Data Cloud and Sales Cloud only")
	require.NoError(t, err)
	assert.Equal(t, model.Args{
		model.ArgOUName:         "EMEA ENTR",
		model.ArgTimeFrame:      "PREVIOUS",
		model.ArgCountry:        "Germany",
		model.ArgLimitN:         5,
		model.ArgProductListCsv: "Data Cloud, Sales Cloud",
	}, args)
}

func TestBuild_MissingOU(t *testing.T) {
	b := newTestBuilder(t)

	for _, tool := range []model.Tool{
		model.ToolOpenPipeAnalyze,
		model.ToolOpenPipeNegative,
		model.ToolKpiAnalyze,
		model.ToolFuturePipeline,
	} {
		_, err := b.Build(tool, "Show me open pipe")
		require.Error(t, err, tool)
		re, ok := model.AsRoutingError(err)
		require.True(t, ok)
		assert.Equal(t, model.KindMissingRequiredSlot, re.Kind)
		assert.Equal(t, model.ArgOUName, re.Field)
		assert.Contains(t, re.Message, "AMER ACC")
	}
}

func TestBuild_OpenPipeNegative(t *testing.T) {
	b := newTestBuilder(t)
	text := "Who don't have Data Cloud in AMER ACC"

	args, err := b.Build(model.ToolOpenPipeNegative, text)
	require.NoError(t, err)

	id, ok := args[model.ArgCorrelationID].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(id, "negative-"))
	delete(args, model.ArgCorrelationID)

	assert.Equal(t, model.Args{
		model.ArgOUName:          "AMER ACC",
		model.ArgTimeFrame:       "CURRENT",
		model.ArgLimitN:          10,
		model.ArgExcludeProducts: "Data Cloud",
		model.ArgNegativeIntent:  true,
	}, args)
	assert.NotContains(t, args, model.ArgProductListCsv)

	again, err := b.Build(model.ToolOpenPipeNegative, text)
	require.NoError(t, err)
	assert.Equal(t, id, again[model.ArgCorrelationID], "correlation id is stable per utterance")

	other, err := b.Build(model.ToolOpenPipeNegative, "Who don't have Slack in AMER ACC")
	require.NoError(t, err)
	assert.NotEqual(t, id, other[model.ArgCorrelationID])
}

func TestBuild_OpenPipeNegative_MultipleProducts(t *testing.T) {
	b := newTestBuilder(t)

	args, err := b.Build(model.ToolOpenPipeNegative, "accounts without Tableau or Data Cloud in UKI")
	require.NoError(t, err)
	assert.Equal(t, "Data Cloud,Tableau", args[model.ArgExcludeProducts])

	args, err = b.Build(model.ToolOpenPipeNegative, "Who doesn't have any products in UKI")
	require.NoError(t, err)
	assert.NotContains(t, args, model.ArgExcludeProducts)
}

func TestBuild_KPI(t *testing.T) {
	b := newTestBuilder(t)

	args, err := b.Build(model.ToolKpiAnalyze, "Show KPIs for EMEA ENTR in France")
	require.NoError(t, err)
	assert.Equal(t, model.Args{
		model.ArgOUName:    "EMEA ENTR",
		model.ArgTimeFrame: "CURRENT",
		model.ArgCountry:   "France",
	}, args)
}

func TestBuild_FuturePipeline(t *testing.T) {
	b := newTestBuilder(t)

	args, err := b.Build(model.ToolFuturePipeline,
		"Future pipeline for AMER ACC upsell enterprise Data Cloud top 15")
	require.NoError(t, err)
	assert.Equal(t, model.Args{
		model.ArgOUName:          "AMER ACC",
		model.ArgTimeFrame:       "CURRENT",
		model.ArgOpportunityType: "upsell",
		model.ArgSegment:         "enterprise",
		model.ArgProduct:         "Data Cloud",
		model.ArgLimit:           15,
	}, args)

	args, err = b.Build(model.ToolFuturePipeline, "Which products have the highest amount of opportunities in UKI")
	require.NoError(t, err)
	assert.Equal(t, model.Args{
		model.ArgOUName:    "UKI",
		model.ArgTimeFrame: "CURRENT",
	}, args, "absent optional slots are omitted")
}

func TestBuild_ContentSearch(t *testing.T) {
	b := newTestBuilder(t)

	args, err := b.Build(model.ToolContentSearch, "Show me ACT courses related to Data Cloud")
	require.NoError(t, err)
	assert.Equal(t, model.Args{model.ArgTopic: "Data Cloud", model.ArgSource: "ACT"}, args)

	_, err = b.Build(model.ToolContentSearch, "Show me ACT courses")
	re, ok := model.AsRoutingError(err)
	require.True(t, ok)
	assert.Equal(t, model.KindMissingRequiredSlot, re.Kind)
	assert.Equal(t, model.ArgTopic, re.Field)
	assert.Equal(t, MsgMissingTopic, re.Message)
}

func TestBuild_SmeSearch(t *testing.T) {
	b := newTestBuilder(t)

	args, err := b.Build(model.ToolSmeSearch, "Find an SME for Data Cloud in EMEA")
	require.NoError(t, err)
	assert.Equal(t, model.Args{model.ArgRegion: "EMEA", model.ArgExpertise: "Data Cloud"}, args)

	args, err = b.Build(model.ToolSmeSearch, "Find an expert in EMEA")
	require.NoError(t, err)
	assert.Equal(t, model.Args{model.ArgRegion: "EMEA"}, args)

	_, err = b.Build(model.ToolSmeSearch, "Find a subject matter expert")
	assert.True(t, model.IsKind(err, model.KindMissingRequiredSlot))
}

func TestBuild_Workflow(t *testing.T) {
	b := newTestBuilder(t)
	text := "How to submit a deal registration process"

	args, err := b.Build(model.ToolWorkflow, text)
	require.NoError(t, err)
	assert.Equal(t, model.Args{model.ArgProcess: "general", model.ArgContext: text}, args)
}

func TestBuild_Unrecognized(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.Build(model.ToolUnrecognized, "anything")
	assert.True(t, model.IsKind(err, model.KindClassificationFailure))
}
