package rules

import (
	"os"
	"path/filepath"
	"testing"

	"crm-intent-router/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
tiers:
  - name: general
    tools:
      - tool: open_pipe_analyze
        patterns: ['\bopen\s+pipe\b']
slots:
  default_source: ACT
  products:
    - { pattern: '(?i)\bdata\s+cloud\b', value: 'Data Cloud' }
defaults:
  time_frame: CURRENT
  limit: 10
  workflow_process: general
`

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	require.NotNil(t, s)

	names := make([]string, 0, len(s.Tiers))
	for _, tier := range s.Tiers {
		names = append(names, tier.Name)
	}
	assert.Equal(t, []string{"negative", "content", "generation", "general"}, names)

	general := s.Tiers[3]
	var tools []model.Tool
	for _, tr := range general.Tools {
		tools = append(tools, tr.Tool)
	}
	assert.Equal(t, []model.Tool{
		model.ToolKpiAnalyze,
		model.ToolSmeSearch,
		model.ToolWorkflow,
		model.ToolOpenPipeAnalyze,
	}, tools)

	assert.True(t, s.Guards.Enabled)
	assert.Equal(t, "CURRENT", s.Defaults.TimeFrame)
	assert.Equal(t, 10, s.Defaults.Limit)
	assert.Equal(t, "general", s.Defaults.WorkflowProcess)
	assert.Equal(t, "ACT", s.Slots.DefaultSource)
	assert.Equal(t, 50, s.Slots.CountryMaxLen)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestDefault_EveryToolRoutable(t *testing.T) {
	s := MustDefault()
	seen := map[model.Tool]bool{}
	for _, tier := range s.Tiers {
		for _, tr := range tier.Tools {
			assert.NotEmpty(t, tr.Patterns, "tool %s has no patterns", tr.Tool)
			seen[tr.Tool] = true
		}
	}
	for _, tool := range model.Tools {
		assert.True(t, seen[tool], "tool %s missing from tiers", tool)
	}
}

func TestParse_Minimal(t *testing.T) {
	s, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)
	assert.True(t, s.Guards.Enabled, "guards default to enabled")
	assert.Equal(t, 50, s.Slots.CountryMaxLen)
}

func TestParse_Errors(t *testing.T) {
	tcs := map[string]struct {
		yaml    string
		wantErr error
	}{
		"no tiers": {
			yaml:    "defaults: {time_frame: CURRENT, limit: 10, workflow_process: general}\nslots: {default_source: ACT}",
			wantErr: ErrNoTiers,
		},
		"unknown tool": {
			yaml:    "tiers: [{name: t, tools: [{tool: weather, patterns: ['x']}]}]",
			wantErr: ErrUnknownTool,
		},
		"sentinel tool": {
			yaml:    "tiers: [{name: t, tools: [{tool: unrecognized, patterns: ['x']}]}]",
			wantErr: ErrUnknownTool,
		},
		"duplicate tool": {
			yaml:    "tiers: [{name: a, tools: [{tool: workflow, patterns: ['x']}]}, {name: b, tools: [{tool: workflow, patterns: ['y']}]}]",
			wantErr: ErrDuplicateTool,
		},
		"empty pattern": {
			yaml:    "tiers: [{name: t, tools: [{tool: workflow, patterns: ['  ']}]}]",
			wantErr: ErrEmptyPattern,
		},
		"bad default limit": {
			yaml:    "tiers: [{name: t, tools: [{tool: workflow, patterns: ['x']}]}]\nslots: {default_source: ACT}\ndefaults: {time_frame: CURRENT, limit: 0, workflow_process: general}",
			wantErr: ErrInvalidDefault,
		},
		"unknown pair product": {
			yaml:    "tiers: [{name: t, tools: [{tool: workflow, patterns: ['x']}]}]\nslots: {default_source: ACT, product_pairs: [[Data Cloud, Nope]]}\ndefaults: {time_frame: CURRENT, limit: 10, workflow_process: general}",
			wantErr: ErrUnknownProduct,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParse_MissingCapture(t *testing.T) {
	data := `
tiers: [{name: t, tools: [{tool: workflow, patterns: ['x']}]}]
slots:
  default_source: ACT
  limit_patterns: ['top\s+\d+']
defaults: {time_frame: CURRENT, limit: 10, workflow_process: general}
`
	_, err := Parse([]byte(data))
	assert.ErrorIs(t, err, ErrMissingCapture)
}

func TestParse_InvalidRegex(t *testing.T) {
	data := `
tiers: [{name: t, tools: [{tool: workflow, patterns: ['(unclosed']}]}]
slots: {default_source: ACT}
defaults: {time_frame: CURRENT, limit: 10, workflow_process: general}
`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tier t/workflow")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML+"guards:\n  enabled: false\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.Guards.Enabled)
	require.Len(t, s.Tiers, 1)
	assert.Equal(t, model.ToolOpenPipeAnalyze, s.Tiers[0].Tools[0].Tool)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
