package builder

import (
	"math"
	"testing"

	"crm-intent-router/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		args      model.Args
		wantField string
	}{
		"stage 0 accepted":      {args: model.Args{model.ArgMinStage: 0}},
		"stage 8 accepted":      {args: model.Args{model.ArgMinStage: 8}},
		"stage 9 rejected":      {args: model.Args{model.ArgMinStage: 9}, wantField: model.ArgMinStage},
		"stage negative":        {args: model.Args{model.ArgMinStage: -1}, wantField: model.ArgMinStage},
		"limitN 1 accepted":     {args: model.Args{model.ArgLimitN: 1}},
		"limitN 1000 accepted":  {args: model.Args{model.ArgLimitN: 1000}},
		"limitN 0 rejected":     {args: model.Args{model.ArgLimitN: 0}, wantField: model.ArgLimitN},
		"limitN 1001 rejected":  {args: model.Args{model.ArgLimitN: 1001}, wantField: model.ArgLimitN},
		"limitN overflow":       {args: model.Args{model.ArgLimitN: math.MaxInt}, wantField: model.ArgLimitN},
		"limit 1001 rejected":   {args: model.Args{model.ArgLimit: 1001}, wantField: model.ArgLimit},
		"limitN not an integer": {args: model.Args{model.ArgLimitN: "ten"}, wantField: model.ArgLimitN},
		"no numeric args":       {args: model.Args{model.ArgOUName: "UKI"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.args)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			re, ok := model.AsRoutingError(err)
			require.True(t, ok)
			assert.Equal(t, model.KindRangeViolation, re.Kind)
			assert.Equal(t, tc.wantField, re.Field)
		})
	}
}

func TestValidate_Message(t *testing.T) {
	err := Validate(model.Args{model.ArgMinStage: 9})
	require.Error(t, err)
	assert.Equal(t, "minStage must be between 0 and 8 (got 9)", err.Error())

	err = Validate(model.Args{model.ArgLimitN: 0})
	require.Error(t, err)
	assert.Equal(t, "limitN must be between 1 and 1000 (got 0)", err.Error())
}

func TestValidate_DoesNotClamp(t *testing.T) {
	args := model.Args{model.ArgLimitN: 5000}
	_ = Validate(args)
	assert.Equal(t, 5000, args[model.ArgLimitN])
}
