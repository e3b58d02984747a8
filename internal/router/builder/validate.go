package builder

import (
	"fmt"

	"crm-intent-router/internal/model"

	"github.com/go-playground/validator/v10"
)

var argValidate = validator.New()

type bound struct {
	field    string
	min, max int
}

func (b bound) tag() string {
	return fmt.Sprintf("min=%d,max=%d", b.min, b.max)
}

// Numeric bounds enforced on built arguments. Values are never clamped.
var bounds = []bound{
	{field: model.ArgMinStage, min: 0, max: 8},
	{field: model.ArgLimitN, min: 1, max: 1000},
	{field: model.ArgLimit, min: 1, max: 1000},
}

// Validate checks numeric arguments against their allowed ranges.
func Validate(args model.Args) error {
	for _, b := range bounds {
		v, ok := args[b.field]
		if !ok {
			continue
		}
		n, ok := v.(int)
		if !ok {
			return &model.RoutingError{
				Kind:    model.KindRangeViolation,
				Field:   b.field,
				Message: fmt.Sprintf(MsgNotIntFmt, b.field, v),
			}
		}
		if err := argValidate.Var(n, b.tag()); err != nil {
			return &model.RoutingError{
				Kind:    model.KindRangeViolation,
				Field:   b.field,
				Message: fmt.Sprintf(MsgRangeFmt, b.field, b.min, b.max, n),
			}
		}
	}
	return nil
}
