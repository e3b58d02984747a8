package rules

import "errors"

var (
	ErrNoTiers        = errors.New("rules: at least one tier is required")
	ErrUnknownTool    = errors.New("rules: unknown tool")
	ErrDuplicateTool  = errors.New("rules: tool listed in more than one place")
	ErrEmptyPattern   = errors.New("rules: empty pattern")
	ErrMissingCapture = errors.New("rules: pattern has no capture group")
	ErrInvalidDefault = errors.New("rules: invalid default")
	ErrUnknownProduct = errors.New("rules: product pair names an unknown product")
)
