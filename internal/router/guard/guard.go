package guard

import (
	"strings"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router/rules"
)

// Guard rejects utterances before classification.
type Guard struct {
	cfg rules.Guards
}

// New creates a Guard from the compiled guard tables.
func New(cfg rules.Guards) *Guard {
	return &Guard{cfg: cfg}
}

// Enabled reports whether the guard tables are switched on.
func (g *Guard) Enabled() bool {
	return g.cfg.Enabled
}

// Check runs the domain check and then the syntax check.
// It returns nil when both pass or when guards are disabled.
func (g *Guard) Check(text string) error {
	if !g.cfg.Enabled {
		return nil
	}
	lower := strings.ToLower(text)
	if err := g.checkDomain(lower); err != nil {
		return err
	}
	return g.checkSyntax(lower)
}

// CheckDomain reports whether text passes the domain gate.
func (g *Guard) CheckDomain(text string) error {
	return g.checkDomain(strings.ToLower(text))
}

// CheckUnsupportedSyntax reports whether text is free of query-language filters.
func (g *Guard) CheckUnsupportedSyntax(text string) error {
	return g.checkSyntax(strings.ToLower(text))
}

func (g *Guard) checkDomain(lower string) error {
	if _, ok := g.cfg.InDomain.MatchAny(lower); !ok {
		return domainRejection(model.ReasonNotInDomain, MsgNotInDomain)
	}
	if _, ok := g.cfg.ExcludedActions.MatchAny(lower); ok {
		return domainRejection(model.ReasonExcludedAction, MsgExcludedAction)
	}
	if _, ok := g.cfg.ExcludedFamilies.MatchAny(lower); ok {
		return domainRejection(model.ReasonExcludedFamily, MsgExcludedFamily)
	}
	return nil
}

func (g *Guard) checkSyntax(lower string) error {
	if _, ok := g.cfg.UnsupportedSyntax.MatchAny(lower); ok {
		return &model.RoutingError{
			Kind:    model.KindSyntaxRejection,
			Message: MsgUnsupportedSyntax,
		}
	}
	return nil
}

func domainRejection(reason, msg string) *model.RoutingError {
	return &model.RoutingError{
		Kind:    model.KindDomainRejection,
		Reason:  reason,
		Message: msg,
	}
}
