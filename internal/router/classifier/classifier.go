package classifier

import (
	"strings"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router/rules"
)

// Match explains a classification.
// Tier and Pattern are empty when Tool is ToolUnrecognized.
type Match struct {
	Tool    model.Tool `json:"tool"`
	Tier    string     `json:"tier,omitempty"`
	Pattern string     `json:"pattern,omitempty"`
}

// Classifier assigns exactly one tool to an utterance.
// Tiers are evaluated in order and the first matching tool wins.
type Classifier struct {
	tiers []rules.Tier
}

// New creates a Classifier over ordered tiers.
func New(tiers []rules.Tier) *Classifier {
	return &Classifier{tiers: tiers}
}

// Classify returns the tool for text, or ToolUnrecognized.
func (c *Classifier) Classify(text string) model.Tool {
	return c.Match(text).Tool
}

// Match classifies text and reports which tier and pattern decided it.
func (c *Classifier) Match(text string) Match {
	lower := strings.ToLower(text)
	for _, tier := range c.tiers {
		for _, tr := range tier.Tools {
			if re, ok := tr.Patterns.MatchAny(lower); ok {
				return Match{Tool: tr.Tool, Tier: tier.Name, Pattern: re.String()}
			}
		}
	}
	return Match{Tool: model.ToolUnrecognized}
}

// Tools lists the tools in the order they are tried, each once.
func (c *Classifier) Tools() []model.Tool {
	seen := make(map[model.Tool]struct{})
	var out []model.Tool
	for _, tier := range c.tiers {
		for _, tr := range tier.Tools {
			if _, ok := seen[tr.Tool]; ok {
				continue
			}
			seen[tr.Tool] = struct{}{}
			out = append(out, tr.Tool)
		}
	}
	return out
}
