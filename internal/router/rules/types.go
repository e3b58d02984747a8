package rules

import (
	"regexp"
	"strings"

	"crm-intent-router/internal/model"
)

// Rule pairs a compiled pattern with the canonical value it produces.
type Rule struct {
	Pattern *regexp.Regexp
	Value   string
}

// Table is an ordered normalization table. The first matching rule wins.
type Table []Rule

// Lookup returns the value of the first rule whose pattern matches text.
func (t Table) Lookup(text string) (string, bool) {
	for _, r := range t {
		if r.Pattern.MatchString(text) {
			return r.Value, true
		}
	}
	return "", false
}

// LookupAll returns the distinct values of every matching rule, in table order.
func (t Table) LookupAll(text string) []string {
	var out []string
	seen := make(map[string]struct{}, len(t))
	for _, r := range t {
		if _, ok := seen[r.Value]; ok {
			continue
		}
		if r.Pattern.MatchString(text) {
			seen[r.Value] = struct{}{}
			out = append(out, r.Value)
		}
	}
	return out
}

// Canonical maps a free-form name onto a table value.
// The whole of name must match one of the rules.
func (t Table) Canonical(name string) (string, bool) {
	for _, r := range t {
		loc := r.Pattern.FindStringIndex(name)
		if loc != nil && loc[0] == 0 && loc[1] == len(name) {
			return r.Value, true
		}
	}
	return "", false
}

// Has reports whether value is one of the table's canonical values.
func (t Table) Has(value string) bool {
	for _, r := range t {
		if r.Value == value {
			return true
		}
	}
	return false
}

// Matches reports whether any rule producing value matches text.
func (t Table) Matches(value, text string) bool {
	for _, r := range t {
		if r.Value == value && r.Pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// PatternList is an ordered list of compiled patterns.
type PatternList []*regexp.Regexp

// MatchAny returns the first pattern that matches text.
func (p PatternList) MatchAny(text string) (*regexp.Regexp, bool) {
	for _, re := range p {
		if re.MatchString(text) {
			return re, true
		}
	}
	return nil, false
}

// ToolRule lists the patterns that select a tool.
type ToolRule struct {
	Tool     model.Tool
	Patterns PatternList
}

// Tier groups tool rules of equal precedence. Tools inside a tier are tried in order.
type Tier struct {
	Name  string
	Tools []ToolRule
}

// Literal is a case-sensitive substring that maps straight to a value.
type Literal struct {
	Needle string
	Value  string
}

// Guards holds the pre-classification gates.
type Guards struct {
	Enabled           bool
	InDomain          PatternList
	ExcludedActions   PatternList
	ExcludedFamilies  PatternList
	UnsupportedSyntax PatternList
}

// Slots holds every table the slot extractors read.
type Slots struct {
	OperatingUnits           Table
	CountryPatterns          PatternList
	CountryAliases           Table
	CountryLiterals          []Literal
	CountryMaxLen            int
	Stopwords                map[string]struct{}
	StagePatterns            PatternList
	ProductListPatterns      PatternList
	ProductPairs             [][]string
	Products                 Table
	NegativeFallbackPatterns PatternList
	LimitPatterns            PatternList
	Timeframes               Table
	TopicPatterns            PatternList
	Sources                  Table
	DefaultSource            string
	RegionPatterns           PatternList
	Regions                  Table
	ExpertisePatterns        PatternList
	OpportunityTypes         Table
	Segments                 Table
}

// IsStopword reports whether word is in the stopword list, ignoring case.
func (s Slots) IsStopword(word string) bool {
	_, ok := s.Stopwords[strings.ToLower(word)]
	return ok
}

// Defaults are the values builders fall back to when a slot is absent.
type Defaults struct {
	TimeFrame       string
	Limit           int
	WorkflowProcess string
}

// Set is a compiled, immutable rule set. Safe for concurrent use.
type Set struct {
	Version  int
	Tiers    []Tier
	Guards   Guards
	Slots    Slots
	Defaults Defaults
}
