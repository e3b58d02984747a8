package rules

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"crm-intent-router/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

var (
	defaultSet  *Set
	defaultOnce sync.Once
	defaultErr  error
)

type rawRule struct {
	Pattern string `yaml:"pattern"`
	Value   string `yaml:"value"`
}

type rawLiteral struct {
	Needle string `yaml:"needle"`
	Value  string `yaml:"value"`
}

type rawToolRule struct {
	Tool     string   `yaml:"tool"`
	Patterns []string `yaml:"patterns"`
}

type rawTier struct {
	Name  string        `yaml:"name"`
	Tools []rawToolRule `yaml:"tools"`
}

type rawGuards struct {
	Enabled           *bool    `yaml:"enabled"`
	InDomain          []string `yaml:"in_domain"`
	ExcludedActions   []string `yaml:"excluded_actions"`
	ExcludedFamilies  []string `yaml:"excluded_families"`
	UnsupportedSyntax []string `yaml:"unsupported_syntax"`
}

type rawSlots struct {
	OperatingUnits           []rawRule    `yaml:"operating_units"`
	CountryPatterns          []string     `yaml:"country_patterns"`
	CountryAliases           []rawRule    `yaml:"country_aliases"`
	CountryLiterals          []rawLiteral `yaml:"country_literals"`
	CountryMaxLen            int          `yaml:"country_max_len"`
	Stopwords                []string     `yaml:"stopwords"`
	StagePatterns            []string     `yaml:"stage_patterns"`
	ProductListPatterns      []string     `yaml:"product_list_patterns"`
	ProductPairs             [][]string   `yaml:"product_pairs"`
	Products                 []rawRule    `yaml:"products"`
	NegativeFallbackPatterns []string     `yaml:"negative_fallback_patterns"`
	LimitPatterns            []string     `yaml:"limit_patterns"`
	Timeframes               []rawRule    `yaml:"timeframes"`
	TopicPatterns            []string     `yaml:"topic_patterns"`
	Sources                  []rawRule    `yaml:"sources"`
	DefaultSource            string       `yaml:"default_source"`
	RegionPatterns           []string     `yaml:"region_patterns"`
	Regions                  []rawRule    `yaml:"regions"`
	ExpertisePatterns        []string     `yaml:"expertise_patterns"`
	OpportunityTypes         []rawRule    `yaml:"opportunity_types"`
	Segments                 []rawRule    `yaml:"segments"`
}

type rawDefaults struct {
	TimeFrame       string `yaml:"time_frame"`
	Limit           int    `yaml:"limit"`
	WorkflowProcess string `yaml:"workflow_process"`
}

type rawSet struct {
	Version  int         `yaml:"version"`
	Tiers    []rawTier   `yaml:"tiers"`
	Guards   rawGuards   `yaml:"guards"`
	Slots    rawSlots    `yaml:"slots"`
	Defaults rawDefaults `yaml:"defaults"`
}

// Default returns the embedded rule set. It is compiled once and shared.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = Parse(defaultRulesYAML)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("parsing embedded default_rules.yaml: %w", defaultErr)
		}
	})
	return defaultSet, defaultErr
}

// MustDefault is Default for callers that cannot proceed without rules.
func MustDefault() *Set {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// Load reads and compiles a rule set from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return s, nil
}

// Parse compiles a rule set from YAML. Every regex is compiled up front,
// so a Set that parses cleanly never fails at routing time.
func Parse(data []byte) (*Set, error) {
	var raw rawSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	c := &compiler{}
	s := &Set{Version: raw.Version}

	s.Tiers = c.tiers(raw.Tiers)

	s.Guards = Guards{
		Enabled:           raw.Guards.Enabled == nil || *raw.Guards.Enabled,
		InDomain:          c.list("guards.in_domain", raw.Guards.InDomain, false),
		ExcludedActions:   c.list("guards.excluded_actions", raw.Guards.ExcludedActions, false),
		ExcludedFamilies:  c.list("guards.excluded_families", raw.Guards.ExcludedFamilies, false),
		UnsupportedSyntax: c.list("guards.unsupported_syntax", raw.Guards.UnsupportedSyntax, false),
	}

	rs := raw.Slots
	s.Slots = Slots{
		OperatingUnits:           c.table("slots.operating_units", rs.OperatingUnits),
		CountryPatterns:          c.list("slots.country_patterns", rs.CountryPatterns, true),
		CountryAliases:           c.table("slots.country_aliases", rs.CountryAliases),
		CountryMaxLen:            rs.CountryMaxLen,
		Stopwords:                make(map[string]struct{}, len(rs.Stopwords)),
		StagePatterns:            c.list("slots.stage_patterns", rs.StagePatterns, true),
		ProductListPatterns:      c.list("slots.product_list_patterns", rs.ProductListPatterns, true),
		ProductPairs:             rs.ProductPairs,
		Products:                 c.table("slots.products", rs.Products),
		NegativeFallbackPatterns: c.list("slots.negative_fallback_patterns", rs.NegativeFallbackPatterns, true),
		LimitPatterns:            c.list("slots.limit_patterns", rs.LimitPatterns, true),
		Timeframes:               c.table("slots.timeframes", rs.Timeframes),
		TopicPatterns:            c.list("slots.topic_patterns", rs.TopicPatterns, true),
		Sources:                  c.table("slots.sources", rs.Sources),
		DefaultSource:            rs.DefaultSource,
		RegionPatterns:           c.list("slots.region_patterns", rs.RegionPatterns, true),
		Regions:                  c.table("slots.regions", rs.Regions),
		ExpertisePatterns:        c.list("slots.expertise_patterns", rs.ExpertisePatterns, true),
		OpportunityTypes:         c.table("slots.opportunity_types", rs.OpportunityTypes),
		Segments:                 c.table("slots.segments", rs.Segments),
	}
	for _, l := range rs.CountryLiterals {
		s.Slots.CountryLiterals = append(s.Slots.CountryLiterals, Literal{Needle: l.Needle, Value: l.Value})
	}
	for _, w := range rs.Stopwords {
		s.Slots.Stopwords[strings.ToLower(w)] = struct{}{}
	}
	if s.Slots.CountryMaxLen <= 0 {
		s.Slots.CountryMaxLen = 50
	}

	s.Defaults = Defaults{
		TimeFrame:       raw.Defaults.TimeFrame,
		Limit:           raw.Defaults.Limit,
		WorkflowProcess: raw.Defaults.WorkflowProcess,
	}

	if c.err != nil {
		return nil, c.err
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// compiler keeps the first error so Parse can compile every section in one pass.
type compiler struct {
	err error
}

func (c *compiler) compile(section, expr string, wantCapture bool) *regexp.Regexp {
	if c.err != nil {
		return nil
	}
	if strings.TrimSpace(expr) == "" {
		c.err = fmt.Errorf("%s: %w", section, ErrEmptyPattern)
		return nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		c.err = fmt.Errorf("%s: %w", section, err)
		return nil
	}
	if wantCapture && re.NumSubexp() == 0 {
		c.err = fmt.Errorf("%s: %q: %w", section, expr, ErrMissingCapture)
		return nil
	}
	return re
}

func (c *compiler) list(section string, exprs []string, wantCapture bool) PatternList {
	out := make(PatternList, 0, len(exprs))
	for _, e := range exprs {
		if re := c.compile(section, e, wantCapture); re != nil {
			out = append(out, re)
		}
	}
	return out
}

func (c *compiler) table(section string, rules []rawRule) Table {
	out := make(Table, 0, len(rules))
	for _, r := range rules {
		if re := c.compile(section, r.Pattern, false); re != nil {
			out = append(out, Rule{Pattern: re, Value: r.Value})
		}
	}
	return out
}

func (c *compiler) tiers(raw []rawTier) []Tier {
	seen := make(map[model.Tool]string)
	out := make([]Tier, 0, len(raw))
	for _, rt := range raw {
		tier := Tier{Name: rt.Name}
		for _, tr := range rt.Tools {
			tool, ok := model.ParseTool(tr.Tool)
			if !ok || tool == model.ToolUnrecognized {
				if c.err == nil {
					c.err = fmt.Errorf("tier %s: %w: %q", rt.Name, ErrUnknownTool, tr.Tool)
				}
				continue
			}
			if prev, dup := seen[tool]; dup {
				if c.err == nil {
					c.err = fmt.Errorf("tier %s: %w: %s (also in %s)", rt.Name, ErrDuplicateTool, tool, prev)
				}
				continue
			}
			seen[tool] = rt.Name
			tier.Tools = append(tier.Tools, ToolRule{
				Tool:     tool,
				Patterns: c.list("tier "+rt.Name+"/"+string(tool), tr.Patterns, false),
			})
		}
		out = append(out, tier)
	}
	return out
}

func validate(s *Set) error {
	if len(s.Tiers) == 0 {
		return ErrNoTiers
	}
	if s.Defaults.TimeFrame == "" {
		return fmt.Errorf("defaults.time_frame: %w", ErrInvalidDefault)
	}
	if s.Defaults.Limit < 1 {
		return fmt.Errorf("defaults.limit must be positive: %w", ErrInvalidDefault)
	}
	if s.Defaults.WorkflowProcess == "" {
		return fmt.Errorf("defaults.workflow_process: %w", ErrInvalidDefault)
	}
	if s.Slots.DefaultSource == "" {
		return fmt.Errorf("slots.default_source: %w", ErrInvalidDefault)
	}
	for _, pair := range s.Slots.ProductPairs {
		for _, name := range pair {
			if !s.Slots.Products.Has(name) {
				return fmt.Errorf("slots.product_pairs: %w: %q", ErrUnknownProduct, name)
			}
		}
	}
	return nil
}
