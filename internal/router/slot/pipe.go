package slot

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OperatingUnit maps the upper-cased utterance onto a canonical OU code.
// Unmapped text yields None; an OU is never guessed.
func (e *Extractor) OperatingUnit(text string) Optional[string] {
	if ou, ok := e.slots.OperatingUnits.Lookup(strings.ToUpper(text)); ok {
		return Some(ou)
	}
	return None[string]()
}

// Country tries each country pattern in order. Within one pattern, a rejected
// capture does not stop the scan: later occurrences are still considered.
func (e *Extractor) Country(text string) Optional[string] {
	for _, re := range e.slots.CountryPatterns {
		if c, ok := e.scanCountry(re, text); ok {
			return Some(c)
		}
	}
	for _, lit := range e.slots.CountryLiterals {
		if strings.Contains(text, lit.Needle) {
			return Some(lit.Value)
		}
	}
	return None[string]()
}

func (e *Extractor) scanCountry(re *regexp.Regexp, text string) (string, bool) {
	offset := 0
	for offset < len(text) {
		m := re.FindStringSubmatchIndex(text[offset:])
		if m == nil || m[2] < 0 {
			return "", false
		}
		if c, ok := e.acceptCountry(text[offset+m[2] : offset+m[3]]); ok {
			return c, true
		}
		// Resume at the end of the capture so a terminator such as "in"
		// can open the next match.
		next := offset + m[3]
		if next <= offset {
			next = offset + 1
		}
		offset = next
	}
	return "", false
}

func (e *Extractor) acceptCountry(raw string) (string, bool) {
	c := e.dropTrailingStopwords(clean(raw))
	if c == "" || len(c) > e.slots.CountryMaxLen {
		return "", false
	}
	if e.slots.IsStopword(firstWord(c)) {
		return "", false
	}
	upper := strings.ToUpper(c)
	if e.slots.OperatingUnits.Has(upper) {
		return "", false
	}
	if _, ok := e.slots.OperatingUnits.Canonical(upper); ok {
		return "", false
	}
	if _, ok := e.slots.Regions.Canonical(c); ok {
		return "", false
	}
	if _, ok := e.slots.Products.Canonical(c); ok {
		return "", false
	}
	if alias, ok := e.slots.CountryAliases.Canonical(c); ok {
		return alias, true
	}
	return c, true
}

// MinStage returns the stage number of the first matching pattern, unclamped.
func (e *Extractor) MinStage(text string) Optional[int] {
	return e.firstInt(e.slots.StagePatterns, text)
}

// Limit returns the row limit of the first matching pattern, unclamped.
// Range checks belong to validation.
func (e *Extractor) Limit(text string) Optional[int] {
	return e.firstInt(e.slots.LimitPatterns, text)
}

func (e *Extractor) firstInt(patterns []*regexp.Regexp, text string) Optional[int] {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if errors.Is(err, strconv.ErrRange) {
			return Some(math.MaxInt)
		}
		if err != nil {
			continue
		}
		return Some(n)
	}
	return None[int]()
}

// TimeFrame returns CURRENT or PREVIOUS when the utterance names a quarter.
func (e *Extractor) TimeFrame(text string) Optional[string] {
	if tf, ok := e.slots.Timeframes.Lookup(text); ok {
		return Some(tf)
	}
	return None[string]()
}

// ProductList returns a normalized ", "-joined product list.
// Explicit list phrasing wins over the named-pair fallback.
func (e *Extractor) ProductList(text string) Optional[string] {
	for _, re := range e.slots.ProductListPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if list := e.normalizeProducts(m[1:]); list != "" {
			return Some(list)
		}
	}
	for _, pair := range e.slots.ProductPairs {
		if e.mentionsAll(pair, text) {
			return Some(strings.Join(pair, ", "))
		}
	}
	return None[string]()
}

func (e *Extractor) mentionsAll(names []string, text string) bool {
	if len(names) == 0 {
		return false
	}
	for _, n := range names {
		if !e.slots.Products.Matches(n, text) {
			return false
		}
	}
	return true
}

func (e *Extractor) normalizeProducts(captures []string) string {
	var out []string
	seen := make(map[string]struct{})
	for _, capture := range captures {
		for _, item := range listSplitRe.Split(capture, -1) {
			item = clean(trailingOnlyRe.ReplaceAllString(clean(item), ""))
			item = e.dropLeadingStopwords(item)
			if item == "" {
				continue
			}
			if _, isOU := e.slots.OperatingUnits.Canonical(strings.ToUpper(item)); isOU {
				continue
			}
			if canonical, ok := e.slots.Products.Canonical(item); ok {
				item = canonical
			}
			key := strings.ToLower(item)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	return strings.Join(out, ", ")
}

// ExcludedProducts lists the products a negative query rules out.
// Known product names win; the generic "without X" phrasing is only
// consulted when none are mentioned.
func (e *Extractor) ExcludedProducts(text string) []string {
	if found := e.slots.Products.LookupAll(text); len(found) > 0 {
		return found
	}

	// A Caser carries state, so each call gets its own.
	title := cases.Title(language.English)
	var out []string
	seen := make(map[string]struct{})
	for _, re := range e.slots.NegativeFallbackPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			word := m[1]
			if e.slots.IsStopword(word) {
				continue
			}
			name := title.String(strings.ToLower(word))
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
