package slot

import "strings"

// Topic extracts the subject of a content search.
// Captures naming a content source are skipped; known product names are canonicalized.
func (e *Extractor) Topic(text string) Optional[string] {
	for _, re := range e.slots.TopicPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		topic := e.dropLeadingStopwords(clean(m[1]))
		if topic == "" {
			continue
		}
		if _, isSource := e.slots.Sources.Canonical(topic); isSource {
			continue
		}
		if p, ok := e.slots.Products.Canonical(topic); ok {
			topic = p
		}
		return Some(topic)
	}
	if p, ok := e.slots.Products.Lookup(text); ok {
		return Some(p)
	}
	return None[string]()
}

// Source returns the named content source, or the configured default.
func (e *Extractor) Source(text string) string {
	if src, ok := e.slots.Sources.Lookup(text); ok {
		return src
	}
	return e.slots.DefaultSource
}

// Region extracts an SME region code, upper-cased.
func (e *Extractor) Region(text string) Optional[string] {
	for _, re := range e.slots.RegionPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		region := clean(m[1])
		if region == "" || e.slots.IsStopword(firstWord(region)) {
			continue
		}
		if canonical, ok := e.slots.Regions.Canonical(region); ok {
			return Some(canonical)
		}
		return Some(strings.ToUpper(region))
	}
	if region, ok := e.slots.Regions.Lookup(text); ok {
		return Some(region)
	}
	return None[string]()
}

// Expertise extracts the skill an SME search asks for.
// A capture that is really a region ("expert in EMEA") is skipped.
func (e *Extractor) Expertise(text string) Optional[string] {
	for _, re := range e.slots.ExpertisePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		x := e.dropLeadingStopwords(clean(m[1]))
		if x == "" {
			continue
		}
		if _, isRegion := e.slots.Regions.Canonical(x); isRegion {
			continue
		}
		if p, ok := e.slots.Products.Canonical(x); ok {
			x = p
		}
		return Some(x)
	}
	if p, ok := e.slots.Products.Lookup(text); ok {
		return Some(p)
	}
	return None[string]()
}
