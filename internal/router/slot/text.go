package slot

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	listSplitRe    = regexp.MustCompile(`(?i)\s*(?:,|&|\band\b)\s*`)
	trailingOnlyRe = regexp.MustCompile(`(?i)\s+only$`)
)

const trimCutset = " \t\r\n.,;:!?\"'()[]"

// clean trims punctuation and collapses inner whitespace.
func clean(s string) string {
	s = strings.Trim(s, trimCutset)
	return whitespaceRe.ReplaceAllString(s, " ")
}

// dropLeadingStopwords removes articles and determiners from the front of a capture.
func (e *Extractor) dropLeadingStopwords(s string) string {
	for {
		first, rest, found := strings.Cut(s, " ")
		if !e.slots.IsStopword(first) {
			return s
		}
		if !found {
			return ""
		}
		s = rest
	}
}

func firstWord(s string) string {
	first, _, _ := strings.Cut(s, " ")
	return first
}

// dropTrailingStopwords removes time words and determiners left at the end of a capture.
func (e *Extractor) dropTrailingStopwords(s string) string {
	for s != "" {
		i := strings.LastIndexByte(s, ' ')
		if !e.slots.IsStopword(s[i+1:]) {
			return s
		}
		if i < 0 {
			return ""
		}
		s = s[:i]
	}
	return s
}
