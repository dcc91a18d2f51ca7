// Package parse converts extracted text and link tuples into typed domain
// records using field-position and content-shape heuristics. The first text
// fragment is always the title-like field; subsequent fields are classified
// by shape with the pure predicates in this file, applied in priority order
// date, location, description so that a field matching several heuristics
// resolves deterministically.
package parse

import (
	"regexp"
	"strings"
)

var (
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	durationRe = regexp.MustCompile(`(?i)\b\d+\s*(yrs?|years?|mos?|months?)\b`)
	digitRe    = regexp.MustCompile(`\d`)

	// monthYearRe matches fields that are nothing but a date, e.g. "2015"
	// or "Jan 2020".
	monthYearRe = regexp.MustCompile(`(?i)^(?:[a-z]{3,9}\.?\s+)?(19|20)\d{2}$`)
)

// IsDateLine reports whether a field looks like a date range or dated
// annotation: a range separator or an ongoing keyword combined with a year
// or duration pattern, or a field that is nothing but a single date.
func IsDateLine(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if monthYearRe.MatchString(s) {
		return true
	}
	marker := strings.Contains(s, rangeSeparator) || containsOngoing(s)
	if !marker {
		return false
	}
	return yearRe.MatchString(s) || durationRe.MatchString(s)
}

// IsLocationLike reports whether a field looks like a place name: short,
// no digits, few words.
func IsLocationLike(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return false
	}
	if digitRe.MatchString(s) {
		return false
	}
	return len(strings.Fields(s)) <= 5
}

// IsDescriptionLike reports whether a field looks like free-form prose:
// long, many words.
func IsDescriptionLike(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) > 60 || len(strings.Fields(s)) > 10
}

// containsOngoing reports whether any ongoing keyword appears as a word in
// the field.
func containsOngoing(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range ongoingKeywords {
		if containsWord(lower, kw) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	idx := strings.Index(s, word)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(s[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx == len(s) || !isWordChar(s[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(s[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
