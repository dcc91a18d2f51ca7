package parse

import (
	"regexp"
	"strings"

	"github.com/jkoval/driftex"
)

// patentNumberRe matches issuing-office lines like "US 10,123,456" or
// "EP1234567".
var patentNumberRe = regexp.MustCompile(`^([A-Z]{2,3})\s*-?\s*([A-Z]?\d[\d,/]*)$`)

// issuedPrefixes strip status annotations from patent date lines.
var issuedPrefixes = []string{"Issued ", "Filed ", "Granted "}

var _ driftex.Parser[driftex.Patent] = (*PatentParser)(nil)

// PatentParser maps extracted text into patent records.
type PatentParser struct{}

// NewPatentParser creates a new PatentParser.
func NewPatentParser() *PatentParser {
	return &PatentParser{}
}

// Parse converts a ParseInput into a Patent. The first field is the patent
// title; an office/number line is recognized by pattern, a date line by the
// shared classifier (with any status prefix stripped).
func (p *PatentParser) Parse(input driftex.ParseInput) (driftex.Patent, bool) {
	if len(input.Texts) == 0 {
		return driftex.Patent{}, false
	}

	pat := driftex.Patent{
		Title: input.Texts[0],
		URL:   firstLinkURL(input.Links),
	}

	for _, t := range input.Texts[1:] {
		trimmed := strings.TrimSpace(t)
		if m := patentNumberRe.FindStringSubmatch(trimmed); m != nil && pat.Number == "" {
			pat.Office = m[1]
			pat.Number = m[2]
			continue
		}
		stripped := stripIssuedPrefix(trimmed)
		switch {
		case pat.IssuedDate == "" && IsDateLine(stripped):
			date, _ := SplitDuration(stripped)
			pat.IssuedDate = date
		case pat.Description == "" && IsDescriptionLike(t):
			pat.Description = t
		}
	}

	return pat, true
}

// Validate reports whether the patent is acceptable.
func (p *PatentParser) Validate(record driftex.Patent) bool {
	return record.Validate()
}

func stripIssuedPrefix(s string) string {
	for _, prefix := range issuedPrefixes {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimPrefix(s, prefix)
		}
	}
	return s
}
