package parse

import "github.com/jkoval/driftex"

var _ driftex.Parser[driftex.Interest] = (*InterestParser)(nil)

// InterestParser maps extracted text into followed-entity records.
type InterestParser struct{}

// NewInterestParser creates a new InterestParser.
func NewInterestParser() *InterestParser {
	return &InterestParser{}
}

// Parse converts a ParseInput into an Interest. The first field is the
// entity name; the second, when present, is detail text such as a follower
// count.
func (p *InterestParser) Parse(input driftex.ParseInput) (driftex.Interest, bool) {
	if len(input.Texts) == 0 {
		return driftex.Interest{}, false
	}
	interest := driftex.Interest{
		Name: input.Texts[0],
		URL:  firstLinkURL(input.Links),
	}
	if len(input.Texts) > 1 {
		interest.Detail = input.Texts[1]
	}
	return interest, true
}

// Validate reports whether the interest is acceptable.
func (p *InterestParser) Validate(record driftex.Interest) bool {
	return record.Validate()
}
