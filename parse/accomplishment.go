package parse

import (
	"github.com/jkoval/driftex"
)

var _ driftex.Parser[driftex.Accomplishment] = (*AccomplishmentParser)(nil)

// AccomplishmentParser maps extracted text into generic dated achievements
// (projects, honors, languages, certifications, publications). The section
// context carries the tab category the item came from.
type AccomplishmentParser struct{}

// NewAccomplishmentParser creates a new AccomplishmentParser.
func NewAccomplishmentParser() *AccomplishmentParser {
	return &AccomplishmentParser{}
}

// Parse converts a ParseInput into an Accomplishment.
func (p *AccomplishmentParser) Parse(input driftex.ParseInput) (driftex.Accomplishment, bool) {
	if len(input.Texts) == 0 {
		return driftex.Accomplishment{}, false
	}

	acc := driftex.Accomplishment{
		Category: input.Context["tab"],
		Title:    input.Texts[0],
		URL:      firstLinkURL(input.Links),
	}

	for _, t := range input.Texts[1:] {
		switch {
		case acc.Date == "" && IsDateLine(t):
			date, _ := SplitDuration(t)
			acc.Date = date
		case acc.Description == "" && IsDescriptionLike(t):
			acc.Description = t
		}
	}

	return acc, true
}

// Validate reports whether the accomplishment is acceptable.
func (p *AccomplishmentParser) Validate(record driftex.Accomplishment) bool {
	return record.Validate()
}
