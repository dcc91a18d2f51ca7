package parse

import (
	"strings"

	"github.com/jkoval/driftex"
)

var _ driftex.Parser[driftex.Education] = (*EducationParser)(nil)

// EducationParser maps extracted text into school records. Education dates
// are single-year style: a lone year is both the from and the to year.
type EducationParser struct{}

// NewEducationParser creates a new EducationParser.
func NewEducationParser() *EducationParser {
	return &EducationParser{}
}

// Parse converts a ParseInput into an Education record. The first field is
// the school name; a second non-date field is the degree line, split on its
// first comma into degree and field of study.
func (p *EducationParser) Parse(input driftex.ParseInput) (driftex.Education, bool) {
	if len(input.Texts) == 0 {
		return driftex.Education{}, false
	}

	edu := driftex.Education{
		School:    input.Texts[0],
		SchoolURL: firstLinkURL(input.Links),
	}

	rest := input.Texts[1:]
	if len(rest) > 0 && !IsDateLine(rest[0]) {
		degree, field, found := strings.Cut(rest[0], ",")
		edu.Degree = strings.TrimSpace(degree)
		if found {
			edu.FieldOfStudy = strings.TrimSpace(field)
		}
		rest = rest[1:]
	}

	for _, t := range rest {
		switch {
		case edu.FromYear == "" && IsDateLine(t):
			r := ParseDateRange(t, false)
			edu.FromYear = r.From
			edu.ToYear = r.To
		case edu.Description == "" && IsDescriptionLike(t):
			edu.Description = t
		}
	}

	return edu, true
}

// Validate reports whether the education entry is acceptable.
func (p *EducationParser) Validate(record driftex.Education) bool {
	return record.Validate()
}
