package parse

import (
	"strings"

	"github.com/jkoval/driftex"
)

var _ driftex.Parser[driftex.Experience] = (*ExperienceParser)(nil)

// ExperienceParser maps extracted text into employer records with one or
// more positions.
type ExperienceParser struct{}

// NewExperienceParser creates a new ExperienceParser.
func NewExperienceParser() *ExperienceParser {
	return &ExperienceParser{}
}

// Parse converts a ParseInput into an Experience.
//
// When sub-items are present the input is a grouped entry: the first field
// names the employer and each sub-item is one position. Otherwise it is a
// single-position entry, and which field is the title versus the company is
// decided by the separator heuristic in splitSinglePosition. That heuristic
// is pattern-based and occasionally ambiguous for atypical inputs; the
// precedence order below is fixed rather than guaranteed correct.
func (p *ExperienceParser) Parse(input driftex.ParseInput) (driftex.Experience, bool) {
	if len(input.Texts) == 0 {
		return driftex.Experience{}, false
	}

	exp := driftex.Experience{
		CompanyURL: firstLinkURL(input.Links),
	}

	if len(input.SubItems) > 0 {
		exp.Company = input.Texts[0]
		for _, sub := range input.SubItems {
			if len(sub.Texts) == 0 {
				continue
			}
			exp.Positions = append(exp.Positions, parsePosition(sub.Texts))
		}
		if len(exp.Positions) == 0 {
			return driftex.Experience{}, false
		}
		return exp, true
	}

	company, pos := splitSinglePosition(input.Texts)
	exp.Company = company
	exp.Positions = []driftex.Position{pos}
	return exp, true
}

// Validate reports whether the experience is acceptable.
func (p *ExperienceParser) Validate(record driftex.Experience) bool {
	return record.Validate()
}

// splitSinglePosition resolves the title/company field assignment for a
// single-position entry. When the second field carries the middle-dot
// separator it reads as "title · employment type" and the first field is
// the company; otherwise the first field is the title and the second, if
// present and not a date, is the company.
func splitSinglePosition(texts []string) (string, driftex.Position) {
	if len(texts) == 1 {
		return texts[0], driftex.Position{}
	}

	second := texts[1]
	if strings.Contains(second, durationSeparator) && !IsDateLine(second) {
		pos := parsePosition(append([]string{second}, texts[2:]...))
		return texts[0], pos
	}

	pos := driftex.Position{Title: texts[0]}
	company := ""
	rest := texts[1:]
	if !IsDateLine(second) {
		company = second
		rest = texts[2:]
	}
	classifyPositionFields(rest, &pos)
	return company, pos
}

// parsePosition parses one position's fields: the first is the title line
// ("Senior Engineer · Full-time"), the rest are classified by shape.
func parsePosition(texts []string) driftex.Position {
	pos := driftex.Position{}
	title, empType, found := strings.Cut(texts[0], durationSeparator)
	pos.Title = strings.TrimSpace(title)
	if found {
		pos.EmploymentType = strings.TrimSpace(empType)
	}
	classifyPositionFields(texts[1:], &pos)
	return pos
}

// classifyPositionFields assigns remaining fields by shape, in the fixed
// priority order date, location, description.
func classifyPositionFields(texts []string, pos *driftex.Position) {
	for _, t := range texts {
		switch {
		case pos.FromDate == "" && IsDateLine(t):
			r := ParseDateRange(t, true)
			pos.FromDate = r.From
			pos.ToDate = r.To
			pos.Duration = r.Duration
		case pos.Location == "" && IsLocationLike(t):
			pos.Location = t
		case pos.Description == "" && IsDescriptionLike(t):
			pos.Description = t
		}
	}
}

// firstLinkURL returns the first link's URL, or empty.
func firstLinkURL(links []driftex.ExtractedLink) string {
	if len(links) == 0 {
		return ""
	}
	return links[0].URL
}
