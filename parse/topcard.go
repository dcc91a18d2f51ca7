package parse

import (
	"strings"

	"github.com/jkoval/driftex"
)

var imageSuffixes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var _ driftex.Parser[driftex.TopCard] = (*TopCardParser)(nil)

// TopCardParser maps the identity block at the top of a profile into a
// TopCard record. Top cards are single-item sections: one candidate node,
// one record.
type TopCardParser struct{}

// NewTopCardParser creates a new TopCardParser.
func NewTopCardParser() *TopCardParser {
	return &TopCardParser{}
}

// Parse converts a ParseInput into a TopCard. The first field is the name;
// a second non-location field is the headline; location and about are
// classified by shape.
func (p *TopCardParser) Parse(input driftex.ParseInput) (driftex.TopCard, bool) {
	if len(input.Texts) == 0 {
		return driftex.TopCard{}, false
	}

	card := driftex.TopCard{
		Name:      input.Texts[0],
		AvatarURL: firstImageURL(input.Links),
	}

	// The headline is positional: it always directly follows the name.
	rest := input.Texts[1:]
	if len(rest) > 0 && !IsDateLine(rest[0]) {
		card.Headline = rest[0]
		rest = rest[1:]
	}

	for _, t := range rest {
		switch {
		case card.Location == "" && IsLocationLike(t):
			card.Location = t
		case card.About == "" && IsDescriptionLike(t):
			card.About = t
		}
	}

	return card, true
}

// Validate reports whether the top card is acceptable.
func (p *TopCardParser) Validate(record driftex.TopCard) bool {
	return record.Validate()
}

// firstImageURL returns the first link that points at an image, or empty.
func firstImageURL(links []driftex.ExtractedLink) string {
	for _, l := range links {
		lower := strings.ToLower(l.URL)
		for _, suffix := range imageSuffixes {
			if strings.HasSuffix(lower, suffix) {
				return l.URL
			}
		}
	}
	return ""
}
