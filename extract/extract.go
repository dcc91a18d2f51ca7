// Package extract provides the text extraction strategies of the pipeline.
// Each strategy turns one candidate node into an ordered list of text
// fragments plus links, optional sub-items, and a confidence score. The
// strategies compete: the orchestrator tries them in priority order and
// accepts the first result that meets its confidence threshold.
package extract

import (
	"context"
	"strings"

	"github.com/jkoval/driftex"
)

// Strategy priorities. Lower is tried first.
const (
	PriorityAccessibility = 0
	PrioritySemantic      = 1
	PriorityRaw           = 3
)

// maxFragmentLen caps the length of a single retained line in the raw
// fallback strategy.
const maxFragmentLen = 500

// Plausible title length range used by the confidence bonus.
const (
	minTitleLen = 3
	maxTitleLen = 150
)

// Default returns the three built-in strategies in priority order.
func Default() []driftex.TextExtractor {
	return []driftex.TextExtractor{
		NewAccessibility(),
		NewSemantic(),
		NewRaw(),
	}
}

// collector accumulates text fragments while enforcing the overlap
// deduplication rule: a new fragment is discarded if it exactly matches a
// kept fragment, or if a kept fragment longer than three characters is a
// substring of it, or vice versa. This captures the common pattern where a
// document repeats its visible text verbatim or as a prefix/suffix for
// assistive technology.
type collector struct {
	texts []string
}

func (c *collector) add(fragment string) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return
	}
	for i, kept := range c.texts {
		if kept == fragment {
			return
		}
		if len(kept) > 3 && strings.Contains(fragment, kept) {
			// The new fragment supersedes a shorter kept one and may
			// also cover fragments kept after it.
			c.texts[i] = fragment
			rest := c.texts[:i+1]
			for _, later := range c.texts[i+1:] {
				if len(later) > 3 && strings.Contains(fragment, later) {
					continue
				}
				rest = append(rest, later)
			}
			c.texts = rest
			return
		}
		if len(fragment) > 3 && strings.Contains(kept, fragment) {
			return
		}
	}
	c.texts = append(c.texts, fragment)
}

// collectLinks gathers anchors from the node. Hrefs are kept raw; the
// orchestrator resolves them against the section base URL and flags
// external ones. Node-query failures yield an empty slice.
func collectLinks(ctx context.Context, node driftex.Node) []driftex.ExtractedLink {
	anchors, err := node.Find(ctx, "a[href]")
	if err != nil {
		return nil
	}
	var links []driftex.ExtractedLink
	seen := make(map[string]bool)
	for _, a := range anchors {
		href, err := a.Attr(ctx, "href")
		if err != nil || href == "" {
			continue
		}
		if seen[href] {
			continue
		}
		seen[href] = true
		text, _ := a.Text(ctx)
		links = append(links, driftex.ExtractedLink{
			URL:  href,
			Text: strings.TrimSpace(text),
		})
	}
	return links
}

// subItemNodes detects a nested repeating-list structure directly under the
// node. It returns the entries of the first nested list holding more than
// one item, or nil. Used for "one entity, many sub-entries" shapes, e.g.
// one employer with several roles.
func subItemNodes(ctx context.Context, node driftex.Node) []driftex.Node {
	lists, err := node.Find(ctx, "ul, ol")
	if err != nil {
		return nil
	}
	for _, list := range lists {
		n, err := list.Count(ctx, "li")
		if err != nil || n <= 1 {
			continue
		}
		items, err := list.Find(ctx, "li")
		if err != nil || len(items) <= 1 {
			continue
		}
		return items
	}
	return nil
}

// structuredScore derives a confidence score for the accessibility and
// semantic strategies. The base is keyed on field count with per-strategy
// ceilings; structural richness (links, sub-items, sane title length) adds
// fixed bonuses. Capped at 1.0.
func structuredScore(fieldCount int, hasLinks, hasSubItems bool, firstField string, highBand bool) float64 {
	if fieldCount == 0 {
		return 0
	}

	var score float64
	switch {
	case fieldCount >= 3 && highBand:
		score = 0.6
	case fieldCount >= 3:
		score = 0.4
	case fieldCount == 2 && highBand:
		score = 0.45
	case fieldCount == 2:
		score = 0.3
	case highBand:
		score = 0.25
	default:
		score = 0.15
	}

	if hasLinks {
		score += 0.2
	}
	if hasSubItems {
		score += 0.2
	}
	if n := len(firstField); n >= minTitleLen && n <= maxTitleLen {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
