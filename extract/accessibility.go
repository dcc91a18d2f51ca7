package extract

import (
	"context"

	"github.com/jkoval/driftex"
)

// Selectors for text duplicated specifically for assistive technology.
// Such documents consistently expose the human-readable copy this way even
// when decorative class names churn, which makes this the highest-signal
// strategy.
const (
	ariaHiddenSelector     = `span[aria-hidden="true"]`
	visuallyHiddenSelector = ".visually-hidden"
)

var _ driftex.TextExtractor = (*Accessibility)(nil)

// Accessibility extracts text exposed for screen readers: elements
// explicitly marked as the visible-to-assistive-technology duplicate of
// decorative markup.
type Accessibility struct{}

// NewAccessibility creates a new Accessibility extractor.
func NewAccessibility() *Accessibility {
	return &Accessibility{}
}

// Name returns the strategy's identifier.
func (e *Accessibility) Name() string { return "accessibility" }

// Priority returns 0; this strategy is tried first.
func (e *Accessibility) Priority() int { return PriorityAccessibility }

// CanHandle reports whether the node carries any assistive-technology text.
func (e *Accessibility) CanHandle(ctx context.Context, node driftex.Node) bool {
	if n, err := node.Count(ctx, ariaHiddenSelector); err == nil && n > 0 {
		return true
	}
	n, err := node.Count(ctx, visuallyHiddenSelector)
	return err == nil && n > 0
}

// Extract pulls ordered fragments from the node's assistive-technology
// elements. Returns nil when the node yields no text.
func (e *Accessibility) Extract(ctx context.Context, node driftex.Node) (*driftex.ExtractedText, error) {
	result := e.extract(ctx, node, true)
	if result == nil {
		return nil, nil
	}
	return result, nil
}

func (e *Accessibility) extract(ctx context.Context, node driftex.Node, withSubItems bool) *driftex.ExtractedText {
	c := &collector{}
	e.collect(ctx, node, ariaHiddenSelector, c)
	if len(c.texts) == 0 {
		e.collect(ctx, node, visuallyHiddenSelector, c)
	}
	if len(c.texts) == 0 {
		return nil
	}

	links := collectLinks(ctx, node)

	var subItems []driftex.ExtractedText
	if withSubItems {
		// One level only: sub-items never have sub-items of their own.
		for _, item := range subItemNodes(ctx, node) {
			if sub := e.extract(ctx, item, false); sub != nil {
				subItems = append(subItems, *sub)
			}
		}
	}

	return &driftex.ExtractedText{
		Texts:      c.texts,
		Links:      links,
		SubItems:   subItems,
		Confidence: structuredScore(len(c.texts), len(links) > 0, len(subItems) > 0, c.texts[0], true),
	}
}

func (e *Accessibility) collect(ctx context.Context, node driftex.Node, selector string, c *collector) {
	found, err := node.Find(ctx, selector)
	if err != nil {
		return
	}
	for _, n := range found {
		text, err := n.Text(ctx)
		if err != nil {
			continue
		}
		c.add(text)
	}
}
