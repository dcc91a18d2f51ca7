package extract

import (
	"context"

	"github.com/jkoval/driftex"
)

// Semantic element selectors. Headings and paragraphs survive cosmetic
// class renames; the inline fallback catches nodes that carry their text in
// generic containers.
const (
	headingSelector = "h1, h2, h3, h4, h5, h6, p"
	inlineSelector  = "span"
)

var _ driftex.TextExtractor = (*Semantic)(nil)

// Semantic extracts heading-level and paragraph-level text, falling back to
// generic inline containers when the node has no headings or paragraphs.
// Resilient to cosmetic class renames but not to wholesale element-type
// changes.
type Semantic struct{}

// NewSemantic creates a new Semantic extractor.
func NewSemantic() *Semantic {
	return &Semantic{}
}

// Name returns the strategy's identifier.
func (e *Semantic) Name() string { return "semantic" }

// Priority returns 1; this strategy is tried after the accessibility one.
func (e *Semantic) Priority() int { return PrioritySemantic }

// CanHandle reports whether the node carries semantic or inline text
// elements.
func (e *Semantic) CanHandle(ctx context.Context, node driftex.Node) bool {
	if n, err := node.Count(ctx, headingSelector); err == nil && n > 0 {
		return true
	}
	n, err := node.Count(ctx, inlineSelector)
	return err == nil && n > 0
}

// Extract pulls ordered fragments from the node's semantic elements.
// Returns nil when the node yields no text.
func (e *Semantic) Extract(ctx context.Context, node driftex.Node) (*driftex.ExtractedText, error) {
	result := e.extract(ctx, node, true)
	if result == nil {
		return nil, nil
	}
	return result, nil
}

func (e *Semantic) extract(ctx context.Context, node driftex.Node, withSubItems bool) *driftex.ExtractedText {
	c := &collector{}
	e.collect(ctx, node, headingSelector, c)
	if len(c.texts) == 0 {
		e.collect(ctx, node, inlineSelector, c)
	}
	if len(c.texts) == 0 {
		return nil
	}

	links := collectLinks(ctx, node)

	var subItems []driftex.ExtractedText
	if withSubItems {
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
		Confidence: structuredScore(len(c.texts), len(links) > 0, len(subItems) > 0, c.texts[0], false),
	}
}

func (e *Semantic) collect(ctx context.Context, node driftex.Node, selector string, c *collector) {
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
