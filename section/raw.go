package section

import (
	"context"
	"strings"

	"github.com/jkoval/driftex"
)

// headingSelector locates a raw block's heading element.
const headingSelector = "h2, h3"

var _ driftex.SectionExtractor = (*Raw)(nil)

// Raw locates sections whose item boundary is a labeled block rather than a
// repeated list item, e.g. a contact-details panel. It segments the section
// container into heading+text+links blocks.
type Raw struct {
	Name string

	Registry driftex.SelectorRegistry

	// Fallbacks are block selectors tried after the registry chain.
	Fallbacks []string

	// ContainerFallbacks are container selectors tried after the registry's
	// container chain. With no container match the document root is
	// segmented directly.
	ContainerFallbacks []string
}

// Section returns the section name.
func (s *Raw) Section() string { return s.Name }

// Extract segments the section container into raw blocks.
func (s *Raw) Extract(ctx context.Context, config driftex.SectionConfig) (*driftex.SectionResult, error) {
	if config.Root == nil {
		return nil, driftex.Errorf(driftex.EINVALID, "section %q: root node required", s.Name)
	}

	container := config.Root
	if containers, _, _ := locate(ctx, config.Root, containerChainFor(s.Registry, s.Name, s.ContainerFallbacks)); len(containers) > 0 {
		container = containers[0]
	}

	chain := chainFor(s.Registry, s.Name, s.Fallbacks)
	nodes, _, _ := locate(ctx, container, chain)

	result := &driftex.SectionResult{Kind: driftex.KindRaw}
	for _, n := range nodes {
		if block := segment(ctx, n); block != nil {
			result.Blocks = append(result.Blocks, *block)
		}
	}
	return result, nil
}

// segment converts one block node into a RawBlock: its heading, rendered
// text, parenthesis-wrapped label siblings, and anchors.
func segment(ctx context.Context, node driftex.Node) *driftex.RawBlock {
	block := &driftex.RawBlock{}

	if headings, err := node.Find(ctx, headingSelector); err == nil && len(headings) > 0 {
		if text, err := headings[0].Text(ctx); err == nil {
			block.Heading = strings.TrimSpace(text)
		}
	}

	if text, err := node.Text(ctx); err == nil {
		block.Text = strings.TrimSpace(text)
	}

	if spans, err := node.Find(ctx, "span"); err == nil {
		for _, span := range spans {
			text, err := span.Text(ctx)
			if err != nil {
				continue
			}
			if parenthesized(text) {
				block.Labels = append(block.Labels, strings.TrimSpace(text))
			}
		}
	}

	if anchors, err := node.Find(ctx, "a[href]"); err == nil {
		for _, a := range anchors {
			href, err := a.Attr(ctx, "href")
			if err != nil || href == "" {
				continue
			}
			text, _ := a.Text(ctx)
			block.Anchors = append(block.Anchors, driftex.Anchor{
				Href: href,
				Text: strings.TrimSpace(text),
			})
		}
	}

	if block.Heading == "" && block.Text == "" && len(block.Anchors) == 0 {
		return nil
	}
	return block
}
