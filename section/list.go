package section

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.SectionExtractor = (*List)(nil)

// List locates the repeated item nodes of a section. It is the common case:
// one candidate node per record.
type List struct {
	// Name is the section name used for registry lookups.
	Name string

	// Registry supplies the active selector version. Optional; with no
	// registry only the Fallbacks chain is tried.
	Registry driftex.SelectorRegistry

	// Fallbacks are selectors tried after the registry chain is exhausted.
	Fallbacks []string

	// Truncation, when non-empty, detects a "show more" affordance on the
	// primary view. Source documents commonly truncate collections there
	// but expose the full collection on a dedicated detail view.
	Truncation string

	// DetailPath is the detail view's path relative to the document base
	// URL, used together with a Navigator when the primary view is
	// truncated or empty.
	DetailPath string

	// Context is merged into every candidate's context.
	Context map[string]string
}

// Section returns the section name.
func (s *List) Section() string { return s.Name }

// Extract locates candidate nodes for the section, preferring the detail
// view whenever the primary view is truncated or empty and navigation is
// available.
func (s *List) Extract(ctx context.Context, config driftex.SectionConfig) (*driftex.SectionResult, error) {
	if config.Root == nil {
		return nil, driftex.Errorf(driftex.EINVALID, "section %q: root node required", s.Name)
	}

	chain := chainFor(s.Registry, s.Name, s.Fallbacks)
	nodes, _, _ := locate(ctx, config.Root, chain)

	if s.DetailPath != "" && config.Navigator != nil {
		if len(nodes) == 0 || isTruncated(ctx, config.Root, s.Truncation) {
			if detail := s.locateDetail(ctx, config, chain); len(detail) > 0 {
				nodes = detail
			}
		}
	}

	result := &driftex.SectionResult{Kind: driftex.KindList}
	itemCtx := mergeContext(config.Context, s.Context)
	for _, n := range nodes {
		result.Candidates = append(result.Candidates, driftex.Candidate{Node: n, Context: itemCtx})
	}
	return result, nil
}

// locateDetail navigates to the section's detail view and retries the
// selector chain there. Navigation failures yield nothing; the primary-view
// result stands.
func (s *List) locateDetail(ctx context.Context, config driftex.SectionConfig, chain []string) []driftex.Node {
	u := detailURL(config.BaseURL, s.DetailPath)
	if u == "" {
		return nil
	}
	root, err := config.Navigator.Navigate(ctx, u)
	if err != nil || root == nil {
		return nil
	}
	nodes, _, _ := locate(ctx, root, chain)
	return nodes
}
