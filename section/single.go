package section

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.SectionExtractor = (*Single)(nil)

// Single locates a section that is logically one item, e.g. the identity
// block at the top of a profile. The first node the selector chain yields
// is the candidate.
type Single struct {
	Name      string
	Registry  driftex.SelectorRegistry
	Fallbacks []string
	Context   map[string]string
}

// Section returns the section name.
func (s *Single) Section() string { return s.Name }

// Extract locates the section's single candidate node.
func (s *Single) Extract(ctx context.Context, config driftex.SectionConfig) (*driftex.SectionResult, error) {
	if config.Root == nil {
		return nil, driftex.Errorf(driftex.EINVALID, "section %q: root node required", s.Name)
	}

	chain := chainFor(s.Registry, s.Name, s.Fallbacks)
	nodes, _, _ := locate(ctx, config.Root, chain)

	result := &driftex.SectionResult{Kind: driftex.KindSingle}
	if len(nodes) > 0 {
		result.Candidates = []driftex.Candidate{{
			Node:    nodes[0],
			Context: mergeContext(config.Context, s.Context),
		}}
	}
	return result, nil
}
