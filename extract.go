package driftex

import "context"

// ExtractedLink is a hyperlink found inside a candidate node. Ownership is
// transient: links are consumed immediately by the parser.
type ExtractedLink struct {
	URL        string `json:"url"`
	Text       string `json:"text"`
	IsExternal bool   `json:"isExternal"`
}

// ExtractedText is the output of one text extraction strategy applied to one
// candidate node.
//
// Texts is order-significant: the first element is the title-like field.
// Invariant: Texts contains no exact duplicates and no element that is a
// substring or superstring of another retained element.
type ExtractedText struct {
	Texts    []string        `json:"texts"`
	Links    []ExtractedLink `json:"links"`
	SubItems []ExtractedText `json:"subItems,omitempty"`

	// Confidence is a heuristic estimate in [0,1] of how trustworthy this
	// extraction is, derived from structural richness. Used only for
	// strategy arbitration, never surfaced as a correctness guarantee.
	Confidence float64 `json:"confidence"`
}

// TextExtractor turns one candidate node into an ExtractedText. Strategies
// are tried in ascending Priority order; the first whose result meets the
// caller's confidence threshold wins.
type TextExtractor interface {
	// Name identifies the strategy in diagnostics.
	Name() string

	// Priority orders strategies; lower is tried first.
	Priority() int

	// CanHandle is a cheap feasibility probe. A false return means Extract
	// would produce nothing useful for this node.
	CanHandle(ctx context.Context, node Node) bool

	// Extract pulls ordered text fragments, links, and optional sub-items
	// from the node. Returns nil (no error) when the node yields nothing.
	Extract(ctx context.Context, node Node) (*ExtractedText, error)
}
