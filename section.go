package driftex

import "context"

// ResultKind discriminates the shapes a section extractor can produce.
type ResultKind string

// Section result kinds.
const (
	// KindList is a sequence of candidate nodes, one per repeated item.
	KindList ResultKind = "list"
	// KindSingle is one candidate node for a section that is logically one
	// item (e.g. a summary block).
	KindSingle ResultKind = "single"
	// KindRaw is a sequence of pre-segmented labeled blocks, used where the
	// item boundary is a labeled panel rather than a repeated list.
	KindRaw ResultKind = "raw"
)

// Candidate pairs a node that might represent one structured item with
// section-scoped context the parser may need (e.g. a tab category).
type Candidate struct {
	Node    Node
	Context map[string]string
}

// Anchor is a hyperlink inside a raw block.
type Anchor struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// RawBlock is a pre-segmented heading+text+links unit produced for sections
// whose items are labeled panels (e.g. a contact-details pane).
type RawBlock struct {
	Heading string   `json:"heading"`
	Text    string   `json:"text"`
	Labels  []string `json:"labels,omitempty"`
	Anchors []Anchor `json:"anchors,omitempty"`
}

// SectionResult is the closed tagged union returned by a section extractor.
// Exactly one of Candidates or Blocks is populated, per Kind.
type SectionResult struct {
	Kind       ResultKind
	Candidates []Candidate // KindList, KindSingle
	Blocks     []RawBlock  // KindRaw
}

// SectionConfig carries everything a section extractor needs for one run.
// Navigation to the primary view has already been performed by the caller;
// Root is that view's root node.
type SectionConfig struct {
	// BaseURL of the document, used to resolve relative links and to build
	// detail-view URLs.
	BaseURL string

	// Root is the currently loaded view.
	Root Node

	// Navigator, when present, lets the extractor reach a dedicated detail
	// view if the primary view is truncated. Optional.
	Navigator Navigator

	// Context is section-scoped metadata propagated to every candidate.
	Context map[string]string
}

// SectionExtractor locates candidate nodes (or raw blocks) for one logical
// section of a document.
type SectionExtractor interface {
	// Section returns the section name used for selector registry lookups
	// and diagnostics.
	Section() string

	// Extract locates candidates for the section. A result with zero
	// candidates and zero blocks means total failure for this section;
	// the error is reserved for invalid configuration.
	Extract(ctx context.Context, config SectionConfig) (*SectionResult, error)
}
