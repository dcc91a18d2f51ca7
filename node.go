package driftex

import "context"

// Node is a queryable handle into a rendered document. Implementations wrap
// a live browser element (rod/) or a parsed static document (goquery/).
//
// All operations are context-aware because live implementations may suspend
// awaiting document queries. Any operation may fail or return empty; callers
// treat both as "this node produced nothing" rather than as fatal errors.
type Node interface {
	// Find returns all descendant nodes matching the CSS selector.
	// Returns an empty slice (not an error) when nothing matches.
	Find(ctx context.Context, selector string) ([]Node, error)

	// Count returns the number of descendant nodes matching the selector.
	Count(ctx context.Context, selector string) (int, error)

	// Text returns the rendered text content of the node.
	Text(ctx context.Context) (string, error)

	// Attr returns the value of the named attribute.
	// Returns ENOTFOUND if the attribute is not present.
	Attr(ctx context.Context, name string) (string, error)

	// HTML returns the node's outer HTML markup.
	HTML(ctx context.Context) (string, error)
}

// Navigator loads a document view and returns its root node. Section
// extractors use it to reach a dedicated detail view when the primary view
// is truncated. Navigation sequences (scrolling, lazy-load triggers) belong
// to the implementation, not to the extraction pipeline.
type Navigator interface {
	Navigate(ctx context.Context, url string) (Node, error)
}
