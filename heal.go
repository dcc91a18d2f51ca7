package driftex

import "context"

// HealRequest describes a section-total-failure to a selector provider.
type HealRequest struct {
	// Section that produced zero candidates across all strategies.
	Section string

	// FailedSelectors lists every selector that was tried.
	FailedSelectors []string

	// ExpectedShape hints at what the section's items look like
	// (e.g. "list of employment entries with title, company, dates").
	ExpectedShape string

	// HTMLSnippet is a bounded excerpt of the section's surrounding markup,
	// captured by the pipeline on total failure.
	HTMLSnippet string
}

// HealProvider generates a replacement selector version when every
// configured strategy has failed for a section. Providers are injected
// capabilities; the core pipeline never invokes one automatically and is
// fully functional with no provider present. The caller registers and
// activates the returned version explicitly.
type HealProvider interface {
	GenerateSelectors(ctx context.Context, req HealRequest) (*SelectorVersion, error)
}
