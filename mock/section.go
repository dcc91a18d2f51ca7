package mock

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of driftex.SectionExtractor.
type SectionExtractor struct {
	SectionFn func() string
	ExtractFn func(ctx context.Context, config driftex.SectionConfig) (*driftex.SectionResult, error)
}

func (e *SectionExtractor) Section() string {
	return e.SectionFn()
}

func (e *SectionExtractor) Extract(ctx context.Context, config driftex.SectionConfig) (*driftex.SectionResult, error) {
	return e.ExtractFn(ctx, config)
}
