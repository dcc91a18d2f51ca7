package mock

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of driftex.TextExtractor.
type TextExtractor struct {
	NameFn      func() string
	PriorityFn  func() int
	CanHandleFn func(ctx context.Context, node driftex.Node) bool
	ExtractFn   func(ctx context.Context, node driftex.Node) (*driftex.ExtractedText, error)
}

func (e *TextExtractor) Name() string {
	return e.NameFn()
}

func (e *TextExtractor) Priority() int {
	return e.PriorityFn()
}

func (e *TextExtractor) CanHandle(ctx context.Context, node driftex.Node) bool {
	return e.CanHandleFn(ctx, node)
}

func (e *TextExtractor) Extract(ctx context.Context, node driftex.Node) (*driftex.ExtractedText, error) {
	return e.ExtractFn(ctx, node)
}
