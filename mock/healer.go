package mock

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.HealProvider = (*HealProvider)(nil)

// HealProvider is a mock implementation of driftex.HealProvider.
type HealProvider struct {
	GenerateSelectorsFn func(ctx context.Context, req driftex.HealRequest) (*driftex.SelectorVersion, error)
}

func (h *HealProvider) GenerateSelectors(ctx context.Context, req driftex.HealRequest) (*driftex.SelectorVersion, error) {
	return h.GenerateSelectorsFn(ctx, req)
}
