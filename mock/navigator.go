package mock

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of driftex.Navigator.
type Navigator struct {
	NavigateFn func(ctx context.Context, url string) (driftex.Node, error)
}

func (n *Navigator) Navigate(ctx context.Context, url string) (driftex.Node, error) {
	return n.NavigateFn(ctx, url)
}
