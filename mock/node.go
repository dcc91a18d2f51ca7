package mock

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.Node = (*Node)(nil)

// Node is a mock implementation of driftex.Node.
type Node struct {
	FindFn  func(ctx context.Context, selector string) ([]driftex.Node, error)
	CountFn func(ctx context.Context, selector string) (int, error)
	TextFn  func(ctx context.Context) (string, error)
	AttrFn  func(ctx context.Context, name string) (string, error)
	HTMLFn  func(ctx context.Context) (string, error)
}

func (n *Node) Find(ctx context.Context, selector string) ([]driftex.Node, error) {
	return n.FindFn(ctx, selector)
}

func (n *Node) Count(ctx context.Context, selector string) (int, error) {
	return n.CountFn(ctx, selector)
}

func (n *Node) Text(ctx context.Context) (string, error) {
	return n.TextFn(ctx)
}

func (n *Node) Attr(ctx context.Context, name string) (string, error) {
	return n.AttrFn(ctx, name)
}

func (n *Node) HTML(ctx context.Context) (string, error) {
	return n.HTMLFn(ctx)
}
