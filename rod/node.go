// Package rod provides the live-browser implementation of the document
// node contract using Chrome automation. Nodes wrap rendered elements in an
// open page; queries may suspend awaiting the browser and surface failures
// that the pipeline treats as per-item misses.
package rod

import (
	"context"
	"strings"

	"github.com/go-rod/rod"
	"github.com/jkoval/driftex"
)

var _ driftex.Node = (*Node)(nil)

// Node wraps a rendered element as a driftex.Node.
type Node struct {
	el *rod.Element
}

// NewNode wraps an element.
func NewNode(el *rod.Element) *Node {
	return &Node{el: el}
}

// Find returns all descendant elements matching the CSS selector.
func (n *Node) Find(ctx context.Context, selector string) ([]driftex.Node, error) {
	els, err := n.el.Context(ctx).Elements(selector)
	if err != nil {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "element query %q: %v", selector, err)
	}
	nodes := make([]driftex.Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, &Node{el: el})
	}
	return nodes, nil
}

// Count returns the number of descendant elements matching the selector.
func (n *Node) Count(ctx context.Context, selector string) (int, error) {
	els, err := n.el.Context(ctx).Elements(selector)
	if err != nil {
		return 0, driftex.Errorf(driftex.EUNAVAILABLE, "element query %q: %v", selector, err)
	}
	return len(els), nil
}

// Text returns the element's visible text.
func (n *Node) Text(ctx context.Context) (string, error) {
	text, err := n.el.Context(ctx).Text()
	if err != nil {
		return "", driftex.Errorf(driftex.EUNAVAILABLE, "element text: %v", err)
	}
	return strings.TrimSpace(text), nil
}

// Attr returns the value of the named attribute.
// Returns ENOTFOUND if the attribute is not present.
func (n *Node) Attr(ctx context.Context, name string) (string, error) {
	value, err := n.el.Context(ctx).Attribute(name)
	if err != nil {
		return "", driftex.Errorf(driftex.EUNAVAILABLE, "element attribute %q: %v", name, err)
	}
	if value == nil {
		return "", driftex.Errorf(driftex.ENOTFOUND, "attribute %q not present", name)
	}
	return *value, nil
}

// HTML returns the element's outer HTML markup.
func (n *Node) HTML(ctx context.Context) (string, error) {
	markup, err := n.el.Context(ctx).HTML()
	if err != nil {
		return "", driftex.Errorf(driftex.EUNAVAILABLE, "element HTML: %v", err)
	}
	return markup, nil
}
