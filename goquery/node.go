// Package goquery provides a static document node backed by parsed HTML.
// It implements the driftex.Node contract over goquery selections, which
// makes the extraction pipeline runnable against fixture HTML without a
// browser.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jkoval/driftex"
	"golang.org/x/net/html"
)

var _ driftex.Node = (*Node)(nil)

// Node wraps a goquery selection as a driftex.Node.
type Node struct {
	sel *goquery.Selection
}

// NewDocument parses an HTML document and returns its root node.
func NewDocument(rawHTML string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, driftex.Errorf(driftex.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Find returns all descendant nodes matching the CSS selector.
func (n *Node) Find(ctx context.Context, selector string) ([]driftex.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var nodes []driftex.Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes, nil
}

// Count returns the number of descendant nodes matching the selector.
func (n *Node) Count(ctx context.Context, selector string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return n.sel.Find(selector).Length(), nil
}

// Text returns the node's text content with line breaks preserved at block
// element boundaries, approximating rendered text.
func (n *Node) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, node := range n.sel.Nodes {
		renderText(node, &b)
	}
	return strings.TrimSpace(b.String()), nil
}

// Attr returns the value of the named attribute.
// Returns ENOTFOUND if the attribute is not present.
func (n *Node) Attr(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	value, ok := n.sel.Attr(name)
	if !ok {
		return "", driftex.Errorf(driftex.ENOTFOUND, "attribute %q not present", name)
	}
	return value, nil
}

// HTML returns the node's outer HTML markup.
func (n *Node) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, node := range n.sel.Nodes {
		if err := html.Render(&b, node); err != nil {
			return "", driftex.Errorf(driftex.EINTERNAL, "failed to render HTML: %v", err)
		}
	}
	return b.String(), nil
}

// blockElements are elements that terminate a line in rendered text.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "section": true, "article": true,
}

// renderText walks the node tree appending text content, inserting newlines
// at block element boundaries so line-oriented extraction sees the same
// shape a browser would render.
func renderText(node *html.Node, b *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		if text := strings.TrimSpace(node.Data); text != "" {
			b.WriteString(text)
			b.WriteString(" ")
		}
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		if node.Data == "br" {
			b.WriteString("\n")
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		renderText(child, b)
	}
	if node.Type == html.ElementNode && blockElements[node.Data] {
		b.WriteString("\n")
	}
}
