package rod

import (
	"context"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jkoval/driftex"
)

var _ driftex.Navigator = (*Navigator)(nil)

// Navigator loads document views in browser pages and returns live root
// nodes. Pages stay open for the lifetime of the nodes they back; Close
// releases them all.
//
// Navigator is safe for concurrent use, but the nodes it returns share one
// browser and must each be used from a single extraction context at a time.
type Navigator struct {
	manager *BrowserManager

	mu    sync.Mutex
	pages []*rod.Page
}

// NewNavigator creates a Navigator on top of a BrowserManager.
func NewNavigator(manager *BrowserManager) *Navigator {
	return &Navigator{manager: manager}
}

// Navigate opens a page at the URL, waits for it to load, and returns the
// document body as the root node.
func (n *Navigator) Navigate(ctx context.Context, url string) (driftex.Node, error) {
	page, err := n.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "failed to open page: %v", err)
	}
	page = page.Context(ctx)

	n.mu.Lock()
	n.pages = append(n.pages, page)
	n.mu.Unlock()

	if err := page.Navigate(url); err != nil {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "failed to navigate to %q: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "page load for %q: %v", url, err)
	}

	body, err := page.Element("body")
	if err != nil {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "document body for %q: %v", url, err)
	}

	n.manager.IncrementPageCount()
	return &Node{el: body}, nil
}

// Close closes every page this Navigator opened. The underlying browser is
// owned by the BrowserManager and is closed separately.
func (n *Navigator) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var firstErr error
	for _, page := range n.pages {
		if err := page.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	n.pages = nil
	return firstErr
}
