// Package http provides an HTTP-based implementation of driftex.Navigator
// for documents that render without JavaScript: saved pages served from a
// local server, mirrors, or fixture servers in tests.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/goquery"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with the browser navigator's load timeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Navigator implements driftex.Navigator at compile time.
var _ driftex.Navigator = (*Navigator)(nil)

// Navigator retrieves documents over plain HTTP and parses them into static
// nodes. Unlike rod.Navigator this does not execute JavaScript, so it only
// sees markup the server ships.
type Navigator struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(n *Navigator) {
		n.timeout = d
	}
}

// NewNavigator creates a new HTTP-based Navigator.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(n)
	}

	n.client = &http.Client{
		Timeout: n.timeout,
	}

	return n
}

// Navigate fetches the document at url and returns its root node.
func (n *Navigator) Navigate(ctx context.Context, url string) (driftex.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, driftex.Errorf(driftex.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "failed to fetch %q: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, driftex.Errorf(driftex.EUNAVAILABLE, "failed to read %q: %v", url, err)
	}

	doc, err := goquery.NewDocument(string(body))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Close releases resources. For the HTTP navigator this is a no-op since
// http.Client doesn't require explicit cleanup.
func (n *Navigator) Close() error {
	return nil
}
