package visit

import (
	"context"
	"time"

	"github.com/jkoval/driftex"
)

// DefaultRetryDelays returns the backoff delays for navigation retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// navigateWithRetry attempts to load a document view with backoff between
// attempts. Transient browser failures during long visit campaigns usually
// clear within a retry or two.
func navigateWithRetry(ctx context.Context, nav driftex.Navigator, url string, delays []time.Duration) (driftex.Node, error) {
	attempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		root, err := nav.Navigate(ctx, url)
		if err == nil {
			return root, nil
		}
		lastErr = err

		if attempt >= attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return nil, lastErr
}
