// Package visit coordinates extraction across multiple document URLs. Each
// URL is loaded in its own page, so visits may run concurrently: the
// extraction pipeline itself assumes single-context use, and the per-page
// isolation is what makes the fan-out safe.
package visit

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/jkoval/driftex"
	"golang.org/x/sync/errgroup"
)

// ExtractFunc runs the per-section pipelines against one loaded document
// and returns the assembled profile. It is called once per visited URL with
// that URL's own root node.
type ExtractFunc func(ctx context.Context, root driftex.Node, url string) (*driftex.Profile, error)

// Progress reports the outcome of one visited URL.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as visits complete.
type ProgressFunc func(Progress)

// Visitor visits document URLs and runs an extraction function against
// each.
type Visitor struct {
	Navigator driftex.Navigator
	Limiter   Limiter

	// Concurrency bounds parallel visits. Values below 1 mean sequential.
	Concurrency int

	// RetryDelays configures navigation backoff; nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Result holds the outcome of a visit campaign.
type Result struct {
	Profiles []*driftex.Profile
	Failed   int
}

// VisitAll loads every URL and extracts a profile from each. Per-URL
// failures are reported through the progress callback and counted, never
// fatal; the returned error is reserved for context cancellation.
func (v *Visitor) VisitAll(ctx context.Context, urls []string, extract ExtractFunc, progress ProgressFunc) (*Result, error) {
	delays := v.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	concurrency := v.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	profiles := make([]*driftex.Profile, len(urls))
	var failed, completed int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			profile, err := v.visitOne(gctx, u, delays, extract)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				atomic.AddInt64(&failed, 1)
			} else {
				profiles[i] = profile
			}

			if progress != nil {
				progress(Progress{
					URL:       u,
					Completed: int(atomic.AddInt64(&completed, 1)),
					Total:     len(urls),
					Err:       err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Failed: int(failed)}
	for _, p := range profiles {
		if p != nil {
			result.Profiles = append(result.Profiles, p)
		}
	}
	return result, nil
}

func (v *Visitor) visitOne(ctx context.Context, rawURL string, delays []time.Duration, extract ExtractFunc) (*driftex.Profile, error) {
	if v.Limiter != nil {
		if err := v.Limiter.Wait(ctx, domainOf(rawURL)); err != nil {
			return nil, err
		}
	}

	root, err := navigateWithRetry(ctx, v.Navigator, rawURL, delays)
	if err != nil {
		return nil, err
	}

	return extract(ctx, root, rawURL)
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
