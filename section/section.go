// Package section locates candidate item nodes for logical document
// sections. Each extractor resolves an ordered selector chain against the
// active selector version, tries the currently loaded view first, and can
// retry on a dedicated detail view when the primary view is truncated
// behind a "show more" affordance.
package section

import (
	"context"
	"net/url"
	"strings"

	"github.com/jkoval/driftex"
)

// locate tries each selector in order against the root until one yields at
// least one node. It returns the nodes, the selector that matched, and the
// full list of selectors tried. Node-query failures on one selector never
// abort the chain.
func locate(ctx context.Context, root driftex.Node, selectors []string) ([]driftex.Node, string, []string) {
	var tried []string
	for _, sel := range selectors {
		tried = append(tried, sel)
		nodes, err := root.Find(ctx, sel)
		if err != nil || len(nodes) == 0 {
			continue
		}
		return nodes, sel, tried
	}
	return nil, "", tried
}

// chainFor resolves the selector chain for a section: the active version's
// item selectors followed by the extractor's registered fallbacks.
func chainFor(registry driftex.SelectorRegistry, name string, fallbacks []string) []string {
	var chain []string
	if registry != nil {
		if sels, ok := registry.GetSection(name); ok {
			chain = append(chain, sels.ItemSelectors...)
		}
	}
	return append(chain, fallbacks...)
}

// containerChainFor resolves the container selector chain for a section.
func containerChainFor(registry driftex.SelectorRegistry, name string, fallbacks []string) []string {
	var chain []string
	if registry != nil {
		if sels, ok := registry.GetSection(name); ok {
			chain = append(chain, sels.ContainerSelectors...)
		}
	}
	return append(chain, fallbacks...)
}

// detailURL joins the document base URL with a section detail path.
func detailURL(baseURL, detailPath string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(detailPath)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// mergeContext overlays the extractor's own context onto the section
// config's context.
func mergeContext(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	merged := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// isTruncated reports whether the view shows a truncation affordance.
func isTruncated(ctx context.Context, root driftex.Node, selector string) bool {
	if selector == "" {
		return false
	}
	n, err := root.Count(ctx, selector)
	return err == nil && n > 0
}

// parenthesized reports whether a text fragment is wrapped in parentheses,
// the shape label annotations take in labeled panels.
func parenthesized(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) > 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
}
