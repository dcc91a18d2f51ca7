package extract

import (
	"context"
	"strings"

	"github.com/jkoval/driftex"
)

var _ driftex.TextExtractor = (*Raw)(nil)

// Raw is the last-resort strategy: it flattens the node's full rendered
// text by line. It always produces something if any text exists, at a
// deliberately low confidence so it never outranks a structured strategy at
// equal field count.
type Raw struct{}

// NewRaw creates a new Raw extractor.
func NewRaw() *Raw {
	return &Raw{}
}

// Name returns the strategy's identifier.
func (e *Raw) Name() string { return "raw" }

// Priority returns 3; this strategy is tried last.
func (e *Raw) Priority() int { return PriorityRaw }

// CanHandle reports whether the node has any rendered text at all.
func (e *Raw) CanHandle(ctx context.Context, node driftex.Node) bool {
	text, err := node.Text(ctx)
	return err == nil && strings.TrimSpace(text) != ""
}

// Extract splits the node's rendered text into lines, dropping empty and
// oversized lines and collapsing adjacent identical ones. No global
// deduplication: field position is the only signal left at this point, so
// order must be preserved.
func (e *Raw) Extract(ctx context.Context, node driftex.Node) (*driftex.ExtractedText, error) {
	text, err := node.Text(ctx)
	if err != nil {
		return nil, nil
	}

	var lines []string
	prev := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > maxFragmentLen {
			continue
		}
		if line == prev {
			continue
		}
		lines = append(lines, line)
		prev = line
	}
	if len(lines) == 0 {
		return nil, nil
	}

	return &driftex.ExtractedText{
		Texts:      lines,
		Links:      collectLinks(ctx, node),
		Confidence: rawScore(len(lines)),
	}, nil
}

// rawScore uses a flat 0.15-0.4 scale keyed on line count alone.
func rawScore(lines int) float64 {
	switch {
	case lines >= 5:
		return 0.4
	case lines >= 3:
		return 0.3
	case lines == 2:
		return 0.22
	default:
		return 0.15
	}
}
