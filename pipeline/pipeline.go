// Package pipeline orchestrates one section run: candidate location, text
// extraction with strategy arbitration, parsing, deduplication, and
// diagnostics. Nothing inside a run is fatal; failures degrade to fewer
// items and lower confidence, never to an error from Run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/extract"
)

// DefaultThreshold is the confidence a strategy result must reach to be
// accepted without falling through to the next strategy. Looser domains use
// 0.25-0.3; contact panels use 0, where structure is sparse but reliable.
const DefaultThreshold = 0.5

// maxSnippetLen bounds the markup excerpt captured on total failure.
const maxSnippetLen = 8000

// Pipeline runs the extraction pipeline for one section and record type.
type Pipeline[T any] struct {
	section    driftex.SectionExtractor
	parser     driftex.Parser[T]
	extractors []driftex.TextExtractor
	threshold  float64
	keyFunc    func(T) string
	capture    bool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option[T any] func(*Pipeline[T])

// WithThreshold sets the confidence threshold. Zero is a valid threshold:
// it accepts the first strategy that produces any text.
func WithThreshold[T any](threshold float64) Option[T] {
	return func(p *Pipeline[T]) { p.threshold = threshold }
}

// WithExtractors replaces the default strategy set.
func WithExtractors[T any](extractors ...driftex.TextExtractor) Option[T] {
	return func(p *Pipeline[T]) { p.extractors = extractors }
}

// WithKeyFunc enables record deduplication keyed by fn; first-seen order is
// preserved.
func WithKeyFunc[T any](fn func(T) string) Option[T] {
	return func(p *Pipeline[T]) { p.keyFunc = fn }
}

// WithSnippetCapture enables capturing a bounded markup excerpt of the
// section root when a run produces zero items, for downstream self-heal
// use.
func WithSnippetCapture[T any]() Option[T] {
	return func(p *Pipeline[T]) { p.capture = true }
}

// WithLogger attaches a logger for per-item debug events.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(p *Pipeline[T]) { p.logger = logger }
}

// New creates a Pipeline for a section and parser. The default strategies
// are the built-in three, tried in priority order.
func New[T any](section driftex.SectionExtractor, parser driftex.Parser[T], opts ...Option[T]) *Pipeline[T] {
	p := &Pipeline[T]{
		section:    section,
		parser:     parser,
		extractors: extract.Default(),
		threshold:  DefaultThreshold,
	}
	for _, opt := range opts {
		opt(p)
	}
	sort.SliceStable(p.extractors, func(i, j int) bool {
		return p.extractors[i].Priority() < p.extractors[j].Priority()
	})
	return p
}

// Result is the output of one pipeline run.
type Result[T any] struct {
	Items       []T
	Diagnostics driftex.Diagnostics
}

// Run executes the section run. It never returns an error: node-query
// failures count as per-item failures, parse and validation rejections are
// discarded and counted, and a section-total-failure surfaces as an empty
// result plus diagnostics (and an optional captured snippet). The calling
// layer decides whether zero items for a mandatory section is an error.
func (p *Pipeline[T]) Run(ctx context.Context, config driftex.SectionConfig) Result[T] {
	start := time.Now()
	diag := driftex.Diagnostics{
		RunID:   uuid.NewString(),
		Section: p.section.Section(),
		State:   driftex.StateNotStarted,
	}

	diag.State = driftex.StateLocatingItems
	located, err := p.section.Extract(ctx, config)
	if err != nil || located == nil {
		if p.logger != nil {
			p.logger.Debug("section location failed", "section", diag.Section, "error", err)
		}
		located = &driftex.SectionResult{Kind: driftex.KindList}
	}

	base, _ := url.Parse(config.BaseURL)

	var items []T
	run := &runStats{used: make(map[string]int)}

	switch located.Kind {
	case driftex.KindRaw:
		diag.ItemsFound = len(located.Blocks)
		diag.State = driftex.StateParsing
		items = p.parseRaw(located.Blocks, config.Context, &diag)
	default:
		diag.ItemsFound = len(located.Candidates)
		for _, cand := range located.Candidates {
			diag.State = driftex.StateExtracting
			extracted, name, lowConfidence := p.extractOne(ctx, cand.Node, run)
			if extracted == nil {
				diag.ItemsFailed++
				continue
			}
			if lowConfidence {
				diag.LowConfidence++
			}
			run.accept(name, extracted.Confidence)

			diag.State = driftex.StateParsing
			record, ok := p.parser.Parse(toParseInput(*extracted, base, cand.Context))
			if !ok || !p.parser.Validate(record) {
				diag.ItemsFailed++
				continue
			}
			items = append(items, record)
			diag.ItemsParsed++
		}
	}

	diag.State = driftex.StateDeduplicating
	if p.keyFunc != nil {
		items = dedupe(items, p.keyFunc)
	}

	if len(items) == 0 && p.capture {
		p.captureSnippet(ctx, config.Root, &diag)
	}

	diag.AttemptedExtractors = run.attempted
	diag.UsedExtractor = run.mostUsed()
	diag.AvgConfidence = run.avgConfidence()
	diag.Duration = time.Since(start)
	diag.State = driftex.StateDone

	return Result[T]{Items: items, Diagnostics: diag}
}

// Items is a convenience wrapper returning only the records.
func (p *Pipeline[T]) Items(ctx context.Context, config driftex.SectionConfig) []T {
	return p.Run(ctx, config).Items
}

// extractOne tries strategies strictly in priority order and accepts the
// first whose confidence meets the threshold. Once a strategy is accepted
// no lower-priority strategy is invoked. If none meet the threshold the
// single best-scoring non-empty attempt is kept as a low-confidence
// fallback rather than discarding the item.
func (p *Pipeline[T]) extractOne(ctx context.Context, node driftex.Node, run *runStats) (*driftex.ExtractedText, string, bool) {
	var best *driftex.ExtractedText
	bestName := ""

	for _, extractor := range p.extractors {
		if !extractor.CanHandle(ctx, node) {
			continue
		}
		run.attempt(extractor.Name())

		extracted, err := extractor.Extract(ctx, node)
		if err != nil || extracted == nil || len(extracted.Texts) == 0 {
			continue
		}
		if extracted.Confidence >= p.threshold {
			return extracted, extractor.Name(), false
		}
		if best == nil || extracted.Confidence > best.Confidence {
			best = extracted
			bestName = extractor.Name()
		}
	}

	if best == nil {
		return nil, "", false
	}
	return best, bestName, true
}

// parseRaw handles the raw result kind: delegate to a raw-capable parser
// when the configured parser supports it, otherwise synthesize a generic
// ParseInput per block as a degraded path.
func (p *Pipeline[T]) parseRaw(blocks []driftex.RawBlock, sectionCtx map[string]string, diag *driftex.Diagnostics) []T {
	if rawParser, ok := p.parser.(driftex.RawParser[T]); ok {
		items := rawParser.ParseRaw(blocks)
		diag.ItemsParsed = len(items)
		return items
	}

	var items []T
	for _, block := range blocks {
		record, ok := p.parser.Parse(blockInput(block, sectionCtx))
		if !ok || !p.parser.Validate(record) {
			diag.ItemsFailed++
			continue
		}
		items = append(items, record)
		diag.ItemsParsed++
	}
	return items
}

// captureSnippet stores a bounded excerpt of the section root's markup in
// the diagnostics. Best-effort: any failure leaves the snippet empty.
func (p *Pipeline[T]) captureSnippet(ctx context.Context, root driftex.Node, diag *driftex.Diagnostics) {
	if root == nil {
		return
	}
	markup, err := root.HTML(ctx)
	if err != nil || markup == "" {
		return
	}
	if len(markup) > maxSnippetLen {
		cut := maxSnippetLen
		for cut > 0 && !utf8.RuneStart(markup[cut]) {
			cut--
		}
		markup = markup[:cut]
	}
	diag.Snippet = markup
	diag.SnippetHash = fmt.Sprintf("%016x", xxhash.Sum64String(markup))
}

// dedupe removes records with duplicate keys, keeping first-seen order.
func dedupe[T any](items []T, key func(T) string) []T {
	seen := make(map[uint64]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		h := xxhash.Sum64String(key(item))
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, item)
	}
	return out
}

// toParseInput converts an ExtractedText into a ParseInput, resolving link
// URLs against the document base and flagging external hosts.
func toParseInput(extracted driftex.ExtractedText, base *url.URL, context map[string]string) driftex.ParseInput {
	input := driftex.ParseInput{
		Texts:   extracted.Texts,
		Links:   normalizeLinks(extracted.Links, base),
		Context: context,
	}
	for _, sub := range extracted.SubItems {
		input.SubItems = append(input.SubItems, toParseInput(sub, base, context))
	}
	return input
}

func normalizeLinks(links []driftex.ExtractedLink, base *url.URL) []driftex.ExtractedLink {
	if base == nil {
		return links
	}
	out := make([]driftex.ExtractedLink, 0, len(links))
	for _, link := range links {
		ref, err := url.Parse(link.URL)
		if err != nil {
			continue
		}
		resolved := base.ResolveReference(ref)
		out = append(out, driftex.ExtractedLink{
			URL:        resolved.String(),
			Text:       link.Text,
			IsExternal: resolved.Host != base.Host,
		})
	}
	return out
}

// blockInput synthesizes a generic ParseInput from a raw block.
func blockInput(block driftex.RawBlock, context map[string]string) driftex.ParseInput {
	input := driftex.ParseInput{Context: context}
	if block.Heading != "" {
		input.Texts = append(input.Texts, block.Heading)
	}
	if block.Text != "" {
		input.Texts = append(input.Texts, block.Text)
	}
	for _, a := range block.Anchors {
		input.Links = append(input.Links, driftex.ExtractedLink{URL: a.Href, Text: a.Text})
	}
	return input
}

// runStats tracks which strategies were attempted and accepted during one
// run.
type runStats struct {
	attempted   []string
	attemptedBy map[string]bool
	used        map[string]int
	confidences []float64
}

func (r *runStats) attempt(name string) {
	if r.attemptedBy == nil {
		r.attemptedBy = make(map[string]bool)
	}
	if r.attemptedBy[name] {
		return
	}
	r.attemptedBy[name] = true
	r.attempted = append(r.attempted, name)
}

func (r *runStats) accept(name string, confidence float64) {
	r.used[name]++
	r.confidences = append(r.confidences, confidence)
}

// mostUsed returns the strategy that produced the most accepted
// extractions.
func (r *runStats) mostUsed() string {
	best, n := "", 0
	for name, count := range r.used {
		if count > n || (count == n && name < best) {
			best, n = name, count
		}
	}
	return best
}

func (r *runStats) avgConfidence() float64 {
	if len(r.confidences) == 0 {
		return 0
	}
	var sum float64
	for _, c := range r.confidences {
		sum += c
	}
	return sum / float64(len(r.confidences))
}
