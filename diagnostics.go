package driftex

import "time"

// RunState is the pipeline's per-section state machine. Terminal on
// StateDone.
type RunState string

// Pipeline run states, in order.
const (
	StateNotStarted    RunState = "not_started"
	StateLocatingItems RunState = "locating_items"
	StateExtracting    RunState = "extracting_text"
	StateParsing       RunState = "parsing"
	StateDeduplicating RunState = "deduplicating"
	StateDone          RunState = "done"
)

// Diagnostics is the advisory telemetry record for one pipeline run.
// Created once per run, immutable after return, never persisted by the
// pipeline itself.
type Diagnostics struct {
	RunID   string   `json:"runId"`
	Section string   `json:"section"`
	State   RunState `json:"state"`

	// AttemptedExtractors lists every strategy invoked during the run, in
	// invocation order, deduplicated.
	AttemptedExtractors []string `json:"attemptedExtractors"`

	// UsedExtractor is the strategy that produced the majority of accepted
	// extractions, empty when nothing was accepted.
	UsedExtractor string `json:"usedExtractor,omitempty"`

	ItemsFound  int `json:"itemsFound"`
	ItemsParsed int `json:"itemsParsed"`
	ItemsFailed int `json:"itemsFailed"`

	// LowConfidence counts items kept via the best-below-threshold
	// fallback.
	LowConfidence int `json:"lowConfidence"`

	// AvgConfidence is the mean confidence of accepted extractions.
	AvgConfidence float64 `json:"avgConfidence"`

	Duration time.Duration `json:"duration"`

	// Snippet is a bounded excerpt of the section root's markup, captured
	// only on total failure when capture is enabled. SnippetHash is its
	// xxhash, usable as a cheap change detector between failed runs.
	Snippet     string `json:"snippet,omitempty"`
	SnippetHash string `json:"snippetHash,omitempty"`
}
