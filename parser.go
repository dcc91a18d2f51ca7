package driftex

// ParseInput is the bridge between text extraction and record parsing.
// Context carries section-scoped metadata (e.g. a tab category) that the
// parser may need but that is not itself extracted text.
type ParseInput struct {
	Texts    []string
	Links    []ExtractedLink
	SubItems []ParseInput
	Context  map[string]string
}

// Parser converts extracted text into a typed domain record.
type Parser[T any] interface {
	// Parse maps a ParseInput into a record using field-position and
	// content-shape heuristics. The second return is false when the input
	// does not yield a record.
	Parse(input ParseInput) (T, bool)

	// Validate reports whether a record is acceptable. The contract is
	// independent of extraction: it guards against capturing unrelated
	// text blobs, not against heuristic misclassification.
	Validate(record T) bool
}

// RawParser parses pre-segmented raw blocks directly, bypassing ParseInput.
// Parsers for labeled-panel sections (contacts et al.) implement it in
// addition to Parser.
type RawParser[T any] interface {
	Parser[T]

	// ParseRaw produces zero-to-many records per block and removes exact
	// duplicates across the whole section.
	ParseRaw(blocks []RawBlock) []T
}
