package parse

import "strings"

// Separators used by the source documents. The duration separator splits a
// date range from its trailing duration annotation ("Jan 2020 - Present ·
// 2 yrs 3 mos"); the range separator splits from and to.
const (
	rangeSeparator    = " - "
	durationSeparator = " · "
)

// Present is the canonical marker every ongoing keyword normalizes to.
const Present = "Present"

// ongoingKeywords are the end-date variants (matched case-insensitively)
// that mean "still ongoing".
var ongoingKeywords = []string{"present", "current", "now", "ongoing", "today"}

// DateRange is a parsed date field.
type DateRange struct {
	From     string
	To       string
	Duration string
}

// SplitDuration splits a date field into its date-range portion and its
// trailing duration annotation. The duration is empty when no annotation is
// present.
func SplitDuration(s string) (dates, duration string) {
	dates, duration, found := strings.Cut(s, durationSeparator)
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(dates), strings.TrimSpace(duration)
}

// ParseDateRange parses a date field into from/to plus an optional duration
// annotation.
//
// A single non-range date is treated as both from and to only when duration
// parsing was not requested (education-style single-year fields); otherwise
// it becomes from only, meaning still ongoing with unknown end
// (employment-style).
func ParseDateRange(s string, wantDuration bool) DateRange {
	dates, duration := SplitDuration(s)
	if !wantDuration {
		duration = ""
	}

	from, to, found := strings.Cut(dates, rangeSeparator)
	from = strings.TrimSpace(from)
	if found {
		return DateRange{
			From:     from,
			To:       NormalizeOngoing(strings.TrimSpace(to)),
			Duration: duration,
		}
	}

	if wantDuration {
		return DateRange{From: from, Duration: duration}
	}
	return DateRange{From: from, To: from}
}

// NormalizeOngoing maps any ongoing keyword variant (case-insensitive) to
// the canonical Present marker. Other values pass through unchanged.
func NormalizeOngoing(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, kw := range ongoingKeywords {
		if lower == kw {
			return Present
		}
	}
	return strings.TrimSpace(s)
}
