package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jkoval/driftex"
)

// Ensure LoggingHealer implements driftex.HealProvider.
var _ driftex.HealProvider = (*LoggingHealer)(nil)

// LoggingHealer wraps a HealProvider with logging. Self-heal calls are rare
// and expensive, so every call is logged at info level with its duration.
type LoggingHealer struct {
	next   driftex.HealProvider
	logger *slog.Logger
}

// NewLoggingHealer creates a new LoggingHealer.
func NewLoggingHealer(next driftex.HealProvider, logger *slog.Logger) *LoggingHealer {
	return &LoggingHealer{next: next, logger: logger}
}

// GenerateSelectors logs the heal attempt and delegates.
func (h *LoggingHealer) GenerateSelectors(ctx context.Context, req driftex.HealRequest) (version *driftex.SelectorVersion, err error) {
	defer func(begin time.Time) {
		id := ""
		if version != nil {
			id = version.Version
		}
		h.logger.Info("self-heal selector generation",
			"section", req.Section,
			"failedSelectors", len(req.FailedSelectors),
			"snippetBytes", len(req.HTMLSnippet),
			"version", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return h.next.GenerateSelectors(ctx, req)
}
