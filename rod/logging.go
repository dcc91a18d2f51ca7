package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/jkoval/driftex"
)

var _ driftex.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with debug logging.
type LoggingNavigator struct {
	next   driftex.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next driftex.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped
// navigator.
func (n *LoggingNavigator) Navigate(ctx context.Context, url string) (node driftex.Node, err error) {
	defer func(begin time.Time) {
		n.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Navigate(ctx, url)
}
