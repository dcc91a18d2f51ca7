// Package slog provides logging decorators for driftex interfaces.
package slog

import (
	"log/slog"

	"github.com/jkoval/driftex"
)

// Ensure LoggingRegistry implements driftex.SelectorRegistry.
var _ driftex.SelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a SelectorRegistry with logging for version
// lifecycle events. Section lookups happen in the hot path and are logged
// at debug level only.
type LoggingRegistry struct {
	next   driftex.SelectorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next driftex.SelectorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// GetSection delegates to the wrapped registry.
func (r *LoggingRegistry) GetSection(name string) (driftex.SectionSelectors, bool) {
	sels, ok := r.next.GetSection(name)
	if !ok {
		r.logger.Debug("selector lookup miss", "section", name)
	}
	return sels, ok
}

// ActiveVersion delegates to the wrapped registry.
func (r *LoggingRegistry) ActiveVersion() driftex.SelectorVersion {
	return r.next.ActiveVersion()
}

// SetActiveVersion logs the version swap and delegates.
func (r *LoggingRegistry) SetActiveVersion(id string) bool {
	ok := r.next.SetActiveVersion(id)
	r.logger.Info("selector version activation", "version", id, "ok", ok)
	return ok
}

// Register logs the upsert and delegates.
func (r *LoggingRegistry) Register(version driftex.SelectorVersion) {
	r.logger.Info("selector version registered",
		"version", version.Version,
		"sections", len(version.Sections),
	)
	r.next.Register(version)
}

// Load logs the file load and delegates.
func (r *LoggingRegistry) Load(path string) error {
	err := r.next.Load(path)
	r.logger.Info("selector file load", "path", path, "err", err)
	return err
}

// Save logs the file save and delegates.
func (r *LoggingRegistry) Save(path string) error {
	err := r.next.Save(path)
	r.logger.Info("selector file save", "path", path, "err", err)
	return err
}
