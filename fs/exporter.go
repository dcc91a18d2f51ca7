// Package fs provides file-based export of extracted profiles.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jkoval/driftex"
)

// URLToPath converts a profile URL to a relative file path.
// Example: https://example.com/in/jane-doe → in/jane-doe.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.json
	if path == "" || path == "/" {
		return "index.json", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.json in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.json", nil
	}

	// Otherwise append .json
	return path + ".json", nil
}

// Exporter writes profiles as JSON files to a directory, one file per
// source URL.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter that writes to the given base
// directory.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// ExportProfile writes a profile to disk as a JSON file.
func (e *Exporter) ExportProfile(ctx context.Context, profile *driftex.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(profile.URL)
	if err != nil {
		return driftex.Errorf(driftex.EINVALID, "profile URL %q: %v", profile.URL, err)
	}

	fullPath := filepath.Join(e.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return driftex.Errorf(driftex.EINTERNAL, "failed to encode profile: %v", err)
	}
	return os.WriteFile(fullPath, append(data, '\n'), 0644)
}
