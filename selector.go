package driftex

import "time"

// SectionSelectors holds the ordered candidate selectors for one section.
// ItemSelectors are tried in order until one yields at least one node.
// ContainerSelectors, when present, locate the section's enclosing element
// (used for raw segmentation and snippet capture).
type SectionSelectors struct {
	ItemSelectors      []string `json:"itemSelectors"`
	ContainerSelectors []string `json:"containerSelectors,omitempty"`
}

// SelectorVersion is a complete, versioned selector set covering every
// known section. Versions are swapped wholesale: either a built-in default,
// an explicitly loaded file, or a self-heal-generated replacement.
type SelectorVersion struct {
	Version   string                      `json:"version"`
	UpdatedAt time.Time                   `json:"updatedAt"`
	Sections  map[string]SectionSelectors `json:"sections"`
}

// SelectorRegistry is the process-wide, mutable, versioned table mapping
// section name to candidate selectors. It is passed by handle into section
// extractors; its lifecycle (seed, swap, persist) is an explicit API rather
// than hidden module state.
type SelectorRegistry interface {
	// GetSection returns the active version's selectors for a section.
	// The second return is false when the section is unknown.
	GetSection(name string) (SectionSelectors, bool)

	// ActiveVersion returns the currently active version.
	ActiveVersion() SelectorVersion

	// SetActiveVersion switches the active version by id.
	// Returns false (and leaves the active version unchanged) if the id is
	// not registered.
	SetActiveVersion(id string) bool

	// Register upserts a version. Registering an already-known version id
	// replaces it.
	Register(version SelectorVersion)

	// Load replaces the registered versions with the contents of a selector
	// file and activates the loaded version.
	Load(path string) error

	// Save writes the active version to a selector file.
	Save(path string) error
}
