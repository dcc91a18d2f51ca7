// Package selector provides the process-wide versioned selector registry.
// Selector sets are swapped wholesale by version id: a built-in default
// seeds the registry, explicitly loaded files or self-heal-generated
// versions replace it at runtime. Persistence is an explicit load/save API
// against a flat JSON file; nothing is persisted implicitly.
package selector

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/jkoval/driftex"
)

var _ driftex.SelectorRegistry = (*Registry)(nil)

// Registry is the mutable, versioned selector table. Safe for concurrent
// use: the active-version pointer may be swapped between pipeline runs.
type Registry struct {
	mu       sync.RWMutex
	versions map[string]driftex.SelectorVersion
	active   string
}

// NewRegistry creates a Registry seeded with the built-in default version.
func NewRegistry() *Registry {
	def := DefaultVersion()
	return &Registry{
		versions: map[string]driftex.SelectorVersion{def.Version: def},
		active:   def.Version,
	}
}

// GetSection returns the active version's selectors for a section.
func (r *Registry) GetSection(name string) (driftex.SectionSelectors, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sels, ok := r.versions[r.active].Sections[name]
	return sels, ok
}

// ActiveVersion returns the currently active version.
func (r *Registry) ActiveVersion() driftex.SelectorVersion {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.versions[r.active]
}

// SetActiveVersion switches the active version by id. Returns false and
// leaves the active version unchanged if the id is not registered.
func (r *Registry) SetActiveVersion(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.versions[id]; !ok {
		return false
	}
	r.active = id
	return true
}

// Register upserts a version. It does not change the active version.
func (r *Registry) Register(version driftex.SelectorVersion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[version.Version] = version
}

// Versions returns the registered version ids.
func (r *Registry) Versions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.versions))
	for id := range r.versions {
		ids = append(ids, id)
	}
	return ids
}

// Load reads a selector file, registers its version, and activates it.
func (r *Registry) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return driftex.Errorf(driftex.ENOTFOUND, "selector file %q: %v", path, err)
	}
	var version driftex.SelectorVersion
	if err := json.Unmarshal(data, &version); err != nil {
		return driftex.Errorf(driftex.EINVALID, "selector file %q: %v", path, err)
	}
	if version.Version == "" {
		return driftex.Errorf(driftex.EINVALID, "selector file %q: version id required", path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[version.Version] = version
	r.active = version.Version
	return nil
}

// Save writes the active version to a selector file.
func (r *Registry) Save(path string) error {
	r.mu.RLock()
	version := r.versions[r.active]
	r.mu.RUnlock()

	data, err := json.MarshalIndent(version, "", "  ")
	if err != nil {
		return driftex.Errorf(driftex.EINTERNAL, "failed to encode selector version: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return driftex.Errorf(driftex.EINTERNAL, "failed to write selector file %q: %v", path, err)
	}
	return nil
}

// Merge overlays the sections of a partial version (e.g. one generated by
// self-heal for a single failed section) onto a base version. The result
// carries the overlay's version id and timestamp so it can be registered
// and activated wholesale without losing the base's other sections.
func Merge(base, overlay driftex.SelectorVersion) driftex.SelectorVersion {
	merged := driftex.SelectorVersion{
		Version:   overlay.Version,
		UpdatedAt: overlay.UpdatedAt,
		Sections:  make(map[string]driftex.SectionSelectors, len(base.Sections)+len(overlay.Sections)),
	}
	for name, sels := range base.Sections {
		merged.Sections[name] = sels
	}
	for name, sels := range overlay.Sections {
		merged.Sections[name] = sels
	}
	return merged
}

// Section names covered by the built-in default version.
const (
	SectionTopCard         = "topcard"
	SectionExperience      = "experience"
	SectionEducation       = "education"
	SectionAccomplishments = "accomplishments"
	SectionPatents         = "patents"
	SectionContacts        = "contacts"
	SectionInterests       = "interests"
)

// DefaultVersion returns the built-in selector version the registry is
// seeded with. Selector order within a section is significant: the chain is
// tried until one selector yields at least one node.
func DefaultVersion() driftex.SelectorVersion {
	return driftex.SelectorVersion{
		Version:   "builtin-2025.1",
		UpdatedAt: time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC),
		Sections: map[string]driftex.SectionSelectors{
			SectionTopCard: {
				ItemSelectors: []string{
					"section.top-card",
					`[data-view-name="profile-card"] .profile-topcard`,
					"main section:first-of-type",
				},
			},
			SectionExperience: {
				ItemSelectors: []string{
					"section#experience li.experience-item",
					`#experience ~ div [data-view-name="profile-component-entity"]`,
					"section#experience ul > li",
				},
				ContainerSelectors: []string{"section#experience"},
			},
			SectionEducation: {
				ItemSelectors: []string{
					"section#education li.education-item",
					`#education ~ div [data-view-name="profile-component-entity"]`,
					"section#education ul > li",
				},
				ContainerSelectors: []string{"section#education"},
			},
			SectionAccomplishments: {
				ItemSelectors: []string{
					"section.accomplishments li.accomplishment-entry",
					"section#accomplishments ul > li",
				},
				ContainerSelectors: []string{"section#accomplishments"},
			},
			SectionPatents: {
				ItemSelectors: []string{
					"section#patents li.patent-entry",
					"section#patents ul > li",
				},
				ContainerSelectors: []string{"section#patents"},
			},
			SectionContacts: {
				ItemSelectors: []string{
					"section.contact-info div.contact-entry",
					"#contact-info section",
				},
				ContainerSelectors: []string{
					"div.contact-info-panel",
					"#contact-info",
				},
			},
			SectionInterests: {
				ItemSelectors: []string{
					"section#interests li.interest-entity",
					"section#interests ul > li",
				},
				ContainerSelectors: []string{"section#interests"},
			},
		},
	}
}
