package driftex

import (
	"context"
	"time"
)

// Profile is one extracted document snapshot: every record the pipelines
// produced during a single visit, plus the per-section diagnostics.
type Profile struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetchedAt"`

	TopCard         *TopCard         `json:"topCard,omitempty"`
	Experiences     []Experience     `json:"experiences,omitempty"`
	Educations      []Education      `json:"educations,omitempty"`
	Accomplishments []Accomplishment `json:"accomplishments,omitempty"`
	Patents         []Patent         `json:"patents,omitempty"`
	Contacts        []Contact        `json:"contacts,omitempty"`
	Interests       []Interest       `json:"interests,omitempty"`

	// Diagnostics are advisory copies of the per-section telemetry from
	// the visit that produced this snapshot.
	Diagnostics []Diagnostics `json:"diagnostics,omitempty"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "profile URL required")
	}
	return nil
}

// ProfileService represents a service for managing extracted profile
// snapshots.
type ProfileService interface {
	// CreateProfile stores a new profile snapshot.
	CreateProfile(ctx context.Context, profile *Profile) error

	// FindProfileByID retrieves a profile by ID.
	// Returns ENOTFOUND if the profile does not exist.
	FindProfileByID(ctx context.Context, id string) (*Profile, error)

	// FindProfiles retrieves profiles matching the filter, newest first.
	FindProfiles(ctx context.Context, filter ProfileFilter) ([]*Profile, error)

	// DeleteProfile permanently removes a profile.
	// Returns ENOTFOUND if the profile does not exist.
	DeleteProfile(ctx context.Context, id string) error
}

// ProfileFilter represents a filter for FindProfiles.
type ProfileFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
