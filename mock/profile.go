package mock

import (
	"context"

	"github.com/jkoval/driftex"
)

var _ driftex.ProfileService = (*ProfileService)(nil)

// ProfileService is a mock implementation of driftex.ProfileService.
type ProfileService struct {
	CreateProfileFn   func(ctx context.Context, profile *driftex.Profile) error
	FindProfileByIDFn func(ctx context.Context, id string) (*driftex.Profile, error)
	FindProfilesFn    func(ctx context.Context, filter driftex.ProfileFilter) ([]*driftex.Profile, error)
	DeleteProfileFn   func(ctx context.Context, id string) error
}

func (s *ProfileService) CreateProfile(ctx context.Context, profile *driftex.Profile) error {
	return s.CreateProfileFn(ctx, profile)
}

func (s *ProfileService) FindProfileByID(ctx context.Context, id string) (*driftex.Profile, error) {
	return s.FindProfileByIDFn(ctx, id)
}

func (s *ProfileService) FindProfiles(ctx context.Context, filter driftex.ProfileFilter) ([]*driftex.Profile, error) {
	return s.FindProfilesFn(ctx, filter)
}

func (s *ProfileService) DeleteProfile(ctx context.Context, id string) error {
	return s.DeleteProfileFn(ctx, id)
}
