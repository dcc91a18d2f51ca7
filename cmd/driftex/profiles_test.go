package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jkoval/driftex"
	main "github.com/jkoval/driftex/cmd/driftex"
	"github.com/jkoval/driftex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(profiles *mock.ProfileService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Profiles: profiles,
	}, stdout, stderr
}

func TestProfilesListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists profiles with ID, time, URL, and name", func(t *testing.T) {
		t.Parallel()

		profiles := &mock.ProfileService{
			FindProfilesFn: func(_ context.Context, _ driftex.ProfileFilter) ([]*driftex.Profile, error) {
				return []*driftex.Profile{
					{
						ID:        "prof-123",
						URL:       "https://example.com/in/jane",
						FetchedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
						TopCard:   &driftex.TopCard{Name: "Jane Doe"},
					},
					{
						ID:        "prof-456",
						URL:       "https://example.com/in/john",
						FetchedAt: time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		deps, stdout, _ := testDeps(profiles)
		cmd := &main.ProfilesListCmd{}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "prof-123")
		assert.Contains(t, output, "prof-456")
		assert.Contains(t, output, "https://example.com/in/jane")
		assert.Contains(t, output, "Jane Doe")
		assert.Contains(t, output, "2026-03-15 10:00")
	})

	t.Run("passes the url filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter driftex.ProfileFilter
		profiles := &mock.ProfileService{
			FindProfilesFn: func(_ context.Context, filter driftex.ProfileFilter) ([]*driftex.Profile, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps, stdout, _ := testDeps(profiles)
		cmd := &main.ProfilesListCmd{URL: "https://example.com/in/jane"}

		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://example.com/in/jane", *gotFilter.URL)
		assert.Contains(t, stdout.String(), "No profiles found")
	})

	t.Run("empty store suggests extract", func(t *testing.T) {
		t.Parallel()

		profiles := &mock.ProfileService{
			FindProfilesFn: func(_ context.Context, _ driftex.ProfileFilter) ([]*driftex.Profile, error) {
				return nil, nil
			},
		}

		deps, stdout, _ := testDeps(profiles)
		cmd := &main.ProfilesListCmd{}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "driftex extract")
	})
}

func TestProfilesShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the profile as JSON", func(t *testing.T) {
		t.Parallel()

		profiles := &mock.ProfileService{
			FindProfileByIDFn: func(_ context.Context, id string) (*driftex.Profile, error) {
				assert.Equal(t, "prof-123", id)
				return &driftex.Profile{
					ID:  "prof-123",
					URL: "https://example.com/in/jane",
					Experiences: []driftex.Experience{
						{Company: "Acme Corp"},
					},
				}, nil
			},
		}

		deps, stdout, _ := testDeps(profiles)
		cmd := &main.ProfilesShowCmd{ID: "prof-123"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, `"prof-123"`)
		assert.Contains(t, output, `"Acme Corp"`)
	})

	t.Run("missing profile surfaces the error message", func(t *testing.T) {
		t.Parallel()

		profiles := &mock.ProfileService{
			FindProfileByIDFn: func(_ context.Context, id string) (*driftex.Profile, error) {
				return nil, driftex.Errorf(driftex.ENOTFOUND, "profile not found")
			},
		}

		deps, _, stderr := testDeps(profiles)
		cmd := &main.ProfilesShowCmd{ID: "missing"}

		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "profile not found")
	})
}

func TestProfilesDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deleted := false
		profiles := &mock.ProfileService{
			DeleteProfileFn: func(_ context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		deps, _, stderr := testDeps(profiles)
		cmd := &main.ProfilesDeleteCmd{ID: "prof-123"}

		err := cmd.Run(deps)
		assert.Equal(t, driftex.EINVALID, driftex.ErrorCode(err))
		assert.False(t, deleted)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes with force", func(t *testing.T) {
		t.Parallel()

		profiles := &mock.ProfileService{
			DeleteProfileFn: func(_ context.Context, id string) error {
				assert.Equal(t, "prof-123", id)
				return nil
			},
		}

		deps, stdout, _ := testDeps(profiles)
		cmd := &main.ProfilesDeleteCmd{ID: "prof-123", Force: true}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Deleted profile")
	})

	t.Run("missing profile hints at the list command", func(t *testing.T) {
		t.Parallel()

		profiles := &mock.ProfileService{
			DeleteProfileFn: func(_ context.Context, id string) error {
				return driftex.Errorf(driftex.ENOTFOUND, "profile not found")
			},
		}

		deps, _, stderr := testDeps(profiles)
		cmd := &main.ProfilesDeleteCmd{ID: "missing", Force: true}

		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "driftex profiles list")
	})
}
