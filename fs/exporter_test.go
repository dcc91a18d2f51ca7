package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "profile path",
			url:  "https://example.com/in/jane-doe",
			want: "in/jane-doe.json",
		},
		{
			name: "root becomes index",
			url:  "https://example.com",
			want: "index.json",
		},
		{
			name: "root slash becomes index",
			url:  "https://example.com/",
			want: "index.json",
		},
		{
			name: "trailing slash becomes directory index",
			url:  "https://example.com/in/jane/",
			want: "in/jane/index.json",
		},
		{
			name: "nested detail view",
			url:  "https://example.com/in/jane/details/experience",
			want: "in/jane/details/experience.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := fs.URLToPath(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExporter_ExportProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes the profile under the url path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir)

		profile := &driftex.Profile{
			URL: "https://example.com/in/jane",
			TopCard: &driftex.TopCard{
				Name: "Jane Doe",
			},
		}
		require.NoError(t, exporter.ExportProfile(ctx, profile))

		data, err := os.ReadFile(filepath.Join(dir, "in", "jane.json"))
		require.NoError(t, err)

		var got driftex.Profile
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, profile.URL, got.URL)
		require.NotNil(t, got.TopCard)
		assert.Equal(t, "Jane Doe", got.TopCard.Name)
	})

	t.Run("rejects an invalid profile", func(t *testing.T) {
		t.Parallel()

		exporter := fs.NewExporter(t.TempDir())
		err := exporter.ExportProfile(ctx, &driftex.Profile{})
		assert.Equal(t, driftex.EINVALID, driftex.ErrorCode(err))
	})
}
