package parse_test

import (
	"testing"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationParser_Parse(t *testing.T) {
	t.Parallel()

	p := parse.NewEducationParser()

	t.Run("degree line splits on first comma", func(t *testing.T) {
		t.Parallel()

		edu, ok := p.Parse(driftex.ParseInput{
			Texts: []string{
				"Technical University of Munich",
				"Master of Science, Computer Science",
				"2015 - 2017",
			},
			Links: []driftex.ExtractedLink{{URL: "https://example.com/school/tum"}},
		})

		require.True(t, ok)
		assert.Equal(t, "Technical University of Munich", edu.School)
		assert.Equal(t, "https://example.com/school/tum", edu.SchoolURL)
		assert.Equal(t, "Master of Science", edu.Degree)
		assert.Equal(t, "Computer Science", edu.FieldOfStudy)
		assert.Equal(t, "2015", edu.FromYear)
		assert.Equal(t, "2017", edu.ToYear)
	})

	t.Run("single year fills both ends", func(t *testing.T) {
		t.Parallel()

		edu, ok := p.Parse(driftex.ParseInput{
			Texts: []string{"Some College", "2012"},
		})

		require.True(t, ok)
		assert.Equal(t, "2012", edu.FromYear)
		assert.Equal(t, "2012", edu.ToYear)
		assert.Empty(t, edu.Degree)
	})

	t.Run("degree line without comma has no field of study", func(t *testing.T) {
		t.Parallel()

		edu, ok := p.Parse(driftex.ParseInput{
			Texts: []string{"Some College", "Bachelor of Arts"},
		})

		require.True(t, ok)
		assert.Equal(t, "Bachelor of Arts", edu.Degree)
		assert.Empty(t, edu.FieldOfStudy)
	})

	t.Run("school name only", func(t *testing.T) {
		t.Parallel()

		edu, ok := p.Parse(driftex.ParseInput{Texts: []string{"Some College"}})

		require.True(t, ok)
		assert.Equal(t, "Some College", edu.School)
		assert.True(t, p.Validate(edu))
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()

		_, ok := p.Parse(driftex.ParseInput{})
		assert.False(t, ok)
	})
}
