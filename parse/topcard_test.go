package parse_test

import (
	"testing"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCardParser_Parse(t *testing.T) {
	t.Parallel()

	p := parse.NewTopCardParser()

	t.Run("full identity block", func(t *testing.T) {
		t.Parallel()

		card, ok := p.Parse(driftex.ParseInput{
			Texts: []string{
				"Jane Doe",
				"Staff Engineer at Acme Corp",
				"Berlin, Germany",
				"Building resilient data pipelines for a living. Opinions are my own and occasionally correct.",
			},
			Links: []driftex.ExtractedLink{
				{URL: "https://example.com/in/jane"},
				{URL: "https://cdn.example.com/avatars/jane.jpg"},
			},
		})

		require.True(t, ok)
		assert.Equal(t, "Jane Doe", card.Name)
		assert.Equal(t, "Staff Engineer at Acme Corp", card.Headline)
		assert.Equal(t, "Berlin, Germany", card.Location)
		assert.NotEmpty(t, card.About)
		assert.Equal(t, "https://cdn.example.com/avatars/jane.jpg", card.AvatarURL)
	})

	t.Run("short headline is not misread as a location", func(t *testing.T) {
		t.Parallel()

		card, ok := p.Parse(driftex.ParseInput{
			Texts: []string{"Jane Doe", "Software Engineer", "Berlin, Germany"},
		})

		require.True(t, ok)
		assert.Equal(t, "Software Engineer", card.Headline)
		assert.Equal(t, "Berlin, Germany", card.Location)
	})

	t.Run("name only", func(t *testing.T) {
		t.Parallel()

		card, ok := p.Parse(driftex.ParseInput{Texts: []string{"Jane Doe"}})

		require.True(t, ok)
		assert.Equal(t, "Jane Doe", card.Name)
		assert.True(t, p.Validate(card))
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()

		_, ok := p.Parse(driftex.ParseInput{})
		assert.False(t, ok)
	})
}

func TestAccomplishmentParser_Parse(t *testing.T) {
	t.Parallel()

	p := parse.NewAccomplishmentParser()

	t.Run("category comes from the tab context", func(t *testing.T) {
		t.Parallel()

		acc, ok := p.Parse(driftex.ParseInput{
			Texts:   []string{"AWS Certified Solutions Architect", "Jan 2022"},
			Context: map[string]string{"tab": "certifications"},
		})

		require.True(t, ok)
		assert.Equal(t, "certifications", acc.Category)
		assert.Equal(t, "AWS Certified Solutions Architect", acc.Title)
		assert.Equal(t, "Jan 2022", acc.Date)
	})

	t.Run("description by shape", func(t *testing.T) {
		t.Parallel()

		acc, ok := p.Parse(driftex.ParseInput{
			Texts: []string{
				"Open source contribution",
				"Maintained the community fork of the extraction toolkit and reviewed over two hundred pull requests.",
			},
		})

		require.True(t, ok)
		assert.NotEmpty(t, acc.Description)
		assert.Empty(t, acc.Date)
	})
}

func TestInterestParser_Parse(t *testing.T) {
	t.Parallel()

	p := parse.NewInterestParser()

	interest, ok := p.Parse(driftex.ParseInput{
		Texts: []string{"Acme Corp", "1,234,567 followers"},
		Links: []driftex.ExtractedLink{{URL: "https://example.com/company/acme"}},
	})

	require.True(t, ok)
	assert.Equal(t, "Acme Corp", interest.Name)
	assert.Equal(t, "1,234,567 followers", interest.Detail)
	assert.Equal(t, "https://example.com/company/acme", interest.URL)
}
