package parse_test

import (
	"testing"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactParser_ParseRaw(t *testing.T) {
	t.Parallel()

	p := parse.NewContactParser()

	t.Run("email block strips the mailto scheme", func(t *testing.T) {
		t.Parallel()

		contacts := p.ParseRaw([]driftex.RawBlock{
			{
				Heading: "Email",
				Anchors: []driftex.Anchor{{Href: "mailto:jane@example.com", Text: "jane@example.com"}},
			},
		})

		require.Len(t, contacts, 1)
		assert.Equal(t, driftex.ContactEmail, contacts[0].Type)
		assert.Equal(t, "jane@example.com", contacts[0].Value)
	})

	t.Run("duplicate pair keeps the first label", func(t *testing.T) {
		t.Parallel()

		contacts := p.ParseRaw([]driftex.RawBlock{
			{
				Heading: "Website",
				Labels:  []string{"(Personal)"},
				Anchors: []driftex.Anchor{{Href: "https://jane.example.com"}},
			},
			{
				Heading: "Website",
				Labels:  []string{"(Portfolio)"},
				Anchors: []driftex.Anchor{{Href: "https://jane.example.com"}},
			},
		})

		require.Len(t, contacts, 1)
		assert.Equal(t, "Personal", contacts[0].Label)
	})

	t.Run("profile block yields one record per anchor", func(t *testing.T) {
		t.Parallel()

		contacts := p.ParseRaw([]driftex.RawBlock{
			{
				Heading: "Jane's Profile",
				Anchors: []driftex.Anchor{
					{Href: "https://example.com/in/jane"},
					{Href: "https://other.example.com/jane"},
				},
			},
		})

		require.Len(t, contacts, 2)
		assert.Equal(t, driftex.ContactProfile, contacts[0].Type)
		assert.Equal(t, "https://example.com/in/jane", contacts[0].Value)
	})

	t.Run("phone block strips the tel scheme", func(t *testing.T) {
		t.Parallel()

		contacts := p.ParseRaw([]driftex.RawBlock{
			{
				Heading: "Phone",
				Labels:  []string{"(Mobile)"},
				Anchors: []driftex.Anchor{{Href: "tel:+4915112345678"}},
			},
		})

		require.Len(t, contacts, 1)
		assert.Equal(t, driftex.ContactPhone, contacts[0].Type)
		assert.Equal(t, "+4915112345678", contacts[0].Value)
		assert.Equal(t, "Mobile", contacts[0].Label)
	})

	t.Run("label-only birthday uses the block text minus heading", func(t *testing.T) {
		t.Parallel()

		contacts := p.ParseRaw([]driftex.RawBlock{
			{Heading: "Birthday", Text: "Birthday April 20"},
		})

		require.Len(t, contacts, 1)
		assert.Equal(t, driftex.ContactBirthday, contacts[0].Type)
		assert.Equal(t, "April 20", contacts[0].Value)
	})

	t.Run("unrecognized heading yields nothing", func(t *testing.T) {
		t.Parallel()

		contacts := p.ParseRaw([]driftex.RawBlock{
			{Heading: "Miscellaneous", Text: "Miscellaneous stuff"},
		})

		assert.Empty(t, contacts)
	})
}

func TestContactParser_Parse(t *testing.T) {
	t.Parallel()

	p := parse.NewContactParser()

	t.Run("degraded path synthesizes a block from generic input", func(t *testing.T) {
		t.Parallel()

		contact, ok := p.Parse(driftex.ParseInput{
			Texts: []string{"Email"},
			Links: []driftex.ExtractedLink{{URL: "mailto:jane@example.com"}},
		})

		require.True(t, ok)
		assert.Equal(t, driftex.ContactEmail, contact.Type)
		assert.Equal(t, "jane@example.com", contact.Value)
	})

	t.Run("no classifiable heading yields nothing", func(t *testing.T) {
		t.Parallel()

		_, ok := p.Parse(driftex.ParseInput{Texts: []string{"Something else"}})
		assert.False(t, ok)
	})
}
