package section_test

import (
	"context"
	"testing"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/goquery"
	"github.com/jkoval/driftex/mock"
	"github.com/jkoval/driftex/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, html string) driftex.Node {
	t.Helper()
	n, err := goquery.NewDocument(html)
	require.NoError(t, err)
	return n
}

func registryWith(name string, sels driftex.SectionSelectors) *mock.SelectorRegistry {
	return &mock.SelectorRegistry{
		GetSectionFn: func(n string) (driftex.SectionSelectors, bool) {
			if n == name {
				return sels, true
			}
			return driftex.SectionSelectors{}, false
		},
	}
}

func TestList_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("registry chain is tried before fallbacks", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<ul>
			<li class="registry-item">one</li>
			<li class="fallback-item">two</li>
		</ul>`)

		s := &section.List{
			Name:      "experience",
			Registry:  registryWith("experience", driftex.SectionSelectors{ItemSelectors: []string{"li.registry-item"}}),
			Fallbacks: []string{"li.fallback-item"},
		}

		result, err := s.Extract(ctx, driftex.SectionConfig{Root: root})
		require.NoError(t, err)
		assert.Equal(t, driftex.KindList, result.Kind)
		require.Len(t, result.Candidates, 1)

		text, err := result.Candidates[0].Node.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "one", text)
	})

	t.Run("falls through exhausted selectors", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<ul><li class="fallback-item">two</li></ul>`)

		s := &section.List{
			Name:      "experience",
			Registry:  registryWith("experience", driftex.SectionSelectors{ItemSelectors: []string{"li.registry-item"}}),
			Fallbacks: []string{"li.fallback-item"},
		}

		result, err := s.Extract(ctx, driftex.SectionConfig{Root: root})
		require.NoError(t, err)
		require.Len(t, result.Candidates, 1)
	})

	t.Run("works with fallbacks only", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<ul><li class="entry">one</li><li class="entry">two</li></ul>`)

		s := &section.List{Name: "experience", Fallbacks: []string{"li.entry"}}

		result, err := s.Extract(ctx, driftex.SectionConfig{Root: root})
		require.NoError(t, err)
		assert.Len(t, result.Candidates, 2)
	})

	t.Run("merges section context into candidates", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<ul><li class="entry">one</li></ul>`)

		s := &section.List{
			Name:      "accomplishments",
			Fallbacks: []string{"li.entry"},
			Context:   map[string]string{"tab": "honors"},
		}

		result, err := s.Extract(ctx, driftex.SectionConfig{
			Root:    root,
			Context: map[string]string{"run": "abc"},
		})
		require.NoError(t, err)
		require.Len(t, result.Candidates, 1)
		assert.Equal(t, "honors", result.Candidates[0].Context["tab"])
		assert.Equal(t, "abc", result.Candidates[0].Context["run"])
	})

	t.Run("retries on the detail view when truncated", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<div>
			<ul><li class="entry">inline only</li></ul>
			<a class="show-more" href="details/experience/">Show all 12 experiences</a>
		</div>`)

		detail := fixture(t, `<ul>
			<li class="entry">one</li>
			<li class="entry">two</li>
			<li class="entry">three</li>
		</ul>`)

		var visited string
		nav := &mock.Navigator{
			NavigateFn: func(ctx context.Context, url string) (driftex.Node, error) {
				visited = url
				return detail, nil
			},
		}

		s := &section.List{
			Name:       "experience",
			Fallbacks:  []string{"li.entry"},
			Truncation: "a.show-more",
			DetailPath: "details/experience/",
		}

		result, err := s.Extract(ctx, driftex.SectionConfig{
			Root:      root,
			BaseURL:   "https://example.com/in/jane/",
			Navigator: nav,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/in/jane/details/experience/", visited)
		assert.Len(t, result.Candidates, 3)
	})

	t.Run("keeps the inline view when navigation fails", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<div>
			<ul><li class="entry">inline only</li></ul>
			<a class="show-more" href="#">Show all</a>
		</div>`)

		nav := &mock.Navigator{
			NavigateFn: func(ctx context.Context, url string) (driftex.Node, error) {
				return nil, driftex.Errorf(driftex.EUNAVAILABLE, "page load failed")
			},
		}

		s := &section.List{
			Name:       "experience",
			Fallbacks:  []string{"li.entry"},
			Truncation: "a.show-more",
			DetailPath: "details/experience/",
		}

		result, err := s.Extract(ctx, driftex.SectionConfig{
			Root:      root,
			BaseURL:   "https://example.com/in/jane/",
			Navigator: nav,
		})
		require.NoError(t, err)
		assert.Len(t, result.Candidates, 1)
	})

	t.Run("nil root is invalid", func(t *testing.T) {
		t.Parallel()

		s := &section.List{Name: "experience"}
		_, err := s.Extract(ctx, driftex.SectionConfig{})
		assert.Equal(t, driftex.EINVALID, driftex.ErrorCode(err))
	})
}

func TestSingle_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("keeps only the first match", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<div>
			<section class="top-card">first</section>
			<section class="top-card">second</section>
		</div>`)

		s := &section.Single{Name: "topcard", Fallbacks: []string{"section.top-card"}}

		result, err := s.Extract(ctx, driftex.SectionConfig{Root: root})
		require.NoError(t, err)
		assert.Equal(t, driftex.KindSingle, result.Kind)
		require.Len(t, result.Candidates, 1)

		text, err := result.Candidates[0].Node.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "first", text)
	})

	t.Run("no match yields zero candidates", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<div></div>`)

		s := &section.Single{Name: "topcard", Fallbacks: []string{"section.top-card"}}

		result, err := s.Extract(ctx, driftex.SectionConfig{Root: root})
		require.NoError(t, err)
		assert.Empty(t, result.Candidates)
	})
}

func TestRaw_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("segments a contact panel into blocks", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<div class="contact-panel">
			<section class="contact-entry">
				<h3>Email</h3>
				<a href="mailto:jane@example.com">jane@example.com</a>
			</section>
			<section class="contact-entry">
				<h3>Website</h3>
				<span>(Personal)</span>
				<a href="https://jane.example.com">jane.example.com</a>
			</section>
		</div>`)

		s := &section.Raw{
			Name:               "contacts",
			Fallbacks:          []string{"section.contact-entry"},
			ContainerFallbacks: []string{"div.contact-panel"},
		}

		result, err := s.Extract(ctx, driftex.SectionConfig{Root: root})
		require.NoError(t, err)
		assert.Equal(t, driftex.KindRaw, result.Kind)
		require.Len(t, result.Blocks, 2)

		email := result.Blocks[0]
		assert.Equal(t, "Email", email.Heading)
		require.Len(t, email.Anchors, 1)
		assert.Equal(t, "mailto:jane@example.com", email.Anchors[0].Href)

		site := result.Blocks[1]
		assert.Equal(t, "Website", site.Heading)
		assert.Equal(t, []string{"(Personal)"}, site.Labels)
	})

	t.Run("empty panel yields zero blocks", func(t *testing.T) {
		t.Parallel()

		root := fixture(t, `<div class="contact-panel"></div>`)

		s := &section.Raw{
			Name:      "contacts",
			Fallbacks: []string{"section.contact-entry"},
		}

		result, err := s.Extract(ctx, driftex.SectionConfig{Root: root})
		require.NoError(t, err)
		assert.Empty(t, result.Blocks)
	})
}
