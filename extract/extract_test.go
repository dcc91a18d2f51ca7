package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/extract"
	"github.com/jkoval/driftex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, html string) driftex.Node {
	t.Helper()
	n, err := goquery.NewDocument(html)
	require.NoError(t, err)
	return n
}

func TestDefault(t *testing.T) {
	t.Parallel()

	extractors := extract.Default()
	require.Len(t, extractors, 3)
	assert.Equal(t, "accessibility", extractors[0].Name())
	assert.Equal(t, "semantic", extractors[1].Name())
	assert.Equal(t, "raw", extractors[2].Name())
	assert.Less(t, extractors[0].Priority(), extractors[1].Priority())
	assert.Less(t, extractors[1].Priority(), extractors[2].Priority())
}

func TestAccessibility_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := extract.NewAccessibility()

	t.Run("pulls aria-hidden text in document order", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li>
			<span aria-hidden="true">Senior Software Engineer</span>
			<span aria-hidden="true">Acme Corp</span>
			<span aria-hidden="true">Jan 2020 - Present</span>
		</li>`)

		require.True(t, e.CanHandle(ctx, n))
		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Senior Software Engineer", "Acme Corp", "Jan 2020 - Present"}, result.Texts)
	})

	t.Run("falls back to visually-hidden elements", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li><span class="visually-hidden">Acme Corp</span></li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Acme Corp"}, result.Texts)
	})

	t.Run("discards exact and substring duplicates", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li>
			<span aria-hidden="true">Senior Engineer</span>
			<span aria-hidden="true">Senior Engineer</span>
			<span aria-hidden="true">Senior Engineer at Acme</span>
		</li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Senior Engineer at Acme"}, result.Texts)

		// Collapsing is stable: a second pass over the same markup
		// yields the identical fragment set.
		again, err := e.Extract(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, result.Texts, again.Texts)
	})

	t.Run("a superseding fragment sweeps every covered fragment", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li>
			<span aria-hidden="true">Acme</span>
			<span aria-hidden="true">Corp Inc</span>
			<span aria-hidden="true">Acme at Corp Inc</span>
		</li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Acme at Corp Inc"}, result.Texts)
	})

	t.Run("collects sub-items one level deep", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li>
			<span aria-hidden="true">Acme Corp</span>
			<ul>
				<li><span aria-hidden="true">Staff Engineer</span></li>
				<li><span aria-hidden="true">Senior Engineer</span></li>
			</ul>
		</li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Len(t, result.SubItems, 2)
		assert.Equal(t, []string{"Staff Engineer"}, result.SubItems[0].Texts)
		assert.Empty(t, result.SubItems[0].SubItems)
	})

	t.Run("cannot handle plain markup", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li><div>Plain text</div></li>`)
		assert.False(t, e.CanHandle(ctx, n))

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("three fields with links reach full confidence", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li>
			<a href="/company/acme"><span aria-hidden="true">Acme Corp</span></a>
			<span aria-hidden="true">Senior Engineer</span>
			<span aria-hidden="true">Jan 2020 - Present</span>
		</li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.InDelta(t, 1.0, result.Confidence, 0.001)
		require.Len(t, result.Links, 1)
		assert.Equal(t, "/company/acme", result.Links[0].URL)
	})

	t.Run("single field scores the low band", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li><span aria-hidden="true">Acme Corp</span></li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		// 0.25 base plus the title-length bonus.
		assert.InDelta(t, 0.45, result.Confidence, 0.001)
	})
}

func TestSemantic_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := extract.NewSemantic()

	t.Run("pulls headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<section>
			<h3>Acme Corp</h3>
			<p>Senior Engineer</p>
			<p>Jan 2020 - Present</p>
		</section>`)

		require.True(t, e.CanHandle(ctx, n))
		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Acme Corp", "Senior Engineer", "Jan 2020 - Present"}, result.Texts)
	})

	t.Run("falls back to inline spans", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<div><span>Acme Corp</span><span>Berlin</span></div>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Acme Corp", "Berlin"}, result.Texts)
	})

	t.Run("scores below the accessibility band", func(t *testing.T) {
		t.Parallel()

		html := `<li>
			<span aria-hidden="true">Acme Corp</span>
			<span aria-hidden="true">Senior Engineer</span>
			<span aria-hidden="true">Jan 2020 - Present</span>
		</li>`

		acc, err := extract.NewAccessibility().Extract(ctx, node(t, html))
		require.NoError(t, err)
		sem, err := e.Extract(ctx, node(t, html))
		require.NoError(t, err)
		require.NotNil(t, acc)
		require.NotNil(t, sem)
		assert.Greater(t, acc.Confidence, sem.Confidence)
	})
}

func TestRaw_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := extract.NewRaw()

	t.Run("splits rendered text by line", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li><div>Acme Corp</div><div>Senior Engineer</div><div>Berlin</div></li>`)

		require.True(t, e.CanHandle(ctx, n))
		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Acme Corp", "Senior Engineer", "Berlin"}, result.Texts)
		assert.InDelta(t, 0.3, result.Confidence, 0.001)
	})

	t.Run("collapses adjacent identical lines only", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li><div>Acme</div><div>Acme</div><div>Berlin</div><div>Acme</div></li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Acme", "Berlin", "Acme"}, result.Texts)
	})

	t.Run("drops oversized lines", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 501)
		n := node(t, `<li><div>Acme</div><div>`+long+`</div></li>`)

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"Acme"}, result.Texts)
	})

	t.Run("always produces something when text exists", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li><b>just bold text</b></li>`)

		acc := extract.NewAccessibility()
		assert.False(t, acc.CanHandle(ctx, n))

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, []string{"just bold text"}, result.Texts)
		assert.InDelta(t, 0.15, result.Confidence, 0.001)
	})

	t.Run("empty node yields nothing", func(t *testing.T) {
		t.Parallel()

		n := node(t, `<li></li>`)
		assert.False(t, e.CanHandle(ctx, n))

		result, err := e.Extract(ctx, n)
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}
