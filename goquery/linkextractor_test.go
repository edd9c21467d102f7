package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitemapper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns hrefs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Home</title><link rel="stylesheet" href="/style.css"></head>
<body>
<nav>
	<a href="/about">About</a>
	<a href="http://example.com/contact#x">Contact</a>
</nav>
<main>
	<p>See <a href="http://other.com/">elsewhere</a>.</p>
	<a href="/about">About again</a>
</main>
</body>
</html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"/about",
			"http://example.com/contact#x",
			"http://other.com/",
			"/about",
		}, links)
	})

	t.Run("skips anchors without a usable href", func(t *testing.T) {
		t.Parallel()

		html := `<a name="top">Top</a><a href="">Empty</a><a href="   ">Blank</a><a href=" /docs ">Docs</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"/docs"}, links)
	})

	t.Run("passes non-http links through unchanged", func(t *testing.T) {
		t.Parallel()

		html := `<a href="mailto:team@example.com">Mail</a><a href="javascript:void(0)">JS</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"mailto:team@example.com", "javascript:void(0)"}, links)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div><p><a href="/one">one<a href="/two">two</div></span>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"/one", "/two"}, links)
	})

	t.Run("returns an empty list for a page without links", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor().ExtractLinks("")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
