package html_test

import (
	"testing"

	"github.com/fwojciec/sitemapper/goquery"
	"github.com/fwojciec/sitemapper/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns hrefs in document order", func(t *testing.T) {
		t.Parallel()

		doc := `<!DOCTYPE html>
<html>
<body>
<a href="/about">About</a>
<A HREF="http://example.com/contact#x">Contact</A>
<a class="external" href="http://other.com/">Other</a>
<a href="/about"/>
</body>
</html>`

		links, err := html.NewLinkExtractor().ExtractLinks(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"/about",
			"http://example.com/contact#x",
			"http://other.com/",
			"/about",
		}, links)
	})

	t.Run("ignores href on other elements", func(t *testing.T) {
		t.Parallel()

		doc := `<link href="/feed.xml"><area href="/map"><base href="/"><a href="/page">Page</a>`

		links, err := html.NewLinkExtractor().ExtractLinks(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"/page"}, links)
	})

	t.Run("skips anchors without a usable href", func(t *testing.T) {
		t.Parallel()

		doc := `<a name="top">Top</a><a href="">Empty</a><a href="  ">Blank</a><a id="x" href=" /docs ">Docs</a>`

		links, err := html.NewLinkExtractor().ExtractLinks(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"/docs"}, links)
	})

	t.Run("does not treat anchors inside scripts as links", func(t *testing.T) {
		t.Parallel()

		doc := `<script>document.write('<a href="/fake">x</a>')</script><a href="/real">real</a>`

		links, err := html.NewLinkExtractor().ExtractLinks(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"/real"}, links)
	})

	t.Run("tolerates truncated markup", func(t *testing.T) {
		t.Parallel()

		doc := `<div><a href="/one">one</a><a href="/two`

		links, err := html.NewLinkExtractor().ExtractLinks(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"/one"}, links)
	})

	t.Run("agrees with the tree-based extractor", func(t *testing.T) {
		t.Parallel()

		doc := `<html><head><title>t</title></head><body>
<nav><a href="/a">a</a><a href="/b">b</a></nav>
<p>text <a href="https://example.com/c?q=1">c</a> more</p>
<footer><a href="mailto:x@example.com">mail</a><a href="/a">a</a></footer>
</body></html>`

		streamed, err := html.NewLinkExtractor().ExtractLinks(doc)
		require.NoError(t, err)
		tree, err := goquery.NewLinkExtractor().ExtractLinks(doc)
		require.NoError(t, err)

		assert.Equal(t, tree, streamed)
	})
}
