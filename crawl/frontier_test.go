package crawl_test

import (
	"testing"

	"github.com/fwojciec/sitemapper"
	"github.com/fwojciec/sitemapper/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) sitemapper.URL {
	t.Helper()
	u, err := sitemapper.ParseURL(raw)
	require.NoError(t, err)
	return u
}

func TestFrontier_Add_rejects_variants_of_scheduled_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()

	assert.True(t, f.Add(mustParse(t, "http://example.com/a")))
	assert.False(t, f.Add(mustParse(t, "https://www.example.com/a/")))
	assert.True(t, f.Add(mustParse(t, "http://example.com/b")))
	assert.Equal(t, 2, f.Len())
}

func TestFrontier_Add_keeps_first_variant(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Add(mustParse(t, "https://www.example.com/a"))
	f.Add(mustParse(t, "http://example.com/a"))

	urls := f.URLs()
	require.Len(t, urls, 1)
	assert.Equal(t, "https://www.example.com/a", urls[0].String())
}

func TestFrontier_URLs_preserves_insertion_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(
		mustParse(t, "http://example.com/c"),
		mustParse(t, "http://example.com/a"),
		mustParse(t, "http://example.com/b"),
	)

	var paths []string
	for _, u := range f.URLs() {
		paths = append(paths, u.Path)
	}
	assert.Equal(t, []string{"/c", "/a", "/b"}, paths)
}

func TestFrontier_URLs_returns_copy(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(mustParse(t, "http://example.com/a"))

	urls := f.URLs()
	urls[0] = mustParse(t, "http://example.com/changed")

	assert.Equal(t, "/a", f.URLs()[0].Path)
}

func TestFrontier_Contains(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(mustParse(t, "http://example.com/docs/"))

	assert.True(t, f.Contains("example.com/docs"))
	assert.False(t, f.Contains("example.com/blog"))
}

func TestFrontier_empty(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()

	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.URLs())
}
