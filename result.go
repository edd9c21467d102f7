package sitemapper

import (
	"net/url"
	"slices"
	"strings"
	"sync"
)

// CrawlResult is the outcome of one crawl: the set of visited pages plus
// crawl statistics. It is built once when traversal ends.
type CrawlResult struct {
	SessionID string
	Root      URL

	// Levels is the number of BFS levels that were started.
	Levels int

	// Fetched and Failed count fetch outcomes; Bytes sums fetched bodies.
	Fetched int
	Failed  int
	Bytes   int

	// MaxDepthReached is set when traversal stopped at the depth limit
	// with pages still queued. Those pages are included in the result
	// but were never fetched; Unfetched counts them.
	MaxDepthReached bool
	Unfetched       int

	// Canceled is set when the context ended the crawl early.
	Canceled bool

	keys []DedupKey
	once sync.Once
	urls []string
}

// NewCrawlResult returns a result for the visited keys of a crawl of root.
func NewCrawlResult(root URL, keys []DedupKey) *CrawlResult {
	return &CrawlResult{
		Root: root,
		keys: slices.Clone(keys),
	}
}

// Len returns the number of visited pages.
func (r *CrawlResult) Len() int {
	return len(r.keys)
}

// Keys returns the visited keys in sorted order.
func (r *CrawlResult) Keys() []DedupKey {
	keys := slices.Clone(r.keys)
	slices.Sort(keys)
	return keys
}

// URLs returns the visited pages as absolute URLs in lexicographic order.
// Every URL uses the root's scheme and a "www." host prefix, and its path
// is escaped the same way as the URL that was fetched.
// The list is built on first use.
func (r *CrawlResult) URLs() []string {
	r.once.Do(func() {
		urls := make([]string, 0, len(r.keys))
		for _, key := range r.keys {
			urls = append(urls, r.keyURL(key))
		}
		slices.Sort(urls)
		r.urls = urls
	})
	return slices.Clone(r.urls)
}

func (r *CrawlResult) keyURL(key DedupKey) string {
	host, path, _ := strings.Cut(string(key), "/")
	u := url.URL{Scheme: r.Root.Scheme, Host: wwwPrefix + host, Path: "/" + path}
	return u.String()
}
