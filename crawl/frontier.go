package crawl

import (
	"slices"

	"github.com/fwojciec/sitemapper"
)

// Frontier is the set of URLs scheduled for one crawl level.
// URLs are keyed by their dedup key, so the first variant added wins, and
// iteration follows insertion order.
//
// A Frontier is not safe for concurrent use; the engine only builds it
// after every fetch of the previous level has completed.
type Frontier struct {
	index map[sitemapper.DedupKey]struct{}
	urls  []sitemapper.URL
}

// NewFrontier creates an empty Frontier seeded with urls.
func NewFrontier(urls ...sitemapper.URL) *Frontier {
	f := &Frontier{index: make(map[sitemapper.DedupKey]struct{})}
	for _, u := range urls {
		f.Add(u)
	}
	return f
}

// Add schedules u. Returns false if a URL with the same key is already
// scheduled.
func (f *Frontier) Add(u sitemapper.URL) bool {
	key := u.DedupKey()
	if _, ok := f.index[key]; ok {
		return false
	}
	f.index[key] = struct{}{}
	f.urls = append(f.urls, u)
	return true
}

// Contains reports whether a URL with the given key is scheduled.
func (f *Frontier) Contains(key sitemapper.DedupKey) bool {
	_, ok := f.index[key]
	return ok
}

// Len returns the number of scheduled URLs.
func (f *Frontier) Len() int {
	return len(f.urls)
}

// URLs returns the scheduled URLs in insertion order.
func (f *Frontier) URLs() []sitemapper.URL {
	return slices.Clone(f.urls)
}
