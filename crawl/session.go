package crawl

import (
	"sync/atomic"

	"github.com/fwojciec/sitemapper"
	"github.com/google/uuid"
)

// Session holds the state of a single crawl: the root the crawl is scoped
// to, the visited set and the frontier of the next level.
//
// Visited only grows and is written exclusively between levels, so fetch
// workers may read it concurrently while a level is in flight.
type Session struct {
	// ID identifies the session in logs and crawl history.
	ID string

	root     sitemapper.URL
	visited  map[sitemapper.DedupKey]struct{}
	order    []sitemapper.DedupKey
	frontier *Frontier
	level    int
	used     atomic.Bool
}

// NewSession creates a session for a crawl of root. The root is the only
// scope boundary for the whole crawl and the first level's only URL.
func NewSession(root sitemapper.URL) *Session {
	return &Session{
		ID:       uuid.New().String(),
		root:     root,
		visited:  make(map[sitemapper.DedupKey]struct{}),
		frontier: NewFrontier(root),
		level:    1,
	}
}

// Root returns the URL the crawl is scoped to.
func (s *Session) Root() sitemapper.URL {
	return s.root
}

// Level returns the level that will be crawled next.
func (s *Session) Level() int {
	return s.level
}

// Visited reports whether the page with the given key was scheduled in
// this or an earlier level.
func (s *Session) Visited(key sitemapper.DedupKey) bool {
	_, ok := s.visited[key]
	return ok
}

// VisitedCount returns the number of visited pages.
func (s *Session) VisitedCount() int {
	return len(s.order)
}

// claim marks the session as used. A session drives exactly one crawl.
func (s *Session) claim() error {
	if !s.used.CompareAndSwap(false, true) {
		return sitemapper.Errorf(sitemapper.EINVALID, "crawl session %s already used", s.ID)
	}
	return nil
}

// markVisited adds every URL in urls to the visited set before any of
// them is fetched.
func (s *Session) markVisited(urls []sitemapper.URL) {
	for _, u := range urls {
		key := u.DedupKey()
		if _, ok := s.visited[key]; ok {
			continue
		}
		s.visited[key] = struct{}{}
		s.order = append(s.order, key)
	}
}
