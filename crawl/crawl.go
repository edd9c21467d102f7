// Package crawl provides the breadth-first crawl engine.
// It drives depth-bounded traversal of a single site, fetching each level's
// frontier concurrently and deduplicating pages across levels.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/sitemapper"
	"golang.org/x/sync/errgroup"
)

// Crawler discovers the pages of a site by following links level by level.
type Crawler struct {
	Fetcher   sitemapper.Fetcher
	Extractor sitemapper.LinkExtractor
	Config    sitemapper.Config

	// RetryDelays overrides the backoff derived from Config.Retries.
	RetryDelays []time.Duration
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Level     int
	Completed int
	Total     int
	URL       string
	Links     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressLevelStarted ProgressType = iota
	ProgressFetched
	ProgressFailed
	ProgressLevelFinished
	ProgressMaxDepth
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
// It is always called from the goroutine running the crawl.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single frontier URL.
type pageResult struct {
	position int
	url      string
	bytes    int
	links    []sitemapper.URL
	skipped  bool
	err      error
}

// Crawl validates seed and crawls its site in a new session.
// An invalid seed returns EINVALID and nothing is fetched.
func (c *Crawler) Crawl(ctx context.Context, seed string, progress ProgressFunc) (*sitemapper.CrawlResult, error) {
	root, err := sitemapper.ParseURL(seed)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, NewSession(root), progress)
}

// Run crawls session's site until the frontier is empty or the depth limit
// is passed. When the limit stops the crawl, the URLs still queued are
// included in the result without being fetched. Fetch and extraction
// failures only cost the links of the failing page. When ctx is canceled
// no further fetches start and the pages visited so far are returned with
// Canceled set.
func (c *Crawler) Run(ctx context.Context, session *Session, progress ProgressFunc) (*sitemapper.CrawlResult, error) {
	cfg := c.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := session.claim(); err != nil {
		return nil, err
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays(cfg.Retries)
	}

	var (
		levels   int
		fetched  int
		failed   int
		bytes    int
		canceled bool
	)

	for c.hasNextLevel(session, cfg) {
		if ctx.Err() != nil {
			canceled = true
			break
		}

		levels++
		stats := c.crawlLevel(ctx, session, cfg, delays, progress)
		fetched += stats.fetched
		failed += stats.failed
		bytes += stats.bytes

		session.level++

		// A cancellation that arrives after the last page of a finished
		// crawl does not make the crawl partial.
		if ctx.Err() != nil && (stats.interrupted > 0 || c.hasNextLevel(session, cfg)) {
			canceled = true
			break
		}
	}

	// Pages discovered on the last allowed level are part of the site even
	// though the depth limit keeps them from being fetched.
	unfetched := 0
	maxDepthReached := !canceled && session.frontier.Len() > 0 && session.level > cfg.MaxDepth
	if maxDepthReached {
		unfetched = session.frontier.Len()
		session.markVisited(session.frontier.URLs())
		notify(progress, ProgressEvent{
			Type:  ProgressMaxDepth,
			Level: cfg.MaxDepth,
			Total: unfetched,
		})
	}

	result := sitemapper.NewCrawlResult(session.root, session.order)
	result.SessionID = session.ID
	result.Levels = levels
	result.Fetched = fetched
	result.Failed = failed
	result.Bytes = bytes
	result.Unfetched = unfetched
	result.MaxDepthReached = maxDepthReached
	result.Canceled = canceled

	notify(progress, ProgressEvent{
		Type:      ProgressFinished,
		Level:     levels,
		Completed: result.Len(),
		Total:     result.Len(),
	})

	return result, nil
}

// levelStats summarizes the fetches of one level.
type levelStats struct {
	fetched int
	failed  int
	bytes   int

	// interrupted counts pages skipped or aborted by cancellation.
	interrupted int
}

func (c *Crawler) hasNextLevel(session *Session, cfg sitemapper.Config) bool {
	return session.frontier.Len() > 0 && session.level <= cfg.MaxDepth
}

// crawlLevel fetches every URL of the session's frontier and replaces the
// frontier with the links discovered on those pages.
func (c *Crawler) crawlLevel(ctx context.Context, session *Session, cfg sitemapper.Config, delays []time.Duration, progress ProgressFunc) levelStats {
	urls := session.frontier.URLs()
	level := session.level
	total := len(urls)

	// Pages queued in this level must not be queued again by their siblings.
	session.markVisited(urls)

	notify(progress, ProgressEvent{
		Type:  ProgressLevelStarted,
		Level: level,
		Total: total,
	})

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = sitemapper.DefaultConcurrency
	}

	resultCh := make(chan pageResult, total)

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- c.processPage(ctx, session, cfg, delays, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results by position so the next frontier does not depend on
	// completion order.
	results := make([]pageResult, total)
	var stats levelStats
	completed := 0
	for result := range resultCh {
		completed++
		results[result.position] = result

		if result.skipped || (ctx.Err() != nil && isContextErr(result.err)) {
			stats.interrupted++
		}

		switch {
		case result.skipped:
		case result.err != nil:
			stats.failed++
			notify(progress, ProgressEvent{
				Type:      ProgressFailed,
				Level:     level,
				Completed: completed,
				Total:     total,
				URL:       result.url,
				Error:     result.err,
			})
		default:
			stats.fetched++
			stats.bytes += result.bytes
			notify(progress, ProgressEvent{
				Type:      ProgressFetched,
				Level:     level,
				Completed: completed,
				Total:     total,
				URL:       result.url,
				Links:     len(result.links),
			})
		}
	}

	next := NewFrontier()
	for _, result := range results {
		for _, u := range result.links {
			next.Add(u)
		}
	}
	session.frontier = next

	notify(progress, ProgressEvent{
		Type:      ProgressLevelFinished,
		Level:     level,
		Completed: completed,
		Total:     total,
		Links:     next.Len(),
	})

	return stats
}

// processPage fetches a single URL and returns its candidate links.
// Each fetch attempt is bounded by cfg.Timeout when it is set.
func (c *Crawler) processPage(ctx context.Context, session *Session, cfg sitemapper.Config, delays []time.Duration, position int, u sitemapper.URL) pageResult {
	result := pageResult{
		position: position,
		url:      u.String(),
	}

	if err := ctx.Err(); err != nil {
		result.skipped = true
		result.err = err
		return result
	}

	fetch := c.Fetcher.Fetch
	if cfg.Timeout > 0 {
		fetch = func(ctx context.Context, url string) (string, error) {
			ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
			return c.Fetcher.Fetch(ctx, url)
		}
	}

	body, err := FetchWithRetryDelays(ctx, result.url, fetch, delays, nil)
	if err != nil {
		result.err = err
		return result
	}
	result.bytes = len(body)

	links, err := c.Extractor.ExtractLinks(body)
	if err != nil {
		result.err = fmt.Errorf("extract links from %s: %w", result.url, err)
		return result
	}

	result.links = candidates(session, links, cfg.MaxLinksPerPage)
	return result
}

// candidates resolves raw links against the session root and keeps, in
// extraction order, those that are in scope and not yet visited. The list
// is then cut to maxLinks; duplicates within the page count toward the cap.
func candidates(session *Session, links []string, maxLinks int) []sitemapper.URL {
	var urls []sitemapper.URL
	for _, raw := range links {
		u, err := sitemapper.ResolveURL(raw, session.root)
		if err != nil {
			continue
		}
		if session.Visited(u.DedupKey()) {
			continue
		}
		urls = append(urls, u)
	}

	if maxLinks > 0 && len(urls) > maxLinks {
		urls = urls[:maxLinks]
	}
	return urls
}

func (c *Crawler) config() sitemapper.Config {
	if c.Config == (sitemapper.Config{}) {
		return sitemapper.DefaultConfig()
	}
	return c.Config
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
