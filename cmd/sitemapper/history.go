package main

import (
	"fmt"

	"github.com/fwojciec/sitemapper"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := sitemapper.CrawlFilter{Limit: c.Limit}
	if c.Host != "" {
		filter.Host = &c.Host
	}

	crawls, err := deps.Crawls.FindCrawls(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemapper.ErrorMessage(err))
		return err
	}

	if len(crawls) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawls recorded. Use 'sitemapper <url>' to build a sitemap.")
		return nil
	}

	for _, cr := range crawls {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d fetched, %d failed%s\n",
			cr.ID,
			cr.StartedAt.Local().Format("2006-01-02 15:04"),
			cr.SeedURL,
			cr.Fetched,
			cr.Failed,
			crawlFlags(cr),
		)
	}

	return nil
}

// crawlFlags summarizes how a crawl ended when it did not run to completion.
func crawlFlags(c *sitemapper.Crawl) string {
	switch {
	case c.Canceled:
		return "  (interrupted)"
	case c.MaxDepthReached:
		return "  (depth limit)"
	default:
		return ""
	}
}
