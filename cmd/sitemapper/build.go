package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sitemapper"
	"github.com/fwojciec/sitemapper/crawl"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	root, err := sitemapper.ParseURL(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemapper.ErrorMessage(err))
		return err
	}

	cfg := c.Config()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemapper.ErrorMessage(err))
		return err
	}

	crawler := &crawl.Crawler{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Config:    cfg,
	}
	session := crawl.NewSession(root)

	fmt.Fprintf(deps.Stdout, "Crawling %s (max depth %d)\n", root, cfg.MaxDepth)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressLevelStarted:
			fmt.Fprintf(deps.Stdout, "  Level %d: %d URLs\n", event.Level, event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 80), event.Error)
		case crawl.ProgressMaxDepth:
			fmt.Fprintf(deps.Stdout, "  Max depth %d reached, %d URLs not fetched\n", event.Level, event.Total)
		case crawl.ProgressFinished:
			// Summary printed after crawl completes
		}
	}

	startedAt := time.Now().UTC()
	result, err := crawler.Run(deps.Ctx, session, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %s\n", sitemapper.ErrorMessage(err))
		return err
	}
	finishedAt := time.Now().UTC()

	if result.Canceled {
		fmt.Fprintln(deps.Stderr, "Interrupted, writing partial sitemap")
	}

	fmt.Fprintf(deps.Stdout, "  Found %d pages (%d fetched, %d failed, %s)\n",
		result.Len(), result.Fetched, result.Failed, crawl.FormatBytes(result.Bytes))

	output := c.Output
	if output == "" {
		output = sitemapper.SitemapFileName(root)
	}

	// The sitemap is written even after an interrupt.
	file, err := deps.Writer.WriteSitemap(context.WithoutCancel(deps.Ctx), output, result.URLs())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error writing sitemap: %v\n", err)
		return err
	}

	if file.Unchanged {
		fmt.Fprintf(deps.Stdout, "Sitemap %s unchanged (%d URLs)\n", file.Path, file.URLs)
	} else {
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d URLs, %s)\n", file.Path, file.URLs, crawl.FormatBytes(file.Bytes))
	}

	if c.NoRecord || deps.Crawls == nil {
		return nil
	}

	record := &sitemapper.Crawl{
		SeedURL:         c.URL,
		Host:            root.Host,
		MaxDepth:        cfg.MaxDepth,
		MaxLinksPerPage: cfg.MaxLinksPerPage,
		Levels:          result.Levels,
		Fetched:         result.Fetched,
		Failed:          result.Failed,
		Unfetched:       result.Unfetched,
		MaxDepthReached: result.MaxDepthReached,
		Canceled:        result.Canceled,
		OutputPath:      file.Path,
		URLs:            result.URLs(),
		StartedAt:       startedAt,
		FinishedAt:      finishedAt,
	}
	// A history failure does not undo a written sitemap.
	if err := deps.Crawls.CreateCrawl(context.WithoutCancel(deps.Ctx), record); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: crawl not recorded: %s\n", sitemapper.ErrorMessage(err))
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Recorded crawl %s\n", record.ID)

	return nil
}
