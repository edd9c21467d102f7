package sitemapper

import (
	"context"
	"time"
)

// Crawl records a finished sitemap build.
type Crawl struct {
	ID              string    `json:"id"`
	SeedURL         string    `json:"seedUrl"`
	Host            string    `json:"host"`
	MaxDepth        int       `json:"maxDepth"`
	MaxLinksPerPage int       `json:"maxLinksPerPage"`
	Levels          int       `json:"levels"`
	Fetched         int       `json:"fetched"`
	Failed          int       `json:"failed"`
	Unfetched       int       `json:"unfetched"`
	MaxDepthReached bool      `json:"maxDepthReached"`
	Canceled        bool      `json:"canceled"`
	OutputPath      string    `json:"outputPath"`
	URLs            []string  `json:"urls"`
	StartedAt       time.Time `json:"startedAt"`
	FinishedAt      time.Time `json:"finishedAt"`
}

// Validate returns an error if the crawl contains invalid fields.
func (c *Crawl) Validate() error {
	if c.SeedURL == "" {
		return Errorf(EINVALID, "crawl seed URL required")
	}
	if c.Host == "" {
		return Errorf(EINVALID, "crawl host required")
	}
	if c.FinishedAt.Before(c.StartedAt) {
		return Errorf(EINVALID, "crawl cannot finish before it starts")
	}
	return nil
}

// CrawlService represents a service for recording crawl history.
type CrawlService interface {
	// CreateCrawl records a crawl together with its URLs.
	// The ID is assigned by the service.
	CreateCrawl(ctx context.Context, crawl *Crawl) error

	// FindCrawlByID retrieves a crawl with its URLs.
	// Returns ENOTFOUND if the crawl does not exist.
	FindCrawlByID(ctx context.Context, id string) (*Crawl, error)

	// FindCrawls retrieves crawls matching the filter, newest first.
	// URLs are not loaded.
	FindCrawls(ctx context.Context, filter CrawlFilter) ([]*Crawl, error)
}

// CrawlFilter represents a filter for FindCrawls.
type CrawlFilter struct {
	Host *string `json:"host"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
