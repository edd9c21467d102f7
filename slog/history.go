package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitemapper"
)

// Ensure LoggingCrawlService implements sitemapper.CrawlService.
var _ sitemapper.CrawlService = (*LoggingCrawlService)(nil)

// LoggingCrawlService wraps a CrawlService, logging the crawls it records.
// Lookups are delegated without logging.
type LoggingCrawlService struct {
	next   sitemapper.CrawlService
	logger *slog.Logger
}

// NewLoggingCrawlService creates a new LoggingCrawlService.
func NewLoggingCrawlService(next sitemapper.CrawlService, logger *slog.Logger) *LoggingCrawlService {
	return &LoggingCrawlService{next: next, logger: logger}
}

// CreateCrawl delegates to the wrapped service and logs the operation.
func (s *LoggingCrawlService) CreateCrawl(ctx context.Context, crawl *sitemapper.Crawl) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record crawl",
			"id", crawl.ID,
			"seed", crawl.SeedURL,
			"urls", len(crawl.URLs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCrawl(ctx, crawl)
}

// FindCrawlByID delegates to the wrapped service.
func (s *LoggingCrawlService) FindCrawlByID(ctx context.Context, id string) (*sitemapper.Crawl, error) {
	return s.next.FindCrawlByID(ctx, id)
}

// FindCrawls delegates to the wrapped service.
func (s *LoggingCrawlService) FindCrawls(ctx context.Context, filter sitemapper.CrawlFilter) ([]*sitemapper.Crawl, error) {
	return s.next.FindCrawls(ctx, filter)
}
