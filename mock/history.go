package mock

import (
	"context"

	"github.com/fwojciec/sitemapper"
)

var _ sitemapper.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of sitemapper.CrawlService.
type CrawlService struct {
	CreateCrawlFn   func(ctx context.Context, crawl *sitemapper.Crawl) error
	FindCrawlByIDFn func(ctx context.Context, id string) (*sitemapper.Crawl, error)
	FindCrawlsFn    func(ctx context.Context, filter sitemapper.CrawlFilter) ([]*sitemapper.Crawl, error)
}

func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *sitemapper.Crawl) error {
	return s.CreateCrawlFn(ctx, crawl)
}

func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*sitemapper.Crawl, error) {
	return s.FindCrawlByIDFn(ctx, id)
}

func (s *CrawlService) FindCrawls(ctx context.Context, filter sitemapper.CrawlFilter) ([]*sitemapper.Crawl, error) {
	return s.FindCrawlsFn(ctx, filter)
}
