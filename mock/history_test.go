package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitemapper"
	"github.com/fwojciec/sitemapper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ sitemapper.CrawlService = &mock.CrawlService{}
}

func TestCrawlService_CreateCrawl(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateCrawlFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *sitemapper.Crawl
		s := &mock.CrawlService{
			CreateCrawlFn: func(_ context.Context, crawl *sitemapper.Crawl) error {
				calledWith = crawl
				return nil
			},
		}

		crawl := &sitemapper.Crawl{
			SeedURL: "https://example.com",
			Host:    "example.com",
			URLs:    []string{"https://www.example.com/"},
		}

		err := s.CreateCrawl(context.Background(), crawl)

		require.NoError(t, err)
		assert.Equal(t, crawl, calledWith)
	})
}
