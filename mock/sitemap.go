package mock

import (
	"context"
	"io"

	"github.com/fwojciec/sitemapper"
)

var _ sitemapper.SitemapEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder is a mock implementation of sitemapper.SitemapEncoder.
type SitemapEncoder struct {
	EncodeFn func(w io.Writer, urls []string) error
}

func (e *SitemapEncoder) Encode(w io.Writer, urls []string) error {
	return e.EncodeFn(w, urls)
}

var _ sitemapper.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of sitemapper.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(ctx context.Context, path string, urls []string) (*sitemapper.SitemapFile, error)
}

func (w *SitemapWriter) WriteSitemap(ctx context.Context, path string, urls []string) (*sitemapper.SitemapFile, error) {
	return w.WriteSitemapFn(ctx, path, urls)
}
