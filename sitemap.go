package sitemapper

import (
	"context"
	"io"
)

// SitemapEncoder serializes URLs into a sitemap document.
type SitemapEncoder interface {
	// Encode writes a complete UTF-8 document listing urls in the given order.
	Encode(w io.Writer, urls []string) error
}

// SitemapFile describes a sitemap document persisted by a SitemapWriter.
type SitemapFile struct {
	Path  string
	URLs  int
	Bytes int
	Hash  string

	// Unchanged is set when an identical document already existed at Path
	// and was left in place.
	Unchanged bool
}

// SitemapWriter persists sitemap documents.
type SitemapWriter interface {
	// WriteSitemap encodes urls and stores the document at path.
	// Readers of path never observe a partially written document.
	WriteSitemap(ctx context.Context, path string, urls []string) (*SitemapFile, error)
}
