package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitemapper"
)

// Ensure LoggingSitemapWriter implements sitemapper.SitemapWriter.
var _ sitemapper.SitemapWriter = (*LoggingSitemapWriter)(nil)

// LoggingSitemapWriter wraps a SitemapWriter with debug logging.
type LoggingSitemapWriter struct {
	next   sitemapper.SitemapWriter
	logger *slog.Logger
}

// NewLoggingSitemapWriter creates a new LoggingSitemapWriter.
func NewLoggingSitemapWriter(next sitemapper.SitemapWriter, logger *slog.Logger) *LoggingSitemapWriter {
	return &LoggingSitemapWriter{next: next, logger: logger}
}

// WriteSitemap delegates to the wrapped writer and logs the operation.
func (w *LoggingSitemapWriter) WriteSitemap(ctx context.Context, path string, urls []string) (file *sitemapper.SitemapFile, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"path", path,
			"urls", len(urls),
			"duration", time.Since(begin),
			"err", err,
		}
		if file != nil {
			attrs = append(attrs, "bytes", file.Bytes, "unchanged", file.Unchanged)
		}
		w.logger.Info("sitemap write", attrs...)
	}(time.Now())
	return w.next.WriteSitemap(ctx, path, urls)
}
