package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitemapper"
)

// Ensure LoggingLinkExtractor implements sitemapper.LinkExtractor.
var _ sitemapper.LinkExtractor = (*LoggingLinkExtractor)(nil)

// LoggingLinkExtractor wraps a LinkExtractor with debug logging.
type LoggingLinkExtractor struct {
	next   sitemapper.LinkExtractor
	logger *slog.Logger
}

// NewLoggingLinkExtractor creates a new LoggingLinkExtractor.
func NewLoggingLinkExtractor(next sitemapper.LinkExtractor, logger *slog.Logger) *LoggingLinkExtractor {
	return &LoggingLinkExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the operation.
func (e *LoggingLinkExtractor) ExtractLinks(html string) (links []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("link extraction",
			"bytes", len(html),
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(html)
}
