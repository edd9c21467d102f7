package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/sitemapper"
	"github.com/fwojciec/sitemapper/mock"
	sitemapperslog "github.com/fwojciec/sitemapper/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapWriter_WriteSitemap(t *testing.T) {
	t.Parallel()

	t.Run("logs path, size and unchanged flag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapWriter{
			WriteSitemapFn: func(ctx context.Context, path string, urls []string) (*sitemapper.SitemapFile, error) {
				return &sitemapper.SitemapFile{Path: path, URLs: len(urls), Bytes: 321, Unchanged: true}, nil
			},
		}

		w := sitemapperslog.NewLoggingSitemapWriter(inner, logger)
		file, err := w.WriteSitemap(context.Background(), "sitemap_example_com.xml", []string{"http://www.example.com/"})

		require.NoError(t, err)
		assert.Equal(t, 321, file.Bytes)
		output := buf.String()
		assert.Contains(t, output, "sitemap write")
		assert.Contains(t, output, "path=sitemap_example_com.xml")
		assert.Contains(t, output, "urls=1")
		assert.Contains(t, output, "bytes=321")
		assert.Contains(t, output, "unchanged=true")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapWriter{
			WriteSitemapFn: func(ctx context.Context, path string, urls []string) (*sitemapper.SitemapFile, error) {
				return nil, errors.New("permission denied")
			},
		}

		w := sitemapperslog.NewLoggingSitemapWriter(inner, logger)
		_, err := w.WriteSitemap(context.Background(), "/root/sitemap.xml", nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"permission denied\"")
		assert.NotContains(t, output, "bytes=")
	})
}
