// Package fs writes sitemap files to the local file system.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitemapper"
)

// Ensure SitemapWriter implements sitemapper.SitemapWriter at compile time.
var _ sitemapper.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter writes encoded sitemaps with atomic replace semantics.
// The document is written to a temporary file in the target directory and
// renamed over the destination, so readers never observe a partial file.
type SitemapWriter struct {
	Encoder sitemapper.SitemapEncoder
}

// NewSitemapWriter creates a new SitemapWriter using encoder.
func NewSitemapWriter(encoder sitemapper.SitemapEncoder) *SitemapWriter {
	return &SitemapWriter{Encoder: encoder}
}

// WriteSitemap encodes urls and writes them to path, creating parent
// directories as needed. An existing file with identical content is left
// untouched and reported as Unchanged.
func (w *SitemapWriter) WriteSitemap(ctx context.Context, path string, urls []string) (*sitemapper.SitemapFile, error) {
	if path == "" {
		return nil, sitemapper.Errorf(sitemapper.EINVALID, "sitemap path required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := w.Encoder.Encode(&buf, urls); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	data := buf.Bytes()

	file := &sitemapper.SitemapFile{
		Path:  path,
		URLs:  len(urls),
		Bytes: len(data),
		Hash:  ComputeHash(data),
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			file.Unchanged = true
			return file, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read existing sitemap %s: %w", path, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return nil, fmt.Errorf("write sitemap %s: %w", path, err)
	}
	return file, nil
}

// ComputeHash returns the hex-encoded xxhash of data.
func ComputeHash(data []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
