// Package http provides an HTTP-based implementation of sitemapper.Fetcher.
// Pages are fetched as served; JavaScript is never executed.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sitemapper"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = sitemapper.DefaultTimeout

// DefaultUserAgent identifies the crawler to the sites it visits.
const DefaultUserAgent = "sitemapper/1.0 (+https://github.com/fwojciec/sitemapper)"

// DefaultMaxBodySize caps how much of a page is read. Links beyond the
// limit are not discovered.
const DefaultMaxBodySize int64 = 10 << 20

// Ensure Fetcher implements sitemapper.Fetcher at compile time.
var _ sitemapper.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// Redirects are followed by the underlying client.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum number of body bytes read per page.
// Longer bodies are truncated.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Responses other than
// 200 OK and responses that are not text are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	if ct := resp.Header.Get("Content-Type"); !isTextContent(ct) {
		return "", fmt.Errorf("unsupported content type %q for %s", ct, url)
	}

	var body io.Reader = resp.Body
	if f.maxBodySize > 0 {
		body = io.LimitReader(resp.Body, f.maxBodySize)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// isTextContent reports whether a Content-Type header describes a document
// that may contain links. A missing header is accepted.
func isTextContent(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/") || mediaType == "application/xhtml+xml"
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
