package sitemapper

import "time"

// Default crawl configuration values.
const (
	DefaultMaxDepth        = 3
	DefaultMaxLinksPerPage = 100
	DefaultConcurrency     = 10
	DefaultTimeout         = 10 * time.Second
)

// Config holds the crawl limits.
type Config struct {
	// MaxDepth caps the number of BFS levels. The seed is level 1.
	MaxDepth int

	// MaxLinksPerPage caps the candidate links a single fetched page may
	// contribute to the next level. Zero means no limit.
	MaxLinksPerPage int

	// Concurrency bounds the number of fetches in flight within a level.
	Concurrency int

	// Timeout bounds a single fetch.
	Timeout time.Duration

	// Retries is the number of extra attempts for a failed fetch.
	// Zero keeps the one-attempt behavior.
	Retries int
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        DefaultMaxDepth,
		MaxLinksPerPage: DefaultMaxLinksPerPage,
		Concurrency:     DefaultConcurrency,
		Timeout:         DefaultTimeout,
	}
}

// Validate returns an error if the configuration cannot drive a crawl.
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return Errorf(EINVALID, "max depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.MaxLinksPerPage < 0 {
		return Errorf(EINVALID, "max links per page must not be negative, got %d", c.MaxLinksPerPage)
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return Errorf(EINVALID, "retries must not be negative, got %d", c.Retries)
	}
	return nil
}
