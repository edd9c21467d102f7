package sitemapper

import "context"

// Fetcher retrieves page bodies from URLs.
type Fetcher interface {
	// Fetch performs one GET of url and returns the body.
	// Any transport failure, timeout, non-success status or non-text
	// response is returned as an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
