package crawl

import (
	"context"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is called before each retry of a failed fetch.
type RetryFunc func(url string, attempt int, err error)

// baseRetryDelay is the wait before the first retry; it doubles per retry.
const baseRetryDelay = 1 * time.Second

// DefaultRetryDelays returns the backoff delays for n retries: 1s, 2s, 4s, ...
// Zero retries returns nil, meaning a fetch is attempted exactly once.
func DefaultRetryDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = baseRetryDelay << i
	}
	return delays
}

// FetchWithRetryDelays fetches url, retrying once per entry in delays after
// waiting that long. The onRetry function, if provided, is called for each
// retry attempt. Returns the last error when every attempt fails.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration, onRetry RetryFunc) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
