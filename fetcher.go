package newsynth

import (
	"context"
	"fmt"
)

// Fetcher retrieves raw page bytes from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// Any network error, timeout or non-2xx status is reported
	// as a *FetchError carrying the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases idle connections.
	Close() error
}

// FetchError reports a failed fetch. Callers decide whether it is fatal
// (search results page) or skippable (individual article).
type FetchError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
