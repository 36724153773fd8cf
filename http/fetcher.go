// Package http provides an HTTP-based implementation of newsynth.Fetcher
// for fetching search result pages and article pages.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/newsynth"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// It applies uniformly to search pages and article pages.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies requests as a desktop browser. Some news
// sites and the DuckDuckGo HTML endpoint reject unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements newsynth.Fetcher at compile time.
var _ newsynth.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bytes using plain HTTP GET requests.
// A single http.Client is shared by all calls so connections are reused.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   newsynth.DomainLimiter
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

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithDomainLimiter makes Fetch wait on the limiter for the request host
// before each request.
func WithDomainLimiter(l newsynth.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL.
// All failures are returned as *newsynth.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	body, err := f.fetch(ctx, rawURL)
	if err != nil {
		return nil, &newsynth.FetchError{URL: rawURL, Err: err}
	}
	return body, nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, newsynth.Errorf(newsynth.EINVALID, "invalid URL: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, newsynth.Errorf(newsynth.EINVALID, "URL must be absolute http(s)")
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Close releases idle connections held by the shared client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
