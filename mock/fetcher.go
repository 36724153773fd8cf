package mock

import (
	"context"

	"github.com/fwojciec/newsynth"
)

var _ newsynth.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsynth.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ newsynth.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsynth.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
