package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/newsynth"
	nshttp "github.com/fwojciec/newsynth/http"
	"github.com/fwojciec/newsynth/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := nshttp.NewFetcher()
		defer fetcher.Close()

		body, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(body))
	})

	t.Run("sends browser user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := nshttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, nshttp.DefaultUserAgent, <-got)
	})

	t.Run("custom user agent option", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := nshttp.NewFetcher(nshttp.WithUserAgent("newsynth-test"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "newsynth-test", <-got)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nshttp.NewFetcher(nshttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nshttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns fetch error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := nshttp.NewFetcher(nshttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)

		var fe *newsynth.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "http://non-existent-host.invalid/page", fe.URL)
	})

	t.Run("returns error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := nshttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Equal(t, newsynth.EUNAVAILABLE, newsynth.ErrorCode(err))
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := nshttp.NewFetcher()
		defer fetcher.Close()

		body, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
	})

	t.Run("rejects relative URLs", func(t *testing.T) {
		t.Parallel()

		fetcher := nshttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "/relative/path")
		require.Error(t, err)

		var fe *newsynth.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "/relative/path", fe.URL)
	})

	t.Run("waits on domain limiter with request host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		var domains []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			},
		}

		fetcher := nshttp.NewFetcher(nshttp.WithDomainLimiter(limiter))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL+"/a")
		require.NoError(t, err)
		require.Len(t, domains, 1)
		assert.Equal(t, server.Listener.Addr().String(), domains[0])
	})

	t.Run("limiter error aborts request", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		limiter := &mock.DomainLimiter{
			WaitFn: func(context.Context, string) error {
				return errors.New("canceled")
			},
		}

		fetcher := nshttp.NewFetcher(nshttp.WithDomainLimiter(limiter))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, int32(0), hits.Load())
	})
}

// Compile-time verification that Fetcher implements newsynth.Fetcher
var _ newsynth.Fetcher = (*nshttp.Fetcher)(nil)
