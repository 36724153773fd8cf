// Package duckduckgo implements newsynth.Searcher on top of the DuckDuckGo
// HTML results page. No API key is required.
package duckduckgo

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/newsynth"
	"golang.org/x/sync/errgroup"
)

// DefaultEndpoint is the JavaScript-free DuckDuckGo results page.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

// QuerySuffix is appended to every topic to bias results toward news.
const QuerySuffix = " news"

// Ensure Searcher implements newsynth.Searcher at compile time.
var _ newsynth.Searcher = (*Searcher)(nil)

// Searcher fetches a results page for a topic and enriches each result
// with extracted article text.
type Searcher struct {
	Fetcher   newsynth.Fetcher
	Extractor newsynth.Extractor

	// Endpoint overrides DefaultEndpoint.
	Endpoint string

	// Concurrency bounds parallel article processing. Values below 2
	// process articles one at a time.
	Concurrency int

	Logger *slog.Logger
}

// Search returns up to maxResults articles about topic in result order.
// A failed results-page fetch returns an empty list and the fetch error.
// Failed or empty articles are skipped.
func (s *Searcher) Search(ctx context.Context, topic string, maxResults int) ([]*newsynth.Article, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return []*newsynth.Article{}, newsynth.Errorf(newsynth.EINVALID, "topic required")
	}
	if maxResults <= 0 {
		maxResults = newsynth.DefaultMaxResults
	}

	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	searchURL, err := QueryURL(endpoint, topic)
	if err != nil {
		return []*newsynth.Article{}, err
	}

	page, err := s.Fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return []*newsynth.Article{}, err
	}

	results, err := ParseResults(page, searchURL, maxResults)
	if err != nil {
		return []*newsynth.Article{}, err
	}

	s.logger().Debug("search results parsed", "topic", topic, "count", len(results))

	return s.enrich(ctx, results), nil
}

// enrich fetches and extracts each result. Slots are indexed by result
// position so output order matches input order at any concurrency.
func (s *Searcher) enrich(ctx context.Context, results []Result) []*newsynth.Article {
	slots := make([]*newsynth.Article, len(results))

	var g errgroup.Group
	g.SetLimit(max(s.Concurrency, 1))

	for i, r := range results {
		g.Go(func() error {
			slots[i] = s.processResult(ctx, r)
			return nil
		})
	}
	_ = g.Wait()

	articles := make([]*newsynth.Article, 0, len(slots))
	for _, a := range slots {
		if a != nil {
			articles = append(articles, a)
		}
	}
	return articles
}

// processResult returns nil when the result should be skipped.
func (s *Searcher) processResult(ctx context.Context, r Result) *newsynth.Article {
	page, err := s.Fetcher.Fetch(ctx, r.Link)
	if err != nil {
		s.logger().Warn("could not fetch article", "url", r.Link, "err", err)
		return nil
	}

	content := s.Extractor.Extract(page, newsynth.ExtractContentCap)
	if content == "" {
		s.logger().Warn("no content extracted", "url", r.Link)
		return nil
	}

	return newsynth.NewArticle(r.Title, r.Link, content)
}

func (s *Searcher) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
