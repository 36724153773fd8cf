package research

import (
	"context"
	"log/slog"

	"github.com/fwojciec/newsynth"
	"github.com/google/uuid"
)

// Report is the outcome of one research query.
type Report struct {
	// ID correlates log lines for this query.
	ID       string
	Topic    string
	Articles []*newsynth.Article

	// Summary is empty when no articles were found.
	Summary string

	// SearchErr is set when the results page could not be retrieved.
	SearchErr error
}

// Agent runs the search-then-summarize pipeline for a topic.
type Agent struct {
	Searcher   newsynth.Searcher
	Summarizer newsynth.Summarizer
	MaxResults int
	Logger     *slog.Logger
}

// Run searches for articles about topic and summarizes them.
// It always returns a Report; failures are recorded on it, not returned.
func (a *Agent) Run(ctx context.Context, topic string) *Report {
	report := &Report{
		ID:       uuid.NewString(),
		Topic:    topic,
		Articles: []*newsynth.Article{},
	}
	logger := a.logger().With("run", report.ID)

	maxResults := a.MaxResults
	if maxResults <= 0 {
		maxResults = newsynth.DefaultMaxResults
	}

	articles, err := a.Searcher.Search(ctx, topic, maxResults)
	if err != nil {
		logger.Error("search failed", "topic", topic, "err", err)
		report.SearchErr = err
		return report
	}
	logger.Info("search finished", "topic", topic, "articles", len(articles))

	if len(articles) == 0 {
		return report
	}
	report.Articles = articles

	report.Summary = a.Summarizer.Summarize(ctx, topic, articles)
	return report
}

func (a *Agent) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}
