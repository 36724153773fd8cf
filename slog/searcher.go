package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsynth"
)

// Ensure LoggingSearcher implements newsynth.Searcher.
var _ newsynth.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   newsynth.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next newsynth.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, topic string, maxResults int) (articles []*newsynth.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"topic", topic,
			"max", maxResults,
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, topic, maxResults)
}
