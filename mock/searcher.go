package mock

import (
	"context"

	"github.com/fwojciec/newsynth"
)

var _ newsynth.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of newsynth.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, topic string, maxResults int) ([]*newsynth.Article, error)
}

func (s *Searcher) Search(ctx context.Context, topic string, maxResults int) ([]*newsynth.Article, error) {
	return s.SearchFn(ctx, topic, maxResults)
}

var _ newsynth.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newsynth.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, topic string, articles []*newsynth.Article) string
}

func (s *Summarizer) Summarize(ctx context.Context, topic string, articles []*newsynth.Article) string {
	return s.SummarizeFn(ctx, topic, articles)
}
