package research_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/newsynth"
	"github.com/fwojciec/newsynth/mock"
	"github.com/fwojciec/newsynth/research"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent_Run(t *testing.T) {
	t.Parallel()

	t.Run("searches then summarizes", func(t *testing.T) {
		t.Parallel()

		var gotMax int
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, topic string, maxResults int) ([]*newsynth.Article, error) {
				gotMax = maxResults
				return sampleArticles(), nil
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, topic string, articles []*newsynth.Article) string {
				return "summary of " + topic
			},
		}

		agent := &research.Agent{Searcher: searcher, Summarizer: summarizer, MaxResults: 3}
		report := agent.Run(context.Background(), "economy")

		require.NotNil(t, report)
		assert.Equal(t, "economy", report.Topic)
		assert.Equal(t, 3, gotMax)
		assert.Len(t, report.Articles, 2)
		assert.Equal(t, "summary of economy", report.Summary)
		assert.NoError(t, report.SearchErr)
		_, err := uuid.Parse(report.ID)
		assert.NoError(t, err)
	})

	t.Run("defaults max results", func(t *testing.T) {
		t.Parallel()

		var gotMax int
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string, maxResults int) ([]*newsynth.Article, error) {
				gotMax = maxResults
				return nil, nil
			},
		}

		agent := &research.Agent{Searcher: searcher}
		agent.Run(context.Background(), "economy")

		assert.Equal(t, newsynth.DefaultMaxResults, gotMax)
	})

	t.Run("records search failure and skips summarizer", func(t *testing.T) {
		t.Parallel()

		searchErr := errors.New("results page unavailable")
		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]*newsynth.Article, error) {
				return []*newsynth.Article{}, searchErr
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, string, []*newsynth.Article) string {
				t.Fatal("summarizer should not be called")
				return ""
			},
		}

		agent := &research.Agent{Searcher: searcher, Summarizer: summarizer}
		report := agent.Run(context.Background(), "economy")

		assert.ErrorIs(t, report.SearchErr, searchErr)
		assert.Empty(t, report.Articles)
		assert.Empty(t, report.Summary)
	})

	t.Run("skips summarizer when no articles found", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]*newsynth.Article, error) {
				return []*newsynth.Article{}, nil
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, string, []*newsynth.Article) string {
				t.Fatal("summarizer should not be called")
				return ""
			},
		}

		agent := &research.Agent{Searcher: searcher, Summarizer: summarizer}
		report := agent.Run(context.Background(), "economy")

		assert.NoError(t, report.SearchErr)
		assert.Empty(t, report.Articles)
		assert.Empty(t, report.Summary)
	})

	t.Run("each run gets a distinct ID", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]*newsynth.Article, error) {
				return nil, nil
			},
		}

		agent := &research.Agent{Searcher: searcher}

		assert.NotEqual(t, agent.Run(context.Background(), "a").ID, agent.Run(context.Background(), "a").ID)
	})
}
