package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/newsynth"
	"github.com/fwojciec/newsynth/mock"
	nsslog "github.com/fwojciec/newsynth/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Searcher{
		SearchFn: func(ctx context.Context, topic string, maxResults int) ([]*newsynth.Article, error) {
			return []*newsynth.Article{
				{Title: "A", Link: "https://a.example", Content: "a"},
				{Title: "B", Link: "https://b.example", Content: "b"},
			}, nil
		},
	}

	searcher := nsslog.NewLoggingSearcher(inner, logger)
	articles, err := searcher.Search(context.Background(), "ai", 5)

	require.NoError(t, err)
	assert.Len(t, articles, 2)
	output := buf.String()
	assert.Contains(t, output, "msg=search")
	assert.Contains(t, output, "topic=ai")
	assert.Contains(t, output, "max=5")
	assert.Contains(t, output, "count=2")
	assert.Contains(t, output, "duration=")
}
