package newsynth

import "context"

// Placeholder summaries returned instead of model output.
const (
	NoArticlesSummary = "No articles found to summarize."
	FailedSummary     = "Could not generate summary due to model error."
)

// Summarizer produces a natural-language summary of articles about a topic.
type Summarizer interface {
	// Summarize returns the model's summary, or NoArticlesSummary when
	// articles is empty, or FailedSummary when the model call fails.
	Summarize(ctx context.Context, topic string, articles []*Article) string
}
