// Package research orchestrates a single research query: searching for
// articles about a topic and summarizing them with a language model.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/newsynth"
)

// Ensure Summarizer implements newsynth.Summarizer at compile time.
var _ newsynth.Summarizer = (*Summarizer)(nil)

// Summarizer builds a summary prompt and sends it to a chat model.
type Summarizer struct {
	Chat  newsynth.ChatClient
	Model string

	// Hint is logged after a failed model call, e.g. how to install the model.
	Hint string

	Logger *slog.Logger
}

// Summarize returns the model's summary of articles. It returns
// NoArticlesSummary without calling the model when articles is empty,
// and FailedSummary when the model call fails.
func (s *Summarizer) Summarize(ctx context.Context, topic string, articles []*newsynth.Article) string {
	if len(articles) == 0 {
		return newsynth.NoArticlesSummary
	}

	model := s.Model
	if model == "" {
		model = newsynth.DefaultModel
	}

	if s.Chat == nil {
		s.logger().Error("summarization failed", "model", model, "err", "no chat client configured")
		return newsynth.FailedSummary
	}

	messages := []newsynth.ChatMessage{
		{Role: newsynth.RoleUser, Content: BuildPrompt(topic, articles)},
	}

	summary, err := s.Chat.Chat(ctx, model, messages)
	if err != nil {
		s.logger().Error("summarization failed", "model", model, "err", err)
		s.logger().Warn("make sure the model service is running and the model is installed",
			"model", model,
			"hint", s.Hint,
		)
		return newsynth.FailedSummary
	}

	return summary
}

func (s *Summarizer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// BuildPrompt builds the summarization prompt for topic and articles.
// The requested length is advisory to the model.
func BuildPrompt(topic string, articles []*newsynth.Article) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful AI assistant that summarizes news articles.\n\n")
	fmt.Fprintf(&sb, "Please analyze the following news articles about %q and provide a concise summary:\n\n", topic)
	sb.WriteString(FormatArticles(topic, articles))
	sb.WriteString("\nPlease provide:\n")
	sb.WriteString("1. A brief overview of the main developments\n")
	sb.WriteString("2. Key points and important details\n")
	sb.WriteString("3. Any notable trends or patterns\n\n")
	sb.WriteString("Keep the summary informative but concise (around 200-300 words).\n")
	return sb.String()
}

// FormatArticles renders the topic and each article's 1-based index,
// title and content as a single text block.
func FormatArticles(topic string, articles []*newsynth.Article) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Topic: %s\n\n", topic)
	for i, a := range articles {
		fmt.Fprintf(&sb, "Article %d: %s\n", i+1, a.Title)
		fmt.Fprintf(&sb, "Content: %s\n\n", a.Content)
	}
	return sb.String()
}
