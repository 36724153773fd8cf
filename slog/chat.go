package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsynth"
)

// Ensure LoggingChatClient implements newsynth.ChatClient.
var _ newsynth.ChatClient = (*LoggingChatClient)(nil)

// LoggingChatClient wraps a ChatClient with logging.
type LoggingChatClient struct {
	next   newsynth.ChatClient
	logger *slog.Logger
}

// NewLoggingChatClient creates a new LoggingChatClient.
func NewLoggingChatClient(next newsynth.ChatClient, logger *slog.Logger) *LoggingChatClient {
	return &LoggingChatClient{next: next, logger: logger}
}

// Chat delegates to the wrapped client and logs prompt and reply sizes.
func (c *LoggingChatClient) Chat(ctx context.Context, model string, messages []newsynth.ChatMessage) (reply string, err error) {
	defer func(begin time.Time) {
		promptChars := 0
		for _, m := range messages {
			promptChars += len(m.Content)
		}
		c.logger.Info("chat",
			"model", model,
			"messages", len(messages),
			"prompt_chars", promptChars,
			"reply_chars", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Chat(ctx, model, messages)
}
