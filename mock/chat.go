package mock

import (
	"context"

	"github.com/fwojciec/newsynth"
)

var _ newsynth.ChatClient = (*ChatClient)(nil)

// ChatClient is a mock implementation of newsynth.ChatClient.
type ChatClient struct {
	ChatFn func(ctx context.Context, model string, messages []newsynth.ChatMessage) (string, error)
}

func (c *ChatClient) Chat(ctx context.Context, model string, messages []newsynth.ChatMessage) (string, error) {
	return c.ChatFn(ctx, model, messages)
}

var _ newsynth.ModelChecker = (*ModelChecker)(nil)

// ModelChecker is a mock implementation of newsynth.ModelChecker.
type ModelChecker struct {
	CheckModelFn func(ctx context.Context, model string) error
}

func (c *ModelChecker) CheckModel(ctx context.Context, model string) error {
	return c.CheckModelFn(ctx, model)
}
