package newsynth

import "context"

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "mistral"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is a single message in a chat exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient invokes a chat-style language model.
type ChatClient interface {
	// Chat sends messages to model and returns the generated text.
	Chat(ctx context.Context, model string, messages []ChatMessage) (string, error)
}

// ModelChecker verifies a model service is reachable before use.
type ModelChecker interface {
	// CheckModel returns EUNAVAILABLE if the service cannot be reached
	// and ENOTFOUND if the model is not installed.
	CheckModel(ctx context.Context, model string) error
}
