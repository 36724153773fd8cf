// Package openai implements newsynth.ChatClient and newsynth.ModelChecker
// against any OpenAI-compatible chat completions API, including Ollama's
// /v1 endpoint.
package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/fwojciec/newsynth"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultBaseURL is Ollama's OpenAI-compatible endpoint.
const DefaultBaseURL = "http://localhost:11434/v1/"

// Ensure Client implements the model interfaces at compile time.
var (
	_ newsynth.ChatClient   = (*Client)(nil)
	_ newsynth.ModelChecker = (*Client)(nil)
)

// Client wraps the openai-go SDK.
type Client struct {
	client openai.Client
}

// NewClient creates a Client for baseURL. An empty baseURL uses
// DefaultBaseURL; an empty apiKey sends no key. Requests are made once,
// without SDK retries.
func NewClient(baseURL, apiKey string, opts ...option.RequestOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	all := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		all = append(all, option.WithAPIKey(apiKey))
	}
	all = append(all, opts...)
	return &Client{client: openai.NewClient(all...)}
}

// Chat sends messages as a chat completion and returns the first choice.
func (c *Client) Chat(ctx context.Context, model string, messages []newsynth.ChatMessage) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: toParams(messages),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", newsynth.Errorf(newsynth.EINTERNAL, "model %q returned no choices", model)
	}
	return resp.Choices[0].Message.Content, nil
}

// CheckModel retrieves model from the models endpoint.
func (c *Client) CheckModel(ctx context.Context, model string) error {
	_, err := c.client.Models.Get(ctx, model)
	if err == nil {
		return nil
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return newsynth.Errorf(newsynth.ENOTFOUND, "model %q is not available", model)
	}
	return newsynth.Errorf(newsynth.EUNAVAILABLE, "model service is not accessible: %v", err)
}

func toParams(messages []newsynth.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case newsynth.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case newsynth.RoleAssistant:
			params = append(params, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}
