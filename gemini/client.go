package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/newsynth"
	"google.golang.org/genai"
)

// DefaultModel is used when the Gemini provider is selected without a model.
const DefaultModel = "gemini-2.5-flash"

// Ensure Client implements the model interfaces at compile time.
var (
	_ newsynth.ChatClient   = (*Client)(nil)
	_ newsynth.ModelChecker = (*Client)(nil)
)

// Client implements newsynth.ChatClient using Google Gemini.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Client.
func NewClient(client *genai.Client) *Client {
	return &Client{client: client}
}

// Chat generates a response to messages with model.
func (c *Client) Chat(ctx context.Context, model string, messages []newsynth.ChatMessage) (string, error) {
	if c.client == nil {
		return "", newsynth.Errorf(newsynth.EINTERNAL, "gemini client not configured")
	}

	contents, config := BuildContents(messages)
	if len(contents) == 0 {
		return "", newsynth.Errorf(newsynth.EINVALID, "at least one user message required")
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", newsynth.Errorf(newsynth.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// CheckModel fetches model metadata to confirm model is usable.
func (c *Client) CheckModel(ctx context.Context, model string) error {
	if c.client == nil {
		return newsynth.Errorf(newsynth.EUNAVAILABLE, "gemini client not configured")
	}

	_, err := c.client.Models.Get(ctx, model, nil)
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return newsynth.Errorf(newsynth.ENOTFOUND, "model %q is not available", model)
	}
	return newsynth.Errorf(newsynth.EUNAVAILABLE, "gemini is not accessible: %v", err)
}

// BuildContents converts chat messages into Gemini contents. System messages
// are joined into the system instruction of the returned config, which is nil
// when there are none. Assistant messages use Gemini's "model" role.
func BuildContents(messages []newsynth.ChatMessage) ([]*genai.Content, *genai.GenerateContentConfig) {
	var (
		contents []*genai.Content
		system   []string
	)
	for _, m := range messages {
		switch m.Role {
		case newsynth.RoleSystem:
			system = append(system, m.Content)
		case newsynth.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	if len(system) == 0 {
		return contents, nil
	}
	return contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		},
	}
}
