// Package ollama implements newsynth.ChatClient and newsynth.ModelChecker
// against a local Ollama server.
package ollama

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/newsynth"
	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// DefaultPort is the port a local Ollama server listens on.
const DefaultPort = "11434"

// Ensure Client implements the model interfaces at compile time.
var (
	_ newsynth.ChatClient   = (*Client)(nil)
	_ newsynth.ModelChecker = (*Client)(nil)
)

// Client talks to the Ollama chat and model-listing endpoints.
type Client struct {
	api *api.Client
}

// NewClient creates a Client for the Ollama server at host, which is
// normalized by ParseHost. A nil httpClient uses http.DefaultClient.
func NewClient(host string, httpClient *http.Client) (*Client, error) {
	base, err := ParseHost(host)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{api: api.NewClient(base, httpClient)}, nil
}

// ParseHost turns an OLLAMA_HOST style value into a base URL the way the
// ollama CLI does: a missing scheme means http, and a missing port means
// DefaultPort without a scheme, or the scheme's own port with one.
// An empty host defers to the ollama environment configuration.
func ParseHost(host string) (*url.URL, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return envconfig.Host(), nil
	}

	defaultPort := DefaultPort
	scheme, hostport, ok := strings.Cut(host, "://")
	switch {
	case !ok:
		scheme, hostport = "http", host
	case scheme == "http":
		defaultPort = "80"
	case scheme == "https":
		defaultPort = "443"
	default:
		return nil, newsynth.Errorf(newsynth.EINVALID, "invalid ollama host %q: unsupported scheme %q", host, scheme)
	}

	hostport, path, _ := strings.Cut(hostport, "/")
	name, port, err := net.SplitHostPort(hostport)
	if err != nil {
		name, port = strings.Trim(hostport, "[]"), defaultPort
	}
	if name == "" {
		name = "127.0.0.1"
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return nil, newsynth.Errorf(newsynth.EINVALID, "invalid ollama host %q: bad port %q", host, port)
	}

	u := &url.URL{Scheme: scheme, Host: net.JoinHostPort(name, port)}
	if path != "" {
		u.Path = "/" + path
	}
	return u, nil
}

// Chat sends messages to model with streaming disabled and returns the
// assistant message content.
func (c *Client) Chat(ctx context.Context, model string, messages []newsynth.ChatMessage) (string, error) {
	msgs := make([]api.Message, len(messages))
	for i, m := range messages {
		msgs[i] = api.Message{Role: m.Role, Content: m.Content}
	}

	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: msgs,
		Stream:   &stream,
	}

	var sb strings.Builder
	err := c.api.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// CheckModel lists installed models and reports whether model is among them.
// A model without a tag matches its ":latest" variant.
func (c *Client) CheckModel(ctx context.Context, model string) error {
	resp, err := c.api.List(ctx)
	if err != nil {
		return newsynth.Errorf(newsynth.EUNAVAILABLE, "ollama is not running or not accessible: %v", err)
	}
	for _, m := range resp.Models {
		if matchModel(m.Name, model) || matchModel(m.Model, model) {
			return nil
		}
	}
	return newsynth.Errorf(newsynth.ENOTFOUND, "model %q is not installed", model)
}

func matchModel(installed, want string) bool {
	if installed == want {
		return true
	}
	return !strings.Contains(want, ":") && installed == want+":latest"
}
