package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsynth"
	"github.com/fwojciec/newsynth/duckduckgo"
	"github.com/fwojciec/newsynth/gemini"
	"github.com/fwojciec/newsynth/goquery"
	nshttp "github.com/fwojciec/newsynth/http"
	"github.com/fwojciec/newsynth/ollama"
	"github.com/fwojciec/newsynth/openai"
	"github.com/fwojciec/newsynth/readability"
	"github.com/fwojciec/newsynth/research"
	nsslog "github.com/fwojciec/newsynth/slog"
	"github.com/fwojciec/newsynth/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When Chat is set it is used instead
	// of the configured provider, together with Checker.
	Chat    newsynth.ChatClient
	Checker newsynth.ModelChecker
	Fetcher newsynth.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsynth"),
		kong.Description("Search recent news about a topic and summarize it with a language model"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.LogLevel)
	model := resolveModel(cli.Provider, cli.Model)

	chat, checker, err := m.openProvider(ctx, cli, stderr)
	if err != nil {
		return err
	}
	chat = nsslog.NewLoggingChatClient(chat, logger)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = newFetcher(cli)
	}
	fetcher = nsslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	searcher := &duckduckgo.Searcher{
		Fetcher:     fetcher,
		Extractor:   newExtractor(cli.Extractor),
		Endpoint:    cli.SearchEndpoint,
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Provider: cli.Provider,
		Model:    model,
		Checker:  checker,
		Agent: &research.Agent{
			Searcher: nsslog.NewLoggingSearcher(searcher, logger),
			Summarizer: &research.Summarizer{
				Chat:   chat,
				Model:  model,
				Hint:   modelHint(cli.Provider, model),
				Logger: logger,
			},
			MaxResults: cli.MaxResults,
			Logger:     logger,
		},
	}

	return kongCtx.Run(deps)
}

// openProvider returns the chat client and model checker for the
// configured provider.
func (m *Main) openProvider(ctx context.Context, cli *CLI, stderr io.Writer) (newsynth.ChatClient, newsynth.ModelChecker, error) {
	if m.Chat != nil {
		return m.Chat, m.Checker, nil
	}

	switch cli.Provider {
	case "openai":
		client := openai.NewClient(cli.OpenAIBaseURL, cli.OpenAIAPIKey)
		return client, client, nil
	case "gemini":
		if cli.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		c := gemini.NewClient(client)
		return c, c, nil
	default:
		client, err := ollama.NewClient(cli.OllamaHost, nil)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set OLLAMA_HOST to an address such as localhost:11434")
			return nil, nil, err
		}
		return client, client, nil
	}
}

func newFetcher(cli *CLI) *nshttp.Fetcher {
	opts := []nshttp.Option{nshttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, nshttp.WithUserAgent(cli.UserAgent))
	}
	if cli.Rate > 0 {
		opts = append(opts, nshttp.WithDomainLimiter(nshttp.NewDomainLimiter(cli.Rate)))
	}
	return nshttp.NewFetcher(opts...)
}

func newExtractor(name string) newsynth.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func resolveModel(provider, model string) string {
	if model != "" {
		return model
	}
	if provider == "gemini" {
		return gemini.DefaultModel
	}
	return newsynth.DefaultModel
}

// modelHint tells the user how to make model available with provider.
func modelHint(provider, model string) string {
	switch provider {
	case "openai":
		return fmt.Sprintf("check --openai-base-url and that the server provides model %q", model)
	case "gemini":
		return fmt.Sprintf("check GEMINI_API_KEY and that model %q exists", model)
	default:
		return "run: ollama pull " + model
	}
}

// startupHints returns the steps printed when the startup check fails.
func startupHints(provider, model string) []string {
	switch provider {
	case "openai":
		return []string{
			"Start an OpenAI-compatible server or set --openai-base-url",
			fmt.Sprintf("Make sure model %q is available", model),
		}
	case "gemini":
		return []string{
			"Check that GEMINI_API_KEY is valid",
			fmt.Sprintf("Make sure model %q exists", model),
		}
	default:
		return []string{
			"1. Start Ollama: ollama serve",
			fmt.Sprintf("2. Install %s: ollama pull %s", displayName(model), model),
		}
	}
}

func displayName(model string) string {
	name, _, _ := strings.Cut(model, ":")
	if name == "" {
		return model
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
