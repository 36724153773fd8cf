package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsynth"
	"github.com/fwojciec/newsynth/research"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Provider string
	Model    string
	Checker  newsynth.ModelChecker
	Agent    *research.Agent
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider       string        `default:"ollama" enum:"ollama,openai,gemini" env:"NEWSYNTH_PROVIDER" help:"Chat model provider (ollama, openai, gemini)"`
	Model          string        `env:"NEWSYNTH_MODEL" help:"Model name (default: mistral, or gemini-2.5-flash for gemini)"`
	MaxResults     int           `default:"5" help:"Maximum number of search results to process"`
	Timeout        time.Duration `default:"10s" help:"Per-request fetch timeout"`
	Concurrency    int           `default:"1" help:"Articles fetched in parallel"`
	Rate           float64       `default:"0" help:"Requests per second per domain (0 disables limiting)"`
	Extractor      string        `default:"selectors" enum:"selectors,readability,trafilatura" help:"Article text extractor (selectors, readability, trafilatura)"`
	SearchEndpoint string        `help:"Search results page URL" placeholder:"URL"`
	UserAgent      string        `help:"User-Agent header sent with every request"`
	OllamaHost     string        `env:"OLLAMA_HOST" help:"Ollama server address, e.g. localhost:11434 or http://host:port" placeholder:"HOST"`
	OpenAIBaseURL  string        `name:"openai-base-url" help:"OpenAI-compatible API base URL" placeholder:"URL"`
	OpenAIAPIKey   string        `name:"openai-api-key" env:"OPENAI_API_KEY" help:"API key for the OpenAI-compatible provider"`
	GeminiAPIKey   string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"API key for the Gemini provider"`
	LogLevel       string        `default:"warn" enum:"debug,info,warn,error" env:"NEWSYNTH_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	Interactive InteractiveCmd `cmd:"" default:"1" help:"Prompt for topics until quit (default)"`
	Search      SearchCmd      `cmd:"" help:"Research a single topic and exit"`
	Check       CheckCmd       `cmd:"" help:"Check that the model service is reachable and the model is installed"`
}

// InteractiveCmd is the "interactive" subcommand.
type InteractiveCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Topic []string `arg:"" help:"Topic to research"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}
