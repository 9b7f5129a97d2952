package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/DS123-ally/websummary"
	"github.com/DS123-ally/websummary/chain"
	"github.com/DS123-ally/websummary/config"
	"github.com/DS123-ally/websummary/gemini"
	"github.com/DS123-ally/websummary/goquery"
	"github.com/DS123-ally/websummary/groq"
	"github.com/DS123-ally/websummary/htmltomarkdown"
	wshttp "github.com/DS123-ally/websummary/http"
	"github.com/DS123-ally/websummary/readability"
	wsslog "github.com/DS123-ally/websummary/slog"
	"github.com/DS123-ally/websummary/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config used to wire services. Populated by Run() unless set
	// beforehand, which tests use to skip the environment.
	Config *config.Config

	// Runner for end-to-end testing. When nil, Run() wires the real one.
	Runner *chain.Runner
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("websummary"),
		kong.Description("Summarize a web page with a hosted language model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'websummary --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set GROQ_API_KEY (or GEMINI_API_KEY with SUMMARY_BACKEND=gemini) in the environment or a .env file")
			return err
		}
		m.Config = &cfg
	}
	deps.Config = m.Config

	if m.Runner == nil {
		runner, err := buildRunner(ctx, *m.Config, logger)
		if err != nil {
			return err
		}
		m.Runner = runner
	}
	deps.Runner = m.Runner

	return kongCtx.Run(deps)
}

// buildRunner wires the fetch/extract/convert pipeline and the selected
// model backend into a request runner.
func buildRunner(ctx context.Context, cfg config.Config, logger *slog.Logger) (*chain.Runner, error) {
	var extractor websummary.Extractor
	switch cfg.Extractor {
	case config.ExtractorTrafilatura:
		extractor = trafilatura.NewExtractor()
	case config.ExtractorGoquery:
		extractor = goquery.NewExtractor()
	default:
		extractor = readability.NewExtractor()
	}

	fetcherOpts := []wshttp.Option{wshttp.WithTimeout(cfg.FetchTimeout)}
	if cfg.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, wshttp.WithUserAgent(cfg.UserAgent))
	}

	loader := wsslog.NewLoggingLoader(
		wshttp.NewLoader(wshttp.NewFetcher(fetcherOpts...), extractor, htmltomarkdown.NewConverter()),
		logger,
	)

	model, err := buildModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	summarizer := wsslog.NewLoggingSummarizer(chain.New(model), logger)

	return chain.NewRunner(loader, summarizer), nil
}

func buildModel(ctx context.Context, cfg config.Config) (websummary.Model, error) {
	switch cfg.Backend {
	case config.BackendGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewModel(client, cfg.GeminiModel), nil
	default:
		var opts []groq.Option
		if cfg.GroqBaseURL != "" {
			opts = append(opts, groq.WithBaseURL(cfg.GroqBaseURL))
		}
		return groq.NewModel(cfg.GroqAPIKey, cfg.GroqModel, opts...)
	}
}
