package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/figyaml/figyaml/classify"
	"github.com/figyaml/figyaml/fs"
	fighttp "github.com/figyaml/figyaml/http"
	figslog "github.com/figyaml/figyaml/slog"
	figyamlenc "github.com/figyaml/figyaml/yaml"
)

// figmaRequestsPerSecond keeps the client well inside Figma's API limits.
const figmaRequestsPerSecond = 2

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports its own errors to stderr; the exit code is all that is
	// left to do here.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("figyaml"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'figyaml --help' to see available commands")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	if arg := args[0]; arg == "help" || arg == "--help" || arg == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	deps.Loader = fs.NewLoader()

	// Kong reports the resolved command path ("fetch <url>"); the leading
	// word selects the wiring regardless of flag placement.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	if cmd == "fetch" {
		if cli.Fetch.Token == "" {
			fmt.Fprintln(stderr, "FIGMA_TOKEN environment variable not set. Get a token at https://www.figma.com/settings")
			return fmt.Errorf("FIGMA_TOKEN not set. Get a token at https://www.figma.com/settings")
		}

		opts := []fighttp.Option{fighttp.WithRateLimit(figmaRequestsPerSecond)}
		if cli.Fetch.APIURL != "" {
			opts = append(opts, fighttp.WithBaseURL(cli.Fetch.APIURL))
		}
		deps.Fetcher = figslog.NewLoggingFetcher(
			fighttp.NewClient(cli.Fetch.Token, opts...),
			newLogger(stderr),
		)
	}

	if cmd == "convert" {
		classifier := classify.NewClassifier(
			classify.WithIconMaxSize(cli.Convert.IconMaxSize),
			classify.WithIconTokens(cli.Convert.IconToken...),
		)
		deps.Converter = &classify.Converter{
			Classifier:  classifier,
			Concurrency: cli.Convert.Concurrency,
		}
		deps.Store = fs.NewStore(
			filepath.Dir(cli.Convert.OutDir),
			filepath.Base(cli.Convert.OutDir),
			figyamlenc.NewEncoder(),
			fs.WithSource(cli.Convert.Input),
		)
	}

	return kongCtx.Run(deps)
}

// newLogger builds the diagnostic logger. Verbose output is opt-in via
// FIGYAML_DEBUG; otherwise only warnings and errors reach stderr.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("FIGYAML_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
