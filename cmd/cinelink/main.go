package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cinelink"
	"github.com/fwojciec/cinelink/goquery"
	cinehttp "github.com/fwojciec/cinelink/http"
	"github.com/fwojciec/cinelink/resolve"
	"github.com/fwojciec/cinelink/rod"
	cineslog "github.com/fwojciec/cinelink/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Resolver used by commands. When nil, Run wires one from the flags.
	Resolver cinelink.Resolver

	fetcher cinelink.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases the fetcher wired by Run, if any.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cinelink"),
		kong.Description("Resolve cinesubz movie and episode pages to their download links."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cinelink --help' to see available commands")
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

	deps.Concurrency = cli.Concurrency
	deps.Resolver = m.Resolver
	if deps.Resolver == nil && needsResolver(kongCtx) {
		logger := newLogger(stderr, cli.Verbose)
		resolver, err := m.wireResolver(cli, logger)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Resolver = resolver
	}

	return kongCtx.Run(deps)
}

// wireResolver builds the fetch stack and resolver described by the flags.
func (m *Main) wireResolver(cli *CLI, logger *slog.Logger) (cinelink.Resolver, error) {
	var base cinelink.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(cinehttp.DefaultUserAgent),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		base = f
	} else {
		opts := []cinehttp.Option{
			cinehttp.WithTimeout(cli.Timeout),
			cinehttp.WithMaxRedirects(cli.MaxRedirects),
		}
		if cli.TLSFingerprint {
			opts = append(opts, cinehttp.WithBrowserTLS())
		}
		base = cinehttp.NewFetcher(opts...)
	}

	var fetcher cinelink.Fetcher = cineslog.NewLoggingFetcher(base, logger)
	if cli.Rate > 0 {
		fetcher = resolve.NewLimitedFetcher(fetcher, resolve.NewDomainLimiter(cli.Rate))
	}
	fetcher = resolve.NewRetryFetcher(fetcher,
		resolve.WithAttempts(cli.Retries),
		resolve.WithBaseDelay(cli.RetryDelay),
		resolve.WithLogger(logger),
	)
	m.fetcher = fetcher

	resolver := &resolve.Resolver{
		Fetcher:   fetcher,
		Extractor: cineslog.NewLoggingEntryExtractor(goquery.NewEntryExtractor(), logger),
		Redirects: goquery.NewRedirectExtractor(),
		HostPages: goquery.NewHostPageExtractor(),
		Listings:  goquery.NewSeasonExtractor(),
	}
	return cineslog.NewLoggingResolver(resolver, logger), nil
}

// needsResolver reports whether the selected command makes requests.
func needsResolver(kongCtx *kong.Context) bool {
	selected := kongCtx.Selected()
	return selected == nil || selected.Name != "classify"
}

// newLogger returns a text logger on w. Verbose output includes every
// fetch and retry; otherwise only warnings are shown.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
