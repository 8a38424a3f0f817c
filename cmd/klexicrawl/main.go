package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/klexicrawl/klexicrawl"
	"github.com/klexicrawl/klexicrawl/crawl"
	"github.com/klexicrawl/klexicrawl/fs"
	"github.com/klexicrawl/klexicrawl/goquery"
	klexihttp "github.com/klexicrawl/klexicrawl/http"
	klexislog "github.com/klexicrawl/klexicrawl/slog"
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
	// Profile overrides the profile selected by --crawler.
	// Used by end-to-end tests to point the crawl at a local server.
	Profile *klexicrawl.SiteProfile

	// Fetcher overrides the default HTTP fetcher. Used for testing.
	Fetcher klexicrawl.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("klexicrawl"),
		kong.Description("Crawl Klexikon or MiniKlexikon into a JSON dataset of paragraphs and sentences."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	profile := m.Profile
	if profile == nil {
		profile, err = klexicrawl.ProfileByName(cli.Crawler)
		if err != nil {
			return err
		}
	}

	output := cli.Output
	if output == "" {
		output = cli.Crawler + "_dataset.json"
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = klexihttp.NewFetcher(klexihttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()
	logged := klexislog.NewLoggingFetcher(fetcher, logger)

	crawler := &crawl.Crawler{
		Collector:   crawl.NewCollector(logged, logger),
		Fetcher:     logged,
		Cleaner:     goquery.NewCleaner(),
		Segmenter:   goquery.NewSegmenter(),
		Writer:      fs.NewWriter(output),
		RateLimiter: crawl.NewDomainLimiter(cli.Rate),
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}

	bar := newProgress(stderr, cli.Quiet)
	result, err := crawler.Run(ctx, profile, cli.MaxPages, bar.handle)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s dataset saved to %s (%d articles, %d skipped)\n",
		capitalize(cli.Crawler), output, result.Saved, result.Skipped)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
