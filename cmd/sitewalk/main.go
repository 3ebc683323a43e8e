package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sitewalk/sitewalk"
	"github.com/sitewalk/sitewalk/crawl"
	"github.com/sitewalk/sitewalk/goquery"
	walkhttp "github.com/sitewalk/sitewalk/http"
	walkslog "github.com/sitewalk/sitewalk/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Depth    int           `short:"d" default:"3" help:"Maximum crawl depth"`
	Workers  int           `short:"w" default:"10" help:"Number of concurrent workers"`
	Output   string        `short:"o" help:"Output file to save results"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	MaxPages int           `help:"Limit total pages crawled (0 = unlimited)"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`
	URL      string        `arg:"" required:"" help:"Target URL to crawl"`
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitewalk"),
		kong.Description("Enumerate reachable paths on a host by crawling same-domain links"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	seedURL := DefaultScheme(cli.URL)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := walkhttp.NewFetcher(walkhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher:   walkslog.NewLoggingFetcher(fetcher, logger),
		Extractor: goquery.NewExtractor(),
		Workers:   cli.Workers,
		MaxDepth:  cli.Depth,
		Timeout:   cli.Timeout,
		MaxPages:  cli.MaxPages,
		Logger:    logger,
		Progress: func(event crawl.ProgressEvent) {
			// Streaming one line per fetched URL, as it happens.
			if event.Type == crawl.ProgressFailed {
				fmt.Fprintf(stdout, "[ERR] %s\n", event.URL)
				return
			}
			fmt.Fprintf(stdout, "[%d] %s\n", event.Status, event.URL)
		},
	}

	baseHost, err := sitewalk.BaseHost(seedURL)
	if err != nil {
		return err
	}
	printBanner(stdout, seedURL, baseHost, cli.Depth)

	result, err := crawler.Crawl(ctx, seedURL)
	if err != nil {
		return err
	}

	if result.Interrupted {
		fmt.Fprintln(stdout, "\nCrawl interrupted by user.")
	}

	printReport(stdout, result.Records)

	if cli.Output != "" {
		if err := writeRecords(cli.Output, result.Records); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\nResults saved to: %s\n", cli.Output)
	}

	return nil
}

// DefaultScheme prefixes a URL with https:// when no scheme is present.
func DefaultScheme(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
