package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitemapper"
	"github.com/fwojciec/sitemapper/etree"
	"github.com/fwojciec/sitemapper/fs"
	"github.com/fwojciec/sitemapper/goquery"
	"github.com/fwojciec/sitemapper/html"
	sitemapperhttp "github.com/fwojciec/sitemapper/http"
	sitemapperslog "github.com/fwojciec/sitemapper/slog"
	"github.com/fwojciec/sitemapper/sqlite"
)

func main() {
	// An interrupt cancels the crawl; the pages found so far are still written.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CrawlService sitemapper.CrawlService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitemapper"),
		kong.Description("Crawl a website and write its sitemap"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'sitemapper --help' to see usage")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Selected().Name

	var logger *slog.Logger
	if cmd == "build" && cli.Build.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// History is optional for builds, so only open the database when needed.
	if cmd != "build" || !cli.Build.NoRecord {
		if err := m.openDB(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SITEMAPPER_DB to use a different database path\n")
			return err
		}
		defer m.Close()

		m.CrawlService = sqlite.NewCrawlService(m.DB)
		deps.Crawls = m.CrawlService
		if logger != nil {
			deps.Crawls = sitemapperslog.NewLoggingCrawlService(m.CrawlService, logger)
		}
	}

	if cmd == "build" {
		var fetchOpts []sitemapperhttp.Option
		fetchOpts = append(fetchOpts, sitemapperhttp.WithTimeout(cli.Build.Timeout))
		if cli.Build.UserAgent != "" {
			fetchOpts = append(fetchOpts, sitemapperhttp.WithUserAgent(cli.Build.UserAgent))
		}
		fetcher := sitemapperhttp.NewFetcher(fetchOpts...)
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Extractor = NewLinkExtractor(cli.Build.Parser)
		deps.Writer = fs.NewSitemapWriter(etree.NewSitemapEncoder())

		if logger != nil {
			deps.Fetcher = sitemapperslog.NewLoggingFetcher(deps.Fetcher, logger)
			deps.Extractor = sitemapperslog.NewLoggingLinkExtractor(deps.Extractor, logger)
			deps.Writer = sitemapperslog.NewLoggingSitemapWriter(deps.Writer, logger)
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB() error {
	if dir := filepath.Dir(m.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory %q: %w", dir, err)
		}
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

// NewLinkExtractor returns the extractor for a --parser flag value.
func NewLinkExtractor(parser string) sitemapper.LinkExtractor {
	switch parser {
	case parserTokenizer:
		return html.NewLinkExtractor()
	case parserGoquery:
		return goquery.NewLinkExtractor()
	default:
		return goquery.NewLinkExtractor()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SITEMAPPER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitemapper.db"
	}
	return filepath.Join(home, ".sitemapper", "sitemapper.db")
}
