package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/sitemapper"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   sitemapper.Fetcher
	Extractor sitemapper.LinkExtractor
	Writer    sitemapper.SitemapWriter
	Crawls    sitemapper.CrawlService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build   BuildCmd   `cmd:"" default:"withargs" help:"Crawl a site and write its sitemap (default command)"`
	History HistoryCmd `cmd:"" help:"List recorded crawls"`
	Show    ShowCmd    `cmd:"" help:"Print the URLs of a recorded crawl"`
}

const (
	parserGoquery   = "goquery"
	parserTokenizer = "tokenizer"
)

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	URL         string        `arg:"" help:"Seed URL of the site to map"`
	MaxDepth    int           `short:"d" default:"3" env:"SITEMAPPER_MAX_DEPTH" help:"Number of link levels to crawl"`
	MaxLinks    int           `short:"l" default:"100" env:"SITEMAPPER_MAX_LINKS" help:"Links followed per page (0 for no limit)"`
	Concurrency int           `short:"c" default:"10" env:"SITEMAPPER_CONCURRENCY" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" env:"SITEMAPPER_TIMEOUT" help:"Fetch timeout per page"`
	Retries     int           `default:"0" env:"SITEMAPPER_RETRIES" help:"Retries per failed fetch"`
	Output      string        `short:"o" env:"SITEMAPPER_OUTPUT" help:"Output file (default: sitemap_<host>.xml)"`
	Parser      string        `default:"goquery" enum:"goquery,tokenizer" env:"SITEMAPPER_PARSER" help:"HTML parser: goquery or tokenizer"`
	UserAgent   string        `env:"SITEMAPPER_USER_AGENT" help:"User-Agent header sent with requests"`
	Verbose     bool          `short:"v" env:"SITEMAPPER_VERBOSE" help:"Log every fetch to stderr"`
	NoRecord    bool          `help:"Do not record the crawl in history"`
}

// Config returns the crawl configuration given by the flags.
func (c *BuildCmd) Config() sitemapper.Config {
	return sitemapper.Config{
		MaxDepth:        c.MaxDepth,
		MaxLinksPerPage: c.MaxLinks,
		Concurrency:     c.Concurrency,
		Timeout:         c.Timeout,
		Retries:         c.Retries,
	}
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Host  string `help:"Only show crawls of this host"`
	Limit int    `short:"n" default:"20" help:"Maximum number of crawls to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Crawl ID"`
	JSON bool   `name:"json" help:"Print the full crawl record as JSON"`
}
