package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/cinelink"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Resolver    cinelink.Resolver
	Concurrency int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout        time.Duration `default:"30s" env:"CINELINK_TIMEOUT" help:"Timeout for a single request"`
	MaxRedirects   int           `default:"5" env:"CINELINK_MAX_REDIRECTS" help:"Redirects followed per request"`
	Retries        int           `default:"3" env:"CINELINK_RETRIES" help:"Attempts per request, the first one included"`
	RetryDelay     time.Duration `default:"1s" env:"CINELINK_RETRY_DELAY" help:"Backoff unit; attempt n waits n times this long"`
	Browser        bool          `env:"CINELINK_BROWSER" help:"Render pages in headless Chrome"`
	TLSFingerprint bool          `name:"tls-fingerprint" env:"CINELINK_TLS_FINGERPRINT" help:"Use a Chrome TLS handshake for HTTPS"`
	Rate           float64       `default:"0" env:"CINELINK_RATE" help:"Requests per second per domain (0 disables)"`
	Concurrency    int           `short:"c" default:"4" env:"CINELINK_CONCURRENCY" help:"URLs resolved at once"`
	Verbose        bool          `short:"v" help:"Log every fetch and retry to stderr"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve content or redirector pages to download links"`
	Entries  EntriesCmd  `cmd:"" help:"List the download entries of a movie or episode page"`
	Episodes EpisodesCmd `cmd:"" help:"List the seasons and episode pages of a TV show"`
	Classify ClassifyCmd `cmd:"" help:"Show what kind of page a URL points at"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	URLs []string `arg:"" name:"url" help:"Movie, episode or redirector URLs"`
	JSON bool     `help:"Print one JSON object per URL"`
}

// EntriesCmd is the "entries" subcommand.
type EntriesCmd struct {
	URL  string `arg:"" help:"Movie or episode URL"`
	JSON bool   `help:"Print entries as a JSON array"`
}

// EpisodesCmd is the "episodes" subcommand.
type EpisodesCmd struct {
	URL  string `arg:"" help:"TV show URL"`
	JSON bool   `help:"Print seasons as a JSON array"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URLs []string `arg:"" name:"url" help:"Site URLs"`
}
