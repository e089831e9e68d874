package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/woldoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Logger *slog.Logger

	Origin string
	Format string

	Gateway   woldoc.Gateway
	Resolver  woldoc.ReferenceResolver
	Parser    woldoc.DocumentParser
	Converter woldoc.Converter
	Seen      woldoc.URLSet

	// Archive is nil when no database is configured.
	Archive woldoc.ArchiveService

	// Store is nil when results go to stdout.
	Store woldoc.OutputStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Origin         string        `env:"WOLDOC_ORIGIN" default:"https://wol.jw.org" help:"Site origin for references and chapter links"`
	Timeout        time.Duration `env:"WOLDOC_TIMEOUT" default:"10s" help:"Timeout per request"`
	Rate           float64       `env:"WOLDOC_RATE" default:"2" help:"Requests per second per host (0 disables limiting)"`
	AcceptLanguage string        `name:"accept-language" env:"WOLDOC_ACCEPT_LANGUAGE" default:"es-ES,es;q=0.5" help:"Accept-Language header"`
	DB             string        `name:"db" env:"WOLDOC_DB" help:"SQLite path for the archive and fetch cache (empty disables both)"`
	CacheTTL       time.Duration `name:"cache-ttl" env:"WOLDOC_CACHE_TTL" default:"24h" help:"How long cached reference payloads stay fresh"`
	LogLevel       string        `name:"log-level" env:"WOLDOC_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	Verbose        bool          `short:"v" help:"Log every request and resolved reference"`
	Format         string        `short:"f" default:"json" enum:"json,yaml" help:"Output format"`
	Out            string        `short:"o" help:"Write results below this directory instead of stdout"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve one reference href"`
	Section  SectionCmd  `cmd:"" help:"Aggregate the references of a document into one section"`
	Article  ArticleCmd  `cmd:"" help:"Parse a study article and resolve its references"`
	Talk     TalkCmd     `cmd:"" help:"Parse a ten-minute talk"`
	Reading  ReadingCmd  `cmd:"" help:"Derive the weekly Bible reading and its chapter links"`
	Chapters ChaptersCmd `cmd:"" help:"Collect cross references and footnotes of Bible chapters"`
	Links    LinksCmd    `cmd:"" help:"Build chapter links from a template URL"`
	History  HistoryCmd  `cmd:"" help:"List or show archived extractions"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Href string `arg:"" help:"Site-relative href, e.g. /es/wol/bc/r4/lp-s/1/1"`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	Source   string `arg:"" help:"Document URL, file path, or - for stdin"`
	Selector string `default:"a.b" help:"CSS selector of the anchors to aggregate"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	Source   string `arg:"" help:"Document URL, file path, or - for stdin"`
	Markdown bool   `short:"m" help:"Print the article body as Markdown"`
}

// TalkCmd is the "talk" subcommand.
type TalkCmd struct {
	Source string `arg:"" help:"Document URL, file path, or - for stdin"`
}

// ReadingCmd is the "reading" subcommand.
type ReadingCmd struct {
	Source string `arg:"" help:"Workbook URL, file path, or - for stdin"`
}

// ChaptersCmd is the "chapters" subcommand.
type ChaptersCmd struct {
	Links       []string `arg:"" optional:"" help:"Bible chapter URLs"`
	Reading     string   `short:"r" help:"Derive chapter links from this workbook source"`
	Concurrency int      `short:"c" default:"3" help:"Chapters processed in parallel"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Template string `arg:"" help:"Chapter URL path whose last segment is replaced"`
	First    int    `arg:"" help:"First chapter"`
	Last     int    `arg:"" help:"Last chapter"`
	Lang     string `default:"es" help:"Language prefix"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID     string `arg:"" optional:"" help:"Record ID to show"`
	Kind   string `help:"Only list records of this kind"`
	Limit  int    `short:"n" default:"20" help:"Maximum records to list"`
	Delete bool   `help:"Delete the record instead of showing it"`
}
