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
	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/bloom"
	"github.com/fwojciec/woldoc/fs"
	"github.com/fwojciec/woldoc/goquery"
	"github.com/fwojciec/woldoc/htmltomarkdown"
	wolhttp "github.com/fwojciec/woldoc/http"
	"github.com/fwojciec/woldoc/resolve"
	wolslog "github.com/fwojciec/woldoc/slog"
	"github.com/fwojciec/woldoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		msg := err.Error()
		if woldoc.ErrorCode(err) != woldoc.EINTERNAL {
			msg = woldoc.ErrorMessage(err)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

// seenCapacity sizes the chapter URL filter. A year of weekly readings is
// well below it.
const seenCapacity = 10000

// Main represents the program.
type Main struct {
	// Stdin is read for the "-" source. Defaults to os.Stdin.
	Stdin io.Reader

	// Gateway, if set, replaces the HTTP gateway. Used by end-to-end tests.
	Gateway woldoc.Gateway

	// SQLite database used by the archive and the fetch cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	cli := &CLI{}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	parser, err := kong.New(cli,
		kong.Name("woldoc"),
		kong.Description("Resolve and aggregate scripture and publication references from study documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'woldoc --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.Verbose)
	deps.Origin = strings.TrimSuffix(cli.Origin, "/")
	deps.Format = cli.Format

	var gateway woldoc.Gateway = m.Gateway
	if gateway == nil {
		gateway = wolhttp.NewGateway(
			wolhttp.WithTimeout(cli.Timeout),
			wolhttp.WithLimiter(wolhttp.NewDomainLimiter(cli.Rate)),
			wolhttp.WithAcceptLanguage(cli.AcceptLanguage),
			wolhttp.WithReferer(deps.Origin+"/"),
		)
	}
	gateway = wolslog.NewLoggingGateway(gateway, deps.Logger)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WOLDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		cache := sqlite.NewCachingGateway(m.DB, gateway, sqlite.WithMaxAge(cli.CacheTTL))
		purgeCache(ctx, cache, deps.Logger)
		gateway = cache
		deps.Archive = wolslog.NewLoggingArchiveService(sqlite.NewArchiveService(m.DB), deps.Logger)
	}

	// One in-memory cache per invocation.
	passCache := resolve.NewCache(gateway)
	deps.Gateway = passCache
	deps.Parser = goquery.NewParser()
	deps.Resolver = wolslog.NewLoggingResolver(&resolve.Resolver{
		Gateway:   deps.Gateway,
		Extractor: goquery.NewTextExtractor(),
		Origin:    deps.Origin,
	}, deps.Logger)
	deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithOrigin(deps.Origin))
	deps.Seen = bloom.NewFilter(seenCapacity, 0.001)

	if cli.Out != "" {
		out := filepath.Clean(cli.Out)
		store := fs.NewStore(filepath.Dir(out), filepath.Base(out))
		// Leftovers of an interrupted run must not be committed with this one.
		if err := store.Abort(); err != nil {
			return fmt.Errorf("failed to clear staged output: %w", err)
		}
		deps.Store = store
		defer func() {
			if err != nil {
				_ = store.Abort()
				return
			}
			err = store.Commit()
		}()
	}

	if err := kongCtx.Run(deps); err != nil {
		return err
	}
	deps.Logger.Debug("pass complete", "cached", passCache.Len())
	return nil
}

// purgeCache drops expired fetch cache entries so the table only holds rows
// that can still be served.
func purgeCache(ctx context.Context, cache *sqlite.CachingGateway, logger *slog.Logger) {
	purged, err := cache.Purge(ctx)
	if err != nil {
		logger.Warn("purge fetch cache", "error", err)
		return
	}
	entries, err := cache.Len(ctx)
	if err != nil {
		logger.Warn("count fetch cache", "error", err)
		return
	}
	logger.Debug("fetch cache", "purged", purged, "entries", entries)
}

// newLogger builds the stderr text logger. verbose forces debug level.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
