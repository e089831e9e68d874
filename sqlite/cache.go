package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/woldoc"
)

// DefaultCacheMaxAge is how long a cached payload is served before it is
// fetched again.
const DefaultCacheMaxAge = 24 * time.Hour

// Ensure CachingGateway implements woldoc.Gateway at compile time.
var _ woldoc.Gateway = (*CachingGateway)(nil)

// CachingGateway is a gateway decorator that persists successful fetches
// across runs. Entries older than the max age are refetched. Cache read or
// write failures never fail a fetch; the wrapped gateway is used instead.
type CachingGateway struct {
	db     *DB
	next   woldoc.Gateway
	maxAge time.Duration
	now    func() time.Time
}

// CacheOption configures a CachingGateway.
type CacheOption func(*CachingGateway)

// WithMaxAge sets how long cached bodies stay fresh.
// Defaults to DefaultCacheMaxAge.
func WithMaxAge(d time.Duration) CacheOption {
	return func(g *CachingGateway) {
		g.maxAge = d
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CacheOption {
	return func(g *CachingGateway) {
		g.now = now
	}
}

// NewCachingGateway wraps next with a persistent cache stored in db.
func NewCachingGateway(db *DB, next woldoc.Gateway, opts ...CacheOption) *CachingGateway {
	g := &CachingGateway{
		db:     db,
		next:   next,
		maxAge: DefaultCacheMaxAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fetch serves a fresh cached body for url or delegates to the wrapped
// gateway. Only 200 responses are stored.
func (g *CachingGateway) Fetch(ctx context.Context, url string) (string, int) {
	if body, ok := g.lookup(ctx, url); ok {
		return body, http.StatusOK
	}

	body, status := g.next.Fetch(ctx, url)
	if status == http.StatusOK {
		_ = g.store(ctx, url, body)
	}
	return body, status
}

func (g *CachingGateway) lookup(ctx context.Context, url string) (string, bool) {
	var body, fetchedAt string
	err := g.db.QueryRowContext(ctx, `
		SELECT body, fetched_at FROM fetch_cache WHERE url = ?
	`, url).Scan(&body, &fetchedAt)
	if err != nil {
		return "", false
	}

	t, err := parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return "", false
	}
	if g.now().Sub(t) > g.maxAge {
		return "", false
	}
	return body, true
}

func (g *CachingGateway) store(ctx context.Context, url, body string) error {
	_, err := g.db.ExecContext(ctx, `
		INSERT INTO fetch_cache (url, body, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			body = excluded.body,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, url, body, hashContent(body), g.now().UTC().Format(timeLayout))
	return err
}

// Purge removes entries older than the max age and returns how many were
// removed.
func (g *CachingGateway) Purge(ctx context.Context) (int64, error) {
	cutoff := g.now().Add(-g.maxAge).UTC().Format(timeLayout)
	result, err := g.db.ExecContext(ctx, "DELETE FROM fetch_cache WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Len returns the number of cached entries.
func (g *CachingGateway) Len(ctx context.Context) (int, error) {
	var n int
	err := g.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fetch_cache").Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}
