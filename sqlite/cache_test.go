package sqlite_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/woldoc/mock"
	"github.com/fwojciec/woldoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceURL = "https://wol.jw.org/wol/bc/r4/lp-s/1/1"

// countingGateway returns a gateway serving body with status and a counter
// of upstream fetches.
func countingGateway(body string, status int) (*mock.Gateway, *atomic.Int32) {
	var calls atomic.Int32
	return &mock.Gateway{
		FetchFn: func(context.Context, string) (string, int) {
			calls.Add(1)
			return body, status
		},
	}, &calls
}

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestCachingGateway_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("serves fresh entries from the database", func(t *testing.T) {
		t.Parallel()

		next, calls := countingGateway(`{"items":[]}`, http.StatusOK)
		gw := sqlite.NewCachingGateway(setupTestDB(t), next)

		for range 3 {
			body, status := gw.Fetch(context.Background(), referenceURL)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, `{"items":[]}`, body)
		}

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("survives reopening the database", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/cache.db"
		next, calls := countingGateway("body", http.StatusOK)

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		sqlite.NewCachingGateway(db, next).Fetch(context.Background(), referenceURL)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()
		body, status := sqlite.NewCachingGateway(db, next).Fetch(context.Background(), referenceURL)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "body", body)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("refetches expired entries", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
		next, calls := countingGateway("body", http.StatusOK)
		gw := sqlite.NewCachingGateway(setupTestDB(t), next,
			sqlite.WithMaxAge(time.Hour),
			sqlite.WithClock(clock.Now),
		)

		gw.Fetch(context.Background(), referenceURL)
		clock.now = clock.now.Add(30 * time.Minute)
		gw.Fetch(context.Background(), referenceURL)
		require.Equal(t, int32(1), calls.Load())

		clock.now = clock.now.Add(time.Hour)
		gw.Fetch(context.Background(), referenceURL)

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not store failures", func(t *testing.T) {
		t.Parallel()

		next, calls := countingGateway("Timeout error occurred", http.StatusGatewayTimeout)
		gw := sqlite.NewCachingGateway(setupTestDB(t), next)

		gw.Fetch(context.Background(), referenceURL)
		body, status := gw.Fetch(context.Background(), referenceURL)

		assert.Equal(t, http.StatusGatewayTimeout, status)
		assert.Equal(t, "Timeout error occurred", body)
		assert.Equal(t, int32(2), calls.Load())

		n, err := gw.Len(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("falls back to upstream when the database is closed", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())
		next, calls := countingGateway("body", http.StatusOK)

		body, status := sqlite.NewCachingGateway(db, next).Fetch(context.Background(), referenceURL)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "body", body)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCachingGateway_Purge(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	next, _ := countingGateway("body", http.StatusOK)
	gw := sqlite.NewCachingGateway(setupTestDB(t), next,
		sqlite.WithMaxAge(time.Hour),
		sqlite.WithClock(clock.Now),
	)
	ctx := context.Background()

	gw.Fetch(ctx, "https://wol.jw.org/old")
	clock.now = clock.now.Add(2 * time.Hour)
	gw.Fetch(ctx, "https://wol.jw.org/new")

	removed, err := gw.Purge(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	n, err := gw.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
