package resolve

import (
	"context"
	"net/http"
	"sync"

	"github.com/fwojciec/woldoc"
	"golang.org/x/sync/singleflight"
)

// Ensure Cache implements woldoc.Gateway at compile time.
var _ woldoc.Gateway = (*Cache)(nil)

// Cache is a gateway decorator that remembers successful fetches by URL for
// the lifetime of one pass. Concurrent fetches of the same URL share one
// upstream request. Create a new Cache for every pass: upstream content can
// change between runs.
type Cache struct {
	next   woldoc.Gateway
	group  singleflight.Group
	mu     sync.RWMutex
	bodies map[string]string
}

// NewCache wraps next with a pass-scoped cache.
func NewCache(next woldoc.Gateway) *Cache {
	return &Cache{
		next:   next,
		bodies: make(map[string]string),
	}
}

type fetchResult struct {
	body   string
	status int
}

// Fetch returns the cached body for url or delegates to the wrapped gateway.
// Only 200 responses are cached.
func (c *Cache) Fetch(ctx context.Context, url string) (string, int) {
	c.mu.RLock()
	body, ok := c.bodies[url]
	c.mu.RUnlock()
	if ok {
		return body, http.StatusOK
	}

	v, _, _ := c.group.Do(url, func() (any, error) {
		body, status := c.next.Fetch(ctx, url)
		if status == http.StatusOK {
			c.mu.Lock()
			c.bodies[url] = body
			c.mu.Unlock()
		}
		return fetchResult{body: body, status: status}, nil
	})
	res := v.(fetchResult)
	return res.body, res.status
}

// Len returns the number of cached URLs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bodies)
}
