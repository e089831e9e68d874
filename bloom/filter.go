// Package bloom provides URL deduplication using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/woldoc"
)

// Ensure Filter implements woldoc.URLSet at compile time.
var _ woldoc.URLSet = (*Filter)(nil)

// Filter is a URL set fronted by a Bloom filter. A filter miss answers Test
// directly; a hit is confirmed against the exact set of added URLs, so a
// chapter is never skipped because of a false positive.
type Filter struct {
	mu   sync.Mutex
	f    *bloom.BloomFilter
	urls map[string]struct{}
}

// NewFilter creates a new Filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		urls: make(map[string]struct{}),
	}
}

// Add adds a URL to the set.
func (f *Filter) Add(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(url)
	f.urls[url] = struct{}{}
}

// Test reports whether the URL was added.
func (f *Filter) Test(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.f.TestString(url) {
		return false
	}
	_, ok := f.urls[url]
	return ok
}
