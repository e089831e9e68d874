package resolve_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/fwojciec/woldoc/mock"
)

// envelopeJSON builds a reference payload with the given item fields.
func envelopeJSON(item map[string]any) string {
	b, err := json.Marshal(map[string]any{"items": []any{item}})
	if err != nil {
		panic(err)
	}
	return string(b)
}

// bibleEnvelope is a Bible-text payload whose content is a plain paragraph.
func bibleEnvelope(text string) string {
	return envelopeJSON(map[string]any{
		"content":        "<p>" + text + "</p>",
		"articleClasses": "bibleCitation pub-nwtsty",
	})
}

// siteGateway serves bodies by URL and 404 for anything else.
// It records requested URLs in order.
type siteGateway struct {
	mu      sync.Mutex
	pages   map[string]string
	status  map[string]int
	fetched []string
}

func newSiteGateway(pages map[string]string) *siteGateway {
	return &siteGateway{pages: pages, status: map[string]int{}}
}

func (g *siteGateway) mock() *mock.Gateway {
	return &mock.Gateway{
		FetchFn: func(_ context.Context, url string) (string, int) {
			g.mu.Lock()
			defer g.mu.Unlock()
			g.fetched = append(g.fetched, url)
			if status, ok := g.status[url]; ok {
				return "failure", status
			}
			body, ok := g.pages[url]
			if !ok {
				return "HTTP error: 404 - Not Found", http.StatusNotFound
			}
			return body, http.StatusOK
		},
	}
}

func (g *siteGateway) requests() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.fetched...)
}
