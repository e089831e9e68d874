package resolve_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/goquery"
	"github.com/fwojciec/woldoc/mock"
	"github.com/fwojciec/woldoc/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	psalm70 = "https://wol.jw.org/es/wol/b/r4/lp-s/nwtsty/19/70"
	psalm71 = "https://wol.jw.org/es/wol/b/r4/lp-s/nwtsty/19/71"
)

const psalm70HTML = `<html><head><title>Salmo 70</title></head><body>
<span class="v">Oh Dios, sálvame<a class="fn" href="/es/wol/fn/r4/lp-s/70/1">*</a></span>
<a class="b" href="/es/wol/bc/r4/lp-s/70/1">Sal 40:13</a>
<a class="b" href="/es/wol/bc/r4/lp-s/70/2">14</a>
<a class="b" href="/es/wol/bc/r4/lp-s/70/1">Sal 40:13</a>
</body></html>`

// setOf is an exact URLSet.
type setOf struct {
	mu   sync.Mutex
	urls map[string]bool
}

func (s *setOf) Add(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.urls == nil {
		s.urls = map[string]bool{}
	}
	s.urls[url] = true
}

func (s *setOf) Test(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.urls[url]
}

func TestChapterWalker_Walk(t *testing.T) {
	t.Parallel()

	t.Run("collects cross references and footnotes per chapter", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://wol.jw.org/wol/bc/r4/lp-s/70/1": bibleEnvelope("Dígnate librarme"),
			"https://wol.jw.org/wol/bc/r4/lp-s/70/2": bibleEnvelope("Que sean avergonzados"),
			"https://wol.jw.org/wol/fn/r4/lp-s/70/1": envelopeJSON(map[string]any{
				"content":        "<p>O «salvarme».</p>",
				"articleClasses": "footnote",
			}),
		}
		pages[psalm70] = psalm70HTML
		site := newSiteGateway(pages)
		resolver := &resolve.Resolver{Gateway: site.mock(), Extractor: goquery.NewTextExtractor()}
		walker := &resolve.ChapterWalker{
			Gateway:  site.mock(),
			Parser:   goquery.NewParser(),
			Resolver: resolver,
		}

		results, err := walker.Walk(context.Background(), []string{psalm70})

		require.NoError(t, err)
		require.Len(t, results, 1)
		chapter := results[0]
		assert.Equal(t, psalm70, chapter.URL)
		assert.Equal(t, "Salmo 70", chapter.Title)
		assert.Empty(t, chapter.Error)

		require.NotNil(t, chapter.CrossReferences)
		refs := chapter.CrossReferences.References
		require.Len(t, refs, 3)
		assert.Equal(t, "Sal 40:13", refs[0].Mnemonic)
		assert.Equal(t, "Sal 14", refs[1].Mnemonic)
		assert.Equal(t, "Que sean avergonzados", refs[1].RefContents)
		assert.Equal(t, woldoc.SharedReference("Sal 40:13"), refs[0].RefContents)
		assert.Equal(t, woldoc.SharedReference("Sal 40:13"), refs[2].RefContents)
		assert.Equal(t, map[string]string{"Sal 40:13": "Dígnate librarme"}, chapter.CrossReferences.SharedMnemonicReferences)

		assert.Equal(t, []woldoc.Footnote{
			{Marker: "*", SourceHref: "/es/wol/fn/r4/lp-s/70/1", Contents: "O «salvarme»."},
		}, chapter.Footnotes)
	})

	t.Run("rejects invalid links before fetching", func(t *testing.T) {
		t.Parallel()

		site := newSiteGateway(map[string]string{})
		walker := &resolve.ChapterWalker{
			Gateway:  site.mock(),
			Parser:   goquery.NewParser(),
			Resolver: &mock.ReferenceResolver{},
		}

		_, err := walker.Walk(context.Background(), []string{
			psalm70,
			"https://example.com/es/wol/b/r4/lp-s/nwtsty/19/70",
			"not a url",
		})

		require.Error(t, err)
		assert.Equal(t, woldoc.EINVALID, woldoc.ErrorCode(err))
		assert.Contains(t, woldoc.ErrorMessage(err), "https://example.com/es/wol/b/r4/lp-s/nwtsty/19/70")
		assert.Contains(t, woldoc.ErrorMessage(err), "not a url")
		assert.Empty(t, site.requests())
	})

	t.Run("reports fetch failures per chapter", func(t *testing.T) {
		t.Parallel()

		site := newSiteGateway(map[string]string{
			psalm70: `<html><head><title>Salmo 70</title></head><body></body></html>`,
		})
		site.status[psalm71] = http.StatusServiceUnavailable
		walker := &resolve.ChapterWalker{
			Gateway:  site.mock(),
			Parser:   goquery.NewParser(),
			Resolver: &mock.ReferenceResolver{},
		}

		results, err := walker.Walk(context.Background(), []string{psalm70, psalm71})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Empty(t, results[0].Error)
		assert.Equal(t, psalm71, results[1].URL)
		assert.Contains(t, results[1].Error, "status 503")
		assert.Nil(t, results[1].CrossReferences)
	})

	t.Run("keeps input order with parallel chapters", func(t *testing.T) {
		t.Parallel()

		chapters := []string{"1", "2", "3", "4", "5", "6"}
		pages := map[string]string{}
		var links []string
		for _, n := range chapters {
			link := "https://wol.jw.org/en/wol/b/r1/lp-e/nwtsty/19/" + n
			pages[link] = `<html><head><title>Psalm ` + n + `</title></head><body></body></html>`
			links = append(links, link)
		}
		site := newSiteGateway(pages)
		walker := &resolve.ChapterWalker{
			Gateway:     site.mock(),
			Parser:      goquery.NewParser(),
			Resolver:    &mock.ReferenceResolver{},
			Concurrency: 4,
		}

		results, err := walker.Walk(context.Background(), links)

		require.NoError(t, err)
		require.Len(t, results, 6)
		for i, r := range results {
			assert.Equal(t, links[i], r.URL)
			assert.Equal(t, "Psalm "+chapters[i], r.Title)
		}
	})

	t.Run("skips links already seen", func(t *testing.T) {
		t.Parallel()

		site := newSiteGateway(map[string]string{
			psalm70: `<html><head><title>Salmo 70</title></head></html>`,
		})
		seen := &setOf{}
		walker := &resolve.ChapterWalker{
			Gateway:  site.mock(),
			Parser:   goquery.NewParser(),
			Resolver: &mock.ReferenceResolver{},
			Seen:     seen,
		}

		results, err := walker.Walk(context.Background(), []string{psalm70, psalm70})

		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, []string{psalm70}, site.requests())
		assert.True(t, seen.Test(psalm70))
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		t.Parallel()

		walker := &resolve.ChapterWalker{
			Gateway:  &mock.Gateway{},
			Parser:   goquery.NewParser(),
			Resolver: &mock.ReferenceResolver{},
		}

		results, err := walker.Walk(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		walker := &resolve.ChapterWalker{
			Gateway: &mock.Gateway{
				FetchFn: func(context.Context, string) (string, int) {
					return "Connection error occurred", http.StatusServiceUnavailable
				},
			},
			Parser:   goquery.NewParser(),
			Resolver: &mock.ReferenceResolver{},
		}

		_, err := walker.Walk(ctx, []string{psalm70})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
