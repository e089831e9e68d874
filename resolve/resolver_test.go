package resolve_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/goquery"
	"github.com/fwojciec/woldoc/mock"
	"github.com/fwojciec/woldoc/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("rewrites locale prefix to fetch URL", func(t *testing.T) {
		t.Parallel()

		var requested string
		r := &resolve.Resolver{
			Gateway: &mock.Gateway{
				FetchFn: func(_ context.Context, url string) (string, int) {
					requested = url
					return "", http.StatusNotFound
				},
			},
			Extractor: goquery.NewTextExtractor(),
		}

		ref := r.Resolve(context.Background(), woldoc.Anchor{DisplayText: "Gén 1:1", Href: "/es/wol/bc/r4/lp-s/2024/1/0"})

		assert.Equal(t, "https://wol.jw.org/wol/bc/r4/lp-s/2024/1/0", requested)
		assert.Equal(t, "/es/wol/bc/r4/lp-s/2024/1/0", ref.SourceHref)
		assert.Equal(t, requested, ref.FetchURL)
	})

	t.Run("uses configured origin", func(t *testing.T) {
		t.Parallel()

		var requested string
		r := &resolve.Resolver{
			Gateway: &mock.Gateway{
				FetchFn: func(_ context.Context, url string) (string, int) {
					requested = url
					return "", http.StatusNotFound
				},
			},
			Extractor: goquery.NewTextExtractor(),
			Origin:    "http://127.0.0.1:8080",
		}

		r.Resolve(context.Background(), woldoc.Anchor{Href: "/en/wol/fn/1"})

		assert.Equal(t, "http://127.0.0.1:8080/wol/fn/1", requested)
	})

	t.Run("fetch failure yields unresolved reference", func(t *testing.T) {
		t.Parallel()

		r := &resolve.Resolver{
			Gateway: &mock.Gateway{
				FetchFn: func(context.Context, string) (string, int) {
					return "Connection error occurred", http.StatusServiceUnavailable
				},
			},
			Extractor: &mock.TextExtractor{
				ExtractFn: func(woldoc.ContentKind, string) string {
					t.Fatal("extractor must not be called")
					return ""
				},
			},
		}

		var ref *woldoc.Reference
		require.NotPanics(t, func() {
			ref = r.Resolve(context.Background(), woldoc.Anchor{DisplayText: "Matt 5:20", Href: "/en/wol/bc/1"})
		})

		assert.Nil(t, ref.Envelope)
		assert.False(t, ref.Resolved())
		assert.Equal(t, "", ref.ParsedContent)
		assert.Equal(t, woldoc.UnresolvedReference, ref.Text())
	})

	t.Run("invalid payload yields unresolved reference", func(t *testing.T) {
		t.Parallel()

		r := &resolve.Resolver{
			Gateway: &mock.Gateway{
				FetchFn: func(context.Context, string) (string, int) {
					return "<html>not json</html>", http.StatusOK
				},
			},
			Extractor: goquery.NewTextExtractor(),
		}

		ref := r.Resolve(context.Background(), woldoc.Anchor{Href: "/en/wol/bc/1"})

		assert.Nil(t, ref.Envelope)
		assert.Empty(t, ref.ParsedContent)
	})

	t.Run("classifies and extracts bible text", func(t *testing.T) {
		t.Parallel()

		body := envelopeJSON(map[string]any{
			"content":        `<p>In the beginning <a class="fn">*</a>God created.</p>`,
			"articleClasses": "bibleCitation pub-nwtsty",
		})
		r := &resolve.Resolver{
			Gateway: &mock.Gateway{
				FetchFn: func(context.Context, string) (string, int) {
					return body, http.StatusOK
				},
			},
			Extractor: goquery.NewTextExtractor(),
		}

		ref := r.Resolve(context.Background(), woldoc.Anchor{Href: "/en/wol/bc/1"})

		require.NotNil(t, ref.Envelope)
		assert.Equal(t, woldoc.KindBibleText, ref.Kind)
		assert.Equal(t, "In the beginning God created.", ref.ParsedContent)
	})

	t.Run("passes envelope kind and content to extractor", func(t *testing.T) {
		t.Parallel()

		body := envelopeJSON(map[string]any{
			"content":        "<p class=\"sb\">x</p>",
			"articleClasses": "pub-w pub-nwtsty",
		})
		var gotKind woldoc.ContentKind
		var gotFragment string
		r := &resolve.Resolver{
			Gateway: &mock.Gateway{
				FetchFn: func(context.Context, string) (string, int) {
					return body, http.StatusOK
				},
			},
			Extractor: &mock.TextExtractor{
				ExtractFn: func(kind woldoc.ContentKind, fragment string) string {
					gotKind, gotFragment = kind, fragment
					return "extracted"
				},
			},
		}

		ref := r.Resolve(context.Background(), woldoc.Anchor{Href: "/en/wol/bc/1"})

		assert.Equal(t, woldoc.KindWatchtower, gotKind)
		assert.Equal(t, "<p class=\"sb\">x</p>", gotFragment)
		assert.Equal(t, "extracted", ref.ParsedContent)
	})
}

func TestResolveFootnotes(t *testing.T) {
	t.Parallel()

	site := newSiteGateway(map[string]string{
		"https://wol.jw.org/wol/fn/1": envelopeJSON(map[string]any{
			"content":        "<p>O “reino”.</p>",
			"articleClasses": "footnote",
		}),
	})
	r := &resolve.Resolver{Gateway: site.mock(), Extractor: goquery.NewTextExtractor()}

	footnotes := resolve.ResolveFootnotes(context.Background(), r, []woldoc.Anchor{
		{DisplayText: "*", Href: "/es/wol/fn/1"},
		{DisplayText: "*", Href: "/es/wol/fn/2"},
	})

	assert.Equal(t, []woldoc.Footnote{
		{Marker: "*", SourceHref: "/es/wol/fn/1", Contents: "O “reino”."},
		{Marker: "*", SourceHref: "/es/wol/fn/2", Contents: woldoc.UnresolvedReference},
	}, footnotes)
}
