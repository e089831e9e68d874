// Package resolve implements reference resolution: fetching an anchor's
// reference payload, classifying and flattening it, and aggregating the
// references of a document section.
package resolve

import (
	"context"
	"net/http"

	"github.com/fwojciec/woldoc"
)

// Ensure Resolver implements woldoc.ReferenceResolver at compile time.
var _ woldoc.ReferenceResolver = (*Resolver)(nil)

// Resolver turns anchors into references by chaining the gateway, the
// envelope validator, the classifier and the text extractor.
type Resolver struct {
	Gateway   woldoc.Gateway
	Extractor woldoc.TextExtractor

	// Origin replaces the locale prefix of anchor hrefs.
	// Defaults to woldoc.DefaultOrigin.
	Origin string
}

// Resolve fetches and parses the target of anchor. Failures are data: a
// non-200 fetch or an invalid payload yields a reference with a nil
// Envelope and empty ParsedContent.
func (r *Resolver) Resolve(ctx context.Context, anchor woldoc.Anchor) *woldoc.Reference {
	origin := r.Origin
	if origin == "" {
		origin = woldoc.DefaultOrigin
	}

	ref := &woldoc.Reference{
		SourceHref: anchor.Href,
		FetchURL:   woldoc.FetchURL(origin, anchor.Href),
	}

	body, status := r.Gateway.Fetch(ctx, ref.FetchURL)
	if status != http.StatusOK {
		return ref
	}

	env, err := woldoc.ParseEnvelope(body)
	if err != nil {
		return ref
	}

	ref.Envelope = env
	ref.Kind = env.Kind()
	ref.ParsedContent = r.Extractor.Extract(ref.Kind, env.Content)
	return ref
}

// ResolveFootnotes resolves footnote anchors in order, substituting
// woldoc.UnresolvedReference for targets that cannot be resolved.
func ResolveFootnotes(ctx context.Context, resolver woldoc.ReferenceResolver, anchors []woldoc.Anchor) []woldoc.Footnote {
	footnotes := make([]woldoc.Footnote, 0, len(anchors))
	for _, anchor := range anchors {
		ref := resolver.Resolve(ctx, anchor)
		footnotes = append(footnotes, woldoc.Footnote{
			Marker:     anchor.DisplayText,
			SourceHref: anchor.Href,
			Contents:   ref.Text(),
		})
	}
	return footnotes
}
