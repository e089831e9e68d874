package resolve

import (
	"context"
	"strings"

	"github.com/fwojciec/woldoc"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of chapters processed in parallel when
// ChapterWalker.Concurrency is not set.
const DefaultConcurrency = 3

// ChapterWalker collects the references of Bible chapter pages. Chapters are
// independent passes and run in parallel; the anchors of one chapter are
// always resolved in order.
type ChapterWalker struct {
	Gateway  woldoc.Gateway
	Parser   woldoc.DocumentParser
	Resolver woldoc.ReferenceResolver

	// Seen, if set, skips links already walked in this pass.
	Seen woldoc.URLSet

	Concurrency int
}

// Walk validates links and returns one record per distinct chapter in input
// order. Returns EINVALID listing every link that is not a chapter URL.
// A chapter that cannot be fetched or parsed is reported in its record's
// Error field.
func (w *ChapterWalker) Walk(ctx context.Context, links []string) ([]woldoc.ChapterReferences, error) {
	var invalid []string
	for _, link := range links {
		if !woldoc.IsBibleChapterURL(link) {
			invalid = append(invalid, link)
		}
	}
	if len(invalid) > 0 {
		return nil, woldoc.Errorf(woldoc.EINVALID, "some links are invalid: %s", strings.Join(invalid, ", "))
	}

	var unique []string
	for _, link := range links {
		if w.Seen != nil {
			if w.Seen.Test(link) {
				continue
			}
			w.Seen.Add(link)
		}
		unique = append(unique, link)
	}

	concurrency := w.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]woldoc.ChapterReferences, len(unique))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, link := range unique {
		g.Go(func() error {
			results[i] = w.walkChapter(ctx, link)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (w *ChapterWalker) walkChapter(ctx context.Context, link string) woldoc.ChapterReferences {
	result := woldoc.ChapterReferences{URL: link}

	html, err := woldoc.FetchDocument(ctx, w.Gateway, link)
	if err != nil {
		result.Error = woldoc.ErrorMessage(err)
		return result
	}

	page, err := w.Parser.ParseChapter(html)
	if err != nil {
		result.Error = woldoc.ErrorMessage(err)
		return result
	}

	aggregator := &Aggregator{Resolver: w.Resolver}
	result.Title = page.Title
	result.CrossReferences = aggregator.Aggregate(ctx, page.CrossReferences)
	result.Footnotes = ResolveFootnotes(ctx, w.Resolver, page.Footnotes)
	return result
}
