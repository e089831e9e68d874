package resolve

import (
	"context"

	"github.com/fwojciec/woldoc"
)

// ArticleAnnotator resolves the scripture citations and footnotes of study
// questions. Every question is its own section.
type ArticleAnnotator struct {
	Resolver   woldoc.ReferenceResolver
	Aggregator woldoc.SectionAggregator
}

// Annotate fills Scriptures and Footnotes of every question in place.
func (a *ArticleAnnotator) Annotate(ctx context.Context, questions []woldoc.Question) {
	aggregator := a.Aggregator
	if aggregator == nil {
		aggregator = &Aggregator{Resolver: a.Resolver}
	}

	for i := range questions {
		q := &questions[i]
		if len(q.ScriptureAnchors) > 0 {
			q.Scriptures = aggregator.Aggregate(ctx, q.ScriptureAnchors)
		}
		if len(q.FootnoteAnchors) > 0 {
			q.Footnotes = ResolveFootnotes(ctx, a.Resolver, q.FootnoteAnchors)
		}
	}
}
