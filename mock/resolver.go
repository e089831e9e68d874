package mock

import (
	"context"

	"github.com/fwojciec/woldoc"
)

var _ woldoc.ReferenceResolver = (*ReferenceResolver)(nil)

// ReferenceResolver is a mock implementation of woldoc.ReferenceResolver.
type ReferenceResolver struct {
	ResolveFn func(ctx context.Context, anchor woldoc.Anchor) *woldoc.Reference
}

func (r *ReferenceResolver) Resolve(ctx context.Context, anchor woldoc.Anchor) *woldoc.Reference {
	return r.ResolveFn(ctx, anchor)
}

var _ woldoc.SectionAggregator = (*SectionAggregator)(nil)

// SectionAggregator is a mock implementation of woldoc.SectionAggregator.
type SectionAggregator struct {
	AggregateFn func(ctx context.Context, anchors []woldoc.Anchor) *woldoc.Section
}

func (a *SectionAggregator) Aggregate(ctx context.Context, anchors []woldoc.Anchor) *woldoc.Section {
	return a.AggregateFn(ctx, anchors)
}
