package resolve

import (
	"context"

	"github.com/fwojciec/woldoc"
)

// Ensure Aggregator implements woldoc.SectionAggregator at compile time.
var _ woldoc.SectionAggregator = (*Aggregator)(nil)

// Aggregator resolves the anchors of one section in document order and
// deduplicates repeated mnemonics into a shared pool.
type Aggregator struct {
	Resolver woldoc.ReferenceResolver
}

// mnemonicEntry tracks one mnemonic during a pass. firstIndex points at the
// output entry of the first occurrence until a duplicate rewrites it, after
// which it is -1.
type mnemonicEntry struct {
	count      int
	contents   string
	firstIndex int
}

// Aggregate resolves anchors strictly in order. The first occurrence of a
// mnemonic keeps its text until a duplicate appears; from then on every
// occurrence, including the first, points into SharedMnemonicReferences.
func (a *Aggregator) Aggregate(ctx context.Context, anchors []woldoc.Anchor) *woldoc.Section {
	entries := make(map[string]*mnemonicEntry)
	refs := make([]woldoc.SectionEntry, 0, len(anchors))

	previous := ""
	for _, anchor := range anchors {
		mnemonic := woldoc.NormalizeMnemonic(anchor.DisplayText, previous)
		previous = mnemonic

		ref := a.Resolver.Resolve(ctx, anchor)
		out := woldoc.SectionEntry{
			Mnemonic:    mnemonic,
			RefContents: ref.Text(),
			SourceHref:  ref.SourceHref,
			FetchURL:    ref.FetchURL,
			Kind:        ref.Kind,
		}

		e, seen := entries[mnemonic]
		if !seen {
			entries[mnemonic] = &mnemonicEntry{
				count:      1,
				contents:   out.RefContents,
				firstIndex: len(refs),
			}
			refs = append(refs, out)
			continue
		}

		e.count++
		shared := woldoc.SharedReference(mnemonic)
		out.RefContents = shared
		refs = append(refs, out)
		if e.firstIndex >= 0 {
			refs[e.firstIndex].RefContents = shared
			e.firstIndex = -1
		}
	}

	pool := make(map[string]string)
	for mnemonic, e := range entries {
		if e.count > 1 {
			pool[mnemonic] = e.contents
		}
	}

	return &woldoc.Section{
		References:               refs,
		SharedMnemonicReferences: pool,
	}
}
