package resolve

import (
	"context"

	"github.com/fwojciec/woldoc"
)

// ReadingBuilder derives the weekly Bible reading and its chapter links
// from a meeting workbook document.
type ReadingBuilder struct {
	Parser   woldoc.DocumentParser
	Resolver woldoc.ReferenceResolver

	// Origin prefixes the generated chapter links.
	// Defaults to woldoc.DefaultOrigin.
	Origin string
}

// Build resolves the reading anchors of html. Only Bible-text references
// with a chapter range count; the range spans the smallest first chapter
// and the largest last chapter among them. A document whose anchors all
// fail to resolve yields an empty Reading, not an error. Returns ENOTFOUND
// when the document has no reading anchors at all.
func (b *ReadingBuilder) Build(ctx context.Context, html string) (*woldoc.Reading, error) {
	anchors, err := b.Parser.ReadingAnchors(html)
	if err != nil {
		return nil, err
	}

	origin := b.Origin
	if origin == "" {
		origin = woldoc.DefaultOrigin
	}

	var (
		reading  *woldoc.Reading
		template string
		lang     string
	)
	for _, anchor := range anchors {
		ref := b.Resolver.Resolve(ctx, anchor)
		if !ref.Resolved() || !ref.Envelope.IsBibleText {
			continue
		}
		first, last, ok := ref.Envelope.ChapterRange()
		if !ok {
			continue
		}
		url := ref.Envelope.Field("url")
		if url == "" {
			continue
		}

		if reading == nil {
			title := ref.Envelope.Field("caption")
			if title == "" {
				title = anchor.DisplayText
			}
			reading = &woldoc.Reading{
				Title:        title,
				Book:         ref.Envelope.Field("book"),
				FirstChapter: first,
				LastChapter:  last,
			}
			template = url
			lang = woldoc.LanguagePrefix(anchor.Href)
			continue
		}
		reading.FirstChapter = min(reading.FirstChapter, first)
		reading.LastChapter = max(reading.LastChapter, last)
	}

	if reading == nil {
		return &woldoc.Reading{Links: []string{}}, nil
	}
	reading.Links = woldoc.BuildChapterLinks(origin, template, reading.FirstChapter, reading.LastChapter, lang)
	return reading, nil
}
