package mock

import "github.com/fwojciec/woldoc"

var _ woldoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of woldoc.TextExtractor.
type TextExtractor struct {
	ExtractFn func(kind woldoc.ContentKind, fragment string) string
}

func (e *TextExtractor) Extract(kind woldoc.ContentKind, fragment string) string {
	return e.ExtractFn(kind, fragment)
}
