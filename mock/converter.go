package mock

import "github.com/fwojciec/woldoc"

var _ woldoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of woldoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
