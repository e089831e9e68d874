// Package htmltomarkdown renders article bodies as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/woldoc"
)

// Ensure Converter implements woldoc.Converter at compile time.
var _ woldoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Site-relative links are made absolute
// against the configured origin.
type Converter struct {
	conv   *converter.Converter
	origin string
}

// Option configures a Converter.
type Option func(*Converter)

// WithOrigin sets the origin used to absolutize relative links.
// Defaults to woldoc.DefaultOrigin.
func WithOrigin(origin string) Option {
	return func(c *Converter) {
		c.origin = origin
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
		origin: woldoc.DefaultOrigin,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", woldoc.Errorf(woldoc.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html, converter.WithDomain(c.origin))
}
