// Package goquery implements document parsing and text extraction for the
// content site using goquery CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/woldoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class markers used by the site's reference fragments.
const (
	// StudyBlockSelector matches the paragraphs of a Watchtower excerpt.
	StudyBlockSelector = "p.sb"

	// NoteMarkerSelector matches footnote and cross-reference markers
	// embedded in Bible text.
	NoteMarkerSelector = "a.fn, a.b"
)

// Ensure TextExtractor implements woldoc.TextExtractor at compile time.
var _ woldoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor flattens reference fragments to plain text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the plain text of fragment using the strategy for kind.
func (e *TextExtractor) Extract(kind woldoc.ContentKind, fragment string) string {
	switch kind {
	case woldoc.KindWatchtower:
		return extractStudyBlocks(fragment)
	case woldoc.KindBibleText:
		return extractBibleText(fragment)
	default:
		return extractAllText(fragment)
	}
}

// extractStudyBlocks joins the trimmed text of every study-block paragraph.
func extractStudyBlocks(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var parts []string
	doc.Find(StudyBlockSelector).Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(sel.Text()))
	})
	return strings.Join(parts, "\n")
}

// extractBibleText drops note markers and returns the remaining text with
// whitespace collapsed to single spaces.
func extractBibleText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	doc.Find(NoteMarkerSelector).Remove()

	var parts []string
	for _, n := range doc.Find("body").Nodes {
		walkText(n, func(text string) {
			if t := strings.TrimSpace(text); t != "" {
				parts = append(parts, t)
			}
		})
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// extractAllText concatenates every text node of the fragment verbatim.
func extractAllText(fragment string) string {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, n := range nodes {
		walkText(n, func(text string) {
			b.WriteString(text)
		})
	}
	return b.String()
}

// walkText calls fn for every text node below n in document order.
func walkText(n *html.Node, fn func(string)) {
	if n.Type == html.TextNode {
		fn(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, fn)
	}
}
