package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/woldoc"
)

// Selectors for site document landmarks.
const (
	ScriptureSelector = "a.b"
	FootnoteSelector  = "a.fn"
	ArticleSelector   = "#article"
	ReadingSelector   = "#p2 a.b"
)

var digitsRe = regexp.MustCompile(`\d+`)

// Ensure Parser implements woldoc.DocumentParser at compile time.
var _ woldoc.DocumentParser = (*Parser)(nil)

// Parser extracts structure and anchors from site documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseStudyArticle parses a weekly study article.
func (p *Parser) ParseStudyArticle(html string) (*woldoc.StudyArticle, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	return &woldoc.StudyArticle{
		ArticleNumber:    firstText(doc.Find("p.contextTtl strong")),
		ArticleTitle:     articleTitle(doc),
		ArticleThemeScrp: firstText(doc.Find("p.themeScrp")),
		ArticleTopic:     firstText(doc.Find("#tt9 p:nth-of-type(2)")),
		Contents:         extractQuestions(doc),
		TeachBlock:       extractTeachBlock(doc),
	}, nil
}

// ParseTalk parses a ten-minute talk from the meeting workbook.
func (p *Parser) ParseTalk(html string) (*woldoc.Talk, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	return &woldoc.Talk{
		ArticleNumber: firstText(doc.Find("p.contextTtl strong")),
		ArticleTitle:  articleTitle(doc),
		ArticleTopic:  firstText(doc.Find("p.themeScrp em")),
		Contents:      extractQuestions(doc),
		TeachBlock:    extractTeachBlock(doc),
	}, nil
}

// ParseChapter collects the anchors of a Bible chapter page.
func (p *Parser) ParseChapter(html string) (*woldoc.ChapterPage, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	title := firstText(doc.Find("h1"))
	if title == "" {
		title = firstText(doc.Find("title"))
	}

	return &woldoc.ChapterPage{
		Title:           title,
		CrossReferences: anchors(doc.Find(ScriptureSelector)),
		Footnotes:       anchors(doc.Find(FootnoteSelector)),
	}, nil
}

// ReadingAnchors returns the anchors of the weekly reading assignment.
// The assignment heading is #p2; documents without it fall back to the
// first h2 that holds a scripture anchor.
func (p *Parser) ReadingAnchors(html string) ([]woldoc.Anchor, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	sel := doc.Find(ReadingSelector)
	if sel.Length() == 0 {
		sel = doc.Find("h2").FilterFunction(func(_ int, h *goquery.Selection) bool {
			return h.Find(ScriptureSelector).Length() > 0
		}).First().Find(ScriptureSelector)
	}

	result := anchors(sel)
	if len(result) == 0 {
		return nil, woldoc.Errorf(woldoc.ENOTFOUND, "no reading assignment anchor found")
	}
	return result, nil
}

// Anchors returns every anchor matching selector in document order.
func (p *Parser) Anchors(html string, selector string) ([]woldoc.Anchor, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}
	return anchors(doc.Find(selector)), nil
}

// ArticleHTML returns the outer HTML of the #article element.
func (p *Parser) ArticleHTML(html string) (string, error) {
	doc, err := newDocument(html)
	if err != nil {
		return "", err
	}

	sel := doc.Find(ArticleSelector).First()
	if sel.Length() == 0 {
		return "", woldoc.Errorf(woldoc.ENOTFOUND, "no element found with id=%q", "article")
	}
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", woldoc.Errorf(woldoc.EINTERNAL, "failed to render article: %v", err)
	}
	return out, nil
}

func newDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, woldoc.Errorf(woldoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// firstText returns the trimmed text of the first element in sel.
func firstText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.First().Text())
}

func articleTitle(doc *goquery.Document) string {
	if title := firstText(doc.Find("h1 strong")); title != "" {
		return title
	}
	return firstText(doc.Find("h1"))
}

// anchors converts a selection of links to anchors, skipping links without
// an href.
func anchors(sel *goquery.Selection) []woldoc.Anchor {
	var result []woldoc.Anchor
	sel.Each(func(_ int, a *goquery.Selection) {
		href, exists := a.Attr("href")
		if !exists || href == "" {
			return
		}
		result = append(result, woldoc.Anchor{
			DisplayText: strings.TrimSpace(a.Text()),
			Href:        href,
		})
	})
	return result
}

// extractQuestions pairs every study question with the paragraphs that
// reference its data-pid.
func extractQuestions(doc *goquery.Document) []woldoc.Question {
	questions := []woldoc.Question{}
	related := doc.Find("p[data-rel-pid]")

	doc.Find("p.qu").Each(func(_ int, q *goquery.Selection) {
		question := woldoc.Question{
			PNumbers:   paragraphNumbers(q),
			Question:   questionText(q),
			Paragraphs: []string{},
		}
		question.ScriptureAnchors = append(question.ScriptureAnchors, anchors(q.Find(ScriptureSelector))...)
		question.FootnoteAnchors = append(question.FootnoteAnchors, anchors(q.Find(FootnoteSelector))...)

		pid, _ := q.Attr("data-pid")
		want := "[" + pid + "]"
		related.FilterFunction(func(_ int, para *goquery.Selection) bool {
			rel, _ := para.Attr("data-rel-pid")
			return rel == want
		}).Each(func(_ int, para *goquery.Selection) {
			question.Paragraphs = append(question.Paragraphs, strings.TrimSpace(para.Text()))
			question.ScriptureAnchors = append(question.ScriptureAnchors, anchors(para.Find(ScriptureSelector))...)
			question.FootnoteAnchors = append(question.FootnoteAnchors, anchors(para.Find(FootnoteSelector))...)
		})

		questions = append(questions, question)
	})
	return questions
}

// questionText returns the question without its leading paragraph numbers.
func questionText(q *goquery.Selection) string {
	clone := q.Clone()
	clone.Find("strong").First().Remove()
	return strings.TrimSpace(clone.Text())
}

// paragraphNumbers reads the paragraph numbers printed in a question's
// leading strong element, e.g. "1, 2." yields [1 2].
func paragraphNumbers(q *goquery.Selection) []int {
	numbers := []int{}
	strong := q.Find("strong").First()
	if strong.Length() == 0 {
		return numbers
	}
	for _, m := range digitsRe.FindAllString(strong.Text(), -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

func extractTeachBlock(doc *goquery.Document) woldoc.TeachBlock {
	block := woldoc.TeachBlock{Points: []string{}}

	sel := doc.Find("#tt16").First()
	if sel.Length() == 0 {
		sel = doc.Find(".blockTeach").First()
	}
	if sel.Length() == 0 {
		return block
	}

	block.Headline = firstText(sel.Find("h2"))
	sel.Find("ul li p").Each(func(_ int, p *goquery.Selection) {
		block.Points = append(block.Points, strings.TrimSpace(p.Text()))
	})
	return block
}
