package mock

import "github.com/fwojciec/woldoc"

var _ woldoc.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of woldoc.DocumentParser.
type DocumentParser struct {
	ParseStudyArticleFn func(html string) (*woldoc.StudyArticle, error)
	ParseTalkFn         func(html string) (*woldoc.Talk, error)
	ParseChapterFn      func(html string) (*woldoc.ChapterPage, error)
	ReadingAnchorsFn    func(html string) ([]woldoc.Anchor, error)
	AnchorsFn           func(html string, selector string) ([]woldoc.Anchor, error)
	ArticleHTMLFn       func(html string) (string, error)
}

func (p *DocumentParser) ParseStudyArticle(html string) (*woldoc.StudyArticle, error) {
	return p.ParseStudyArticleFn(html)
}

func (p *DocumentParser) ParseTalk(html string) (*woldoc.Talk, error) {
	return p.ParseTalkFn(html)
}

func (p *DocumentParser) ParseChapter(html string) (*woldoc.ChapterPage, error) {
	return p.ParseChapterFn(html)
}

func (p *DocumentParser) ReadingAnchors(html string) ([]woldoc.Anchor, error) {
	return p.ReadingAnchorsFn(html)
}

func (p *DocumentParser) Anchors(html string, selector string) ([]woldoc.Anchor, error) {
	return p.AnchorsFn(html, selector)
}

func (p *DocumentParser) ArticleHTML(html string) (string, error) {
	return p.ArticleHTMLFn(html)
}
