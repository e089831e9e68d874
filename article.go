package woldoc

// StudyArticle is a parsed weekly study article.
type StudyArticle struct {
	ArticleNumber    string     `json:"articleNumber" yaml:"articleNumber"`
	ArticleTitle     string     `json:"articleTitle" yaml:"articleTitle"`
	ArticleThemeScrp string     `json:"articleThemeScrp" yaml:"articleThemeScrp"`
	ArticleTopic     string     `json:"articleTopic" yaml:"articleTopic"`
	Contents         []Question `json:"contents" yaml:"contents"`
	TeachBlock       TeachBlock `json:"teachBlock" yaml:"teachBlock"`
}

// Talk is a parsed ten-minute talk from the meeting workbook.
type Talk struct {
	ArticleNumber string     `json:"articleNumber" yaml:"articleNumber"`
	ArticleTitle  string     `json:"articleTitle" yaml:"articleTitle"`
	ArticleTopic  string     `json:"articleTopic" yaml:"articleTopic"`
	Contents      []Question `json:"contents" yaml:"contents"`
	TeachBlock    TeachBlock `json:"teachBlock" yaml:"teachBlock"`
}

// Question is a study question with the paragraphs it covers.
type Question struct {
	PNumbers   []int    `json:"pNumbers" yaml:"pNumbers"`
	Question   string   `json:"question" yaml:"question"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`

	// Populated by resolve.ArticleAnnotator.
	Scriptures *Section   `json:"scriptures,omitempty" yaml:"scriptures,omitempty"`
	Footnotes  []Footnote `json:"footnotes,omitempty" yaml:"footnotes,omitempty"`

	// Anchors found in the question and its paragraphs, in document order.
	ScriptureAnchors []Anchor `json:"-" yaml:"-"`
	FootnoteAnchors  []Anchor `json:"-" yaml:"-"`
}

// TeachBlock is the review box closing an article.
type TeachBlock struct {
	Headline string   `json:"headline" yaml:"headline"`
	Points   []string `json:"points" yaml:"points"`
}

// Reading is the weekly Bible reading assignment.
type Reading struct {
	Title        string   `json:"title" yaml:"title"`
	Book         string   `json:"book" yaml:"book"`
	FirstChapter int      `json:"firstChapter" yaml:"firstChapter"`
	LastChapter  int      `json:"lastChapter" yaml:"lastChapter"`
	Links        []string `json:"links" yaml:"links"`
}

// ChapterReferences holds the references found on one Bible chapter page.
type ChapterReferences struct {
	URL             string     `json:"url" yaml:"url"`
	Title           string     `json:"title,omitempty" yaml:"title,omitempty"`
	CrossReferences *Section   `json:"crossReferences,omitempty" yaml:"crossReferences,omitempty"`
	Footnotes       []Footnote `json:"footnotes,omitempty" yaml:"footnotes,omitempty"`
	Error           string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// ChapterPage is the anchor inventory of one Bible chapter page.
type ChapterPage struct {
	Title           string
	CrossReferences []Anchor
	Footnotes       []Anchor
}

// DocumentParser extracts structure and anchors from site documents.
type DocumentParser interface {
	// ParseStudyArticle parses a study article. Missing landmarks yield
	// empty fields rather than an error.
	ParseStudyArticle(html string) (*StudyArticle, error)

	// ParseTalk parses a ten-minute talk.
	ParseTalk(html string) (*Talk, error)

	// ParseChapter collects the cross-reference and footnote anchors of a
	// Bible chapter page.
	ParseChapter(html string) (*ChapterPage, error)

	// ReadingAnchors returns the anchors of the weekly reading assignment.
	// Returns ENOTFOUND if the document has none.
	ReadingAnchors(html string) ([]Anchor, error)

	// Anchors returns every anchor matching selector in document order.
	Anchors(html string, selector string) ([]Anchor, error)

	// ArticleHTML returns the outer HTML of the article body.
	// Returns ENOTFOUND if the document has no article element.
	ArticleHTML(html string) (string, error)
}
