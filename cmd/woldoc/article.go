package main

import (
	"fmt"

	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/resolve"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	html, err := loadSource(deps.Ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		return c.runMarkdown(deps, html)
	}

	article, err := deps.Parser.ParseStudyArticle(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	annotator := &resolve.ArticleAnnotator{Resolver: deps.Resolver}
	annotator.Annotate(deps.Ctx, article.Contents)

	return emit(deps, "article", c.Source, article)
}

func (c *ArticleCmd) runMarkdown(deps *Dependencies, html string) error {
	body, err := deps.Parser.ArticleHTML(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	_, err = fmt.Fprintln(deps.Stdout, md)
	return err
}
