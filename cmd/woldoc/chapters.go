package main

import (
	"fmt"

	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/resolve"
)

// Run executes the chapters command. Each chapter is emitted separately so
// that --out writes one file per chapter.
func (c *ChaptersCmd) Run(deps *Dependencies) error {
	links := c.Links
	if c.Reading != "" {
		reading, err := buildReading(deps, c.Reading)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
			return err
		}
		links = append(links, reading.Links...)
	}

	if len(links) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no chapter links given. Pass links or use --reading.")
		return woldoc.Errorf(woldoc.EINVALID, "no chapter links given")
	}

	walker := &resolve.ChapterWalker{
		Gateway:     deps.Gateway,
		Parser:      deps.Parser,
		Resolver:    deps.Resolver,
		Seen:        deps.Seen,
		Concurrency: c.Concurrency,
	}
	chapters, err := walker.Walk(deps.Ctx, links)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	if deps.Store == nil {
		return emit(deps, "chapters", links[0], chapters)
	}
	for _, chapter := range chapters {
		if err := emit(deps, "chapter", chapter.URL, chapter); err != nil {
			return err
		}
	}
	return nil
}
