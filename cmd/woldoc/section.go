package main

import (
	"fmt"

	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/resolve"
)

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	html, err := loadSource(deps.Ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	anchors, err := deps.Parser.Anchors(html, c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	aggregator := &resolve.Aggregator{Resolver: deps.Resolver}
	section := aggregator.Aggregate(deps.Ctx, anchors)
	return emit(deps, "section", c.Source, section)
}
