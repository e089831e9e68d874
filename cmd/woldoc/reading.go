package main

import (
	"fmt"

	"github.com/fwojciec/woldoc"
	"github.com/fwojciec/woldoc/resolve"
)

// buildReading loads a workbook source and derives its weekly reading.
func buildReading(deps *Dependencies, source string) (*woldoc.Reading, error) {
	html, err := loadSource(deps.Ctx, deps, source)
	if err != nil {
		return nil, err
	}

	builder := &resolve.ReadingBuilder{
		Parser:   deps.Parser,
		Resolver: deps.Resolver,
		Origin:   deps.Origin,
	}
	return builder.Build(deps.Ctx, html)
}

// Run executes the reading command.
func (c *ReadingCmd) Run(deps *Dependencies) error {
	reading, err := buildReading(deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	return emit(deps, "reading", c.Source, reading)
}
