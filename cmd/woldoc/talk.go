package main

import (
	"fmt"

	"github.com/fwojciec/woldoc"
)

// Run executes the talk command.
func (c *TalkCmd) Run(deps *Dependencies) error {
	html, err := loadSource(deps.Ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	talk, err := deps.Parser.ParseTalk(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	return emit(deps, "talk", c.Source, talk)
}
