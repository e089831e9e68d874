package main

import "github.com/fwojciec/woldoc"

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	links := woldoc.BuildChapterLinks(deps.Origin, c.Template, c.First, c.Last, c.Lang)
	data, err := encode(deps.Format, links)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
