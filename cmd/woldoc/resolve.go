package main

import "github.com/fwojciec/woldoc"

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	anchor := woldoc.Anchor{DisplayText: c.Href, Href: c.Href}
	ref := deps.Resolver.Resolve(deps.Ctx, anchor)
	return emit(deps, "reference", ref.FetchURL, ref)
}
