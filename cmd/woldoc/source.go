package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/woldoc"
)

// stdinSource names standard input as a document source.
const stdinSource = "-"

// loadSource returns the HTML of a document given as an absolute URL, a
// local file path, or "-" for standard input.
func loadSource(ctx context.Context, deps *Dependencies, source string) (string, error) {
	switch {
	case source == stdinSource:
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case isURL(source):
		return woldoc.FetchDocument(ctx, deps.Gateway, source)
	}

	b, err := os.ReadFile(source)
	if os.IsNotExist(err) {
		return "", woldoc.Errorf(woldoc.ENOTFOUND, "source %q not found", source)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
