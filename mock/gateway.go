package mock

import (
	"context"

	"github.com/fwojciec/woldoc"
)

var _ woldoc.Gateway = (*Gateway)(nil)

// Gateway is a mock implementation of woldoc.Gateway.
type Gateway struct {
	FetchFn func(ctx context.Context, url string) (string, int)
}

func (g *Gateway) Fetch(ctx context.Context, url string) (string, int) {
	return g.FetchFn(ctx, url)
}
