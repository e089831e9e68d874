package mock

import (
	"context"

	"github.com/fwojciec/woldoc"
)

var _ woldoc.OutputStore = (*OutputStore)(nil)

// OutputStore is a mock implementation of woldoc.OutputStore.
type OutputStore struct {
	SaveFn   func(ctx context.Context, out *woldoc.Output) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *OutputStore) Save(ctx context.Context, out *woldoc.Output) error {
	return s.SaveFn(ctx, out)
}

func (s *OutputStore) Commit() error {
	return s.CommitFn()
}

func (s *OutputStore) Abort() error {
	return s.AbortFn()
}
