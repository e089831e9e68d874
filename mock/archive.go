package mock

import (
	"context"

	"github.com/fwojciec/woldoc"
)

var _ woldoc.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of woldoc.ArchiveService.
type ArchiveService struct {
	CreateRecordFn   func(ctx context.Context, rec *woldoc.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*woldoc.Record, error)
	FindRecordsFn    func(ctx context.Context, filter woldoc.RecordFilter) ([]*woldoc.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *ArchiveService) CreateRecord(ctx context.Context, rec *woldoc.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *ArchiveService) FindRecordByID(ctx context.Context, id string) (*woldoc.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *ArchiveService) FindRecords(ctx context.Context, filter woldoc.RecordFilter) ([]*woldoc.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *ArchiveService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
