package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/woldoc"
)

// Ensure LoggingArchiveService implements woldoc.ArchiveService.
var _ woldoc.ArchiveService = (*LoggingArchiveService)(nil)

// LoggingArchiveService wraps an ArchiveService with logging.
type LoggingArchiveService struct {
	next   woldoc.ArchiveService
	logger *slog.Logger
}

// NewLoggingArchiveService creates a new LoggingArchiveService.
func NewLoggingArchiveService(next woldoc.ArchiveService, logger *slog.Logger) *LoggingArchiveService {
	return &LoggingArchiveService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingArchiveService) CreateRecord(ctx context.Context, rec *woldoc.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("archive record",
			"id", rec.ID,
			"kind", rec.Kind,
			"source", rec.SourceURL,
			"bytes", len(rec.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingArchiveService) FindRecordByID(ctx context.Context, id string) (*woldoc.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingArchiveService) FindRecords(ctx context.Context, filter woldoc.RecordFilter) (records []*woldoc.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service and logs the operation.
func (s *LoggingArchiveService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
