package woldoc

import (
	"context"
	"time"
)

// Record is one archived extraction result.
type Record struct {
	ID          string    `json:"id" yaml:"id"`
	Kind        string    `json:"kind" yaml:"kind"`
	SourceURL   string    `json:"sourceUrl" yaml:"sourceUrl"`
	Content     string    `json:"content" yaml:"content"`
	ContentHash string    `json:"contentHash" yaml:"contentHash"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Kind == "" {
		return Errorf(EINVALID, "record kind required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "record content required")
	}
	return nil
}

// ArchiveService represents a service for managing archived extractions.
type ArchiveService interface {
	// CreateRecord stores a new record, assigning its ID, hash and timestamp.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	Kind      *string `json:"kind"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
