package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/woldoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ woldoc.ArchiveService = (*ArchiveService)(nil)

// ArchiveService implements woldoc.ArchiveService using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateRecord creates a new record.
func (s *ArchiveService) CreateRecord(ctx context.Context, rec *woldoc.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	rec.ContentHash = hashContent(rec.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, kind, source_url, content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Kind, rec.SourceURL, rec.Content, rec.ContentHash, rec.CreatedAt.Format(timeLayout))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *ArchiveService) FindRecordByID(ctx context.Context, id string) (*woldoc.Record, error) {
	var rec woldoc.Record
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, source_url, content, content_hash, created_at
		FROM records
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Kind, &rec.SourceURL, &rec.Content, &rec.ContentHash, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, woldoc.Errorf(woldoc.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *ArchiveService) FindRecords(ctx context.Context, filter woldoc.RecordFilter) ([]*woldoc.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, source_url, content, content_hash, created_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*woldoc.Record{}
	for rows.Next() {
		var rec woldoc.Record
		var createdAt string

		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.SourceURL, &rec.Content, &rec.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *ArchiveService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return woldoc.Errorf(woldoc.ENOTFOUND, "record not found")
	}
	return nil
}
