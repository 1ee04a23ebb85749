package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/medcorpus"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ medcorpus.RecordService = (*RecordService)(nil)

// RecordService implements medcorpus.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a new crawl record.
func (s *RecordService) CreateRecord(ctx context.Context, rec *medcorpus.CrawlRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, run_id, name, url, kind, status, error_reason, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.RunID, rec.Name, rec.URL, string(rec.Kind), string(rec.Status),
		rec.ErrorReason, rec.ContentHash, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter medcorpus.RecordFilter) ([]*medcorpus.CrawlRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, name, url, kind, status, error_reason, content_hash, created_at FROM records WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*medcorpus.CrawlRecord
	for rows.Next() {
		var rec medcorpus.CrawlRecord
		var kind, status, createdAt string

		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Name, &rec.URL, &kind, &status,
			&rec.ErrorReason, &rec.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		rec.Kind = medcorpus.Kind(kind)
		rec.Status = medcorpus.Status(status)
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// HasSucceeded reports whether any prior run recorded a success for the
// named entry.
func (s *RecordService) HasSucceeded(ctx context.Context, name string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM records WHERE name = ? AND status = ?)
	`, name, string(medcorpus.StatusSuccess)).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}
	return exists == 1, nil
}
