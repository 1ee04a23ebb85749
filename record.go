package medcorpus

import (
	"context"
	"time"
)

// Status is the terminal outcome of processing one catalog entry.
// Transitions are one-way: pending entries end as success or failure
// and never return to pending within a run.
type Status string

// Crawl record statuses.
const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// CrawlRecord is the persisted outcome of processing one catalog entry
// during one run.
type CrawlRecord struct {
	ID          string
	RunID       string
	Name        string
	URL         string
	Kind        Kind
	Status      Status
	ErrorReason string
	ContentHash string // hash of the prose export, empty on failure
	CreatedAt   time.Time
}

// Validate returns an error if the record contains invalid fields.
func (r *CrawlRecord) Validate() error {
	if r.RunID == "" {
		return Errorf(EINVALID, "crawl record run ID required")
	}
	if r.Name == "" {
		return Errorf(EINVALID, "crawl record name required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "crawl record URL required")
	}
	switch r.Status {
	case StatusPending, StatusSuccess, StatusFailure:
	default:
		return Errorf(EINVALID, "crawl record status %q unknown", r.Status)
	}
	return nil
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	RunID  *string
	Name   *string
	Status *Status

	Offset int
	Limit  int
}

// RecordService persists per-entry crawl outcomes across runs.
type RecordService interface {
	// CreateRecord stores a new crawl record.
	CreateRecord(ctx context.Context, rec *CrawlRecord) error

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*CrawlRecord, error)

	// HasSucceeded reports whether any prior run recorded a success for
	// the named entry.
	HasSucceeded(ctx context.Context, name string) (bool, error)
}

// EntryFailure names one failed entry and the reason it failed.
type EntryFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report is the persisted summary of a run's outcome counts and
// failure detail. It is owned exclusively by the orchestrator.
type Report struct {
	Timestamp  time.Time
	StartFrom  int
	Total      int
	Successful int
	Failed     int
	FailedList []EntryFailure
}

// ReportWriter persists a progress report.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}
