// Package crawl provides the crawl orchestration engine. It sequences
// catalog entries through fetch, extraction, and export, enforces the
// politeness and retry policies, isolates per-entry failures, and
// persists progress reports so interrupted runs can be resumed from an
// explicit start index.
package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/medcorpus"
	"github.com/google/uuid"
)

// Crawler orchestrates the crawling of catalog entries. Processing is
// strictly sequential in catalog order: the pacer's politeness delay is
// a deliberate throughput ceiling against a single external host, and
// concurrent fetches would violate it.
type Crawler struct {
	Fetcher    medcorpus.Fetcher
	Extractor  medcorpus.Extractor
	Prose      medcorpus.Exporter
	Structured medcorpus.Exporter
	Output     medcorpus.OutputWriter

	// Reports, if set, receives the progress report at run end and at
	// every checkpoint.
	Reports medcorpus.ReportWriter

	// Records, if set, receives one terminal crawl record per entry and
	// backs the SkipExisting lookup.
	Records medcorpus.RecordService

	Pacer *Pacer
	Retry RetryPolicy

	// SkipExisting skips entries already recorded successful in a prior
	// run. Requires Records.
	SkipExisting bool

	// CheckpointEvery flushes the report after every N entries when
	// positive.
	CheckpointEvery int

	// Logger, if set, receives retry and housekeeping notices.
	Logger LogFunc
}

// Options selects the slice of the catalog a run processes.
type Options struct {
	// Start is the resume index into the filtered catalog.
	Start int

	// Limit bounds the number of entries processed; zero means to the
	// catalog end.
	Limit int

	// IncludeDrugs includes drug entries alongside conditions.
	IncludeDrugs bool
}

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type  ProgressType
	Index int // 1-based position within the run
	Total int
	Entry medcorpus.CatalogEntry
	Slug  string
	Err   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run processes entries[start : start+limit] of the filtered catalog.
// A single entry's failure at any stage never aborts the run; it is
// recorded in the report and processing continues. The run stops early
// only when the context is canceled, and then only between entries —
// never mid-write — so already-flushed output remains valid. The report
// is returned and, when a report writer is configured, persisted.
func (c *Crawler) Run(ctx context.Context, catalog *medcorpus.Catalog, opts Options, progress ProgressFunc) (*medcorpus.Report, error) {
	entries := sliceEntries(catalog.Filtered(opts.IncludeDrugs), opts.Start, opts.Limit)

	runID := uuid.New().String()
	report := &medcorpus.Report{
		Timestamp: time.Now(),
		StartFrom: opts.Start,
		Total:     len(entries),
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(entries)})
	}

	for i, entry := range entries {
		// Interrupt stops the run before the next entry's fetch.
		if ctx.Err() != nil {
			break
		}

		event := ProgressEvent{Index: i + 1, Total: len(entries), Entry: entry}

		if c.SkipExisting && c.Records != nil {
			done, err := c.Records.HasSucceeded(ctx, entry.Name)
			if err == nil && done {
				report.Successful++
				if progress != nil {
					event.Type = ProgressSkipped
					event.Slug = medcorpus.Slugify(entry.Name)
					progress(event)
				}
				continue
			}
		}

		slug, hash, err := c.processEntry(ctx, entry)
		if err != nil {
			report.Failed++
			report.FailedList = append(report.FailedList, medcorpus.EntryFailure{
				Name:   entry.Name,
				Reason: medcorpus.ErrorMessage(err),
			})
			if progress != nil {
				event.Type = ProgressFailed
				event.Err = err
				progress(event)
			}
		} else {
			report.Successful++
			if progress != nil {
				event.Type = ProgressCompleted
				event.Slug = slug
				progress(event)
			}
		}

		c.recordOutcome(ctx, runID, entry, hash, err)

		if c.CheckpointEvery > 0 && (i+1)%c.CheckpointEvery == 0 {
			c.writeReport(ctx, report)
		}
	}

	c.writeReport(ctx, report)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: len(entries)})
	}

	return report, nil
}

// processEntry runs one entry through fetch, extraction, both exports,
// and the output writer. Returns the slug and prose content hash on
// success.
func (c *Crawler) processEntry(ctx context.Context, entry medcorpus.CatalogEntry) (slug, hash string, err error) {
	html, err := FetchWithRetry(ctx, entry.URL, c.Fetcher.Fetch, c.Pacer, c.Retry, c.Logger)
	if err != nil {
		return "", "", err
	}

	doc, err := c.Extractor.Extract(html)
	if err != nil {
		return "", "", err
	}

	prose, err := c.Prose.Export(doc)
	if err != nil {
		return "", "", err
	}
	structured, err := c.Structured.Export(doc)
	if err != nil {
		return "", "", err
	}

	slug = medcorpus.Slugify(entry.Name)
	if err := c.Output.WriteEntry(ctx, slug, prose, structured); err != nil {
		return "", "", err
	}

	return slug, hashContent(prose), nil
}

// recordOutcome persists the terminal record for an entry. Store
// failures are logged, never raised: history is an audit trail, not a
// gate on the run.
func (c *Crawler) recordOutcome(ctx context.Context, runID string, entry medcorpus.CatalogEntry, hash string, entryErr error) {
	if c.Records == nil {
		return
	}

	rec := &medcorpus.CrawlRecord{
		RunID:       runID,
		Name:        entry.Name,
		URL:         entry.URL,
		Kind:        entry.Kind,
		Status:      medcorpus.StatusSuccess,
		ContentHash: hash,
	}
	if entryErr != nil {
		rec.Status = medcorpus.StatusFailure
		rec.ErrorReason = medcorpus.ErrorMessage(entryErr)
		rec.ContentHash = ""
	}

	if err := c.Records.CreateRecord(ctx, rec); err != nil && c.Logger != nil {
		c.Logger("  record %s: %v", entry.Name, err)
	}
}

// writeReport flushes the report. Write failures are logged, never
// raised: a failed flush must not abort the run it describes.
func (c *Crawler) writeReport(ctx context.Context, report *medcorpus.Report) {
	if c.Reports == nil {
		return
	}
	if err := c.Reports.WriteReport(ctx, report); err != nil && c.Logger != nil {
		c.Logger("  report: %v", err)
	}
}

// sliceEntries returns entries[start : start+limit] with bounds clamped
// to the catalog end.
func sliceEntries(entries []medcorpus.CatalogEntry, start, limit int) []medcorpus.CatalogEntry {
	if start < 0 {
		start = 0
	}
	if start >= len(entries) {
		return nil
	}
	end := len(entries)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	return entries[start:end]
}

// hashContent computes the xxHash of exported content as a hex string.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
