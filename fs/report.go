package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/medcorpus"
)

// ReportFileName is the progress report written into the output
// directory, one per run, overwritten on each flush.
const ReportFileName = "crawl_report.json"

// reportJSON is the on-disk report layout.
type reportJSON struct {
	Timestamp string       `json:"timestamp"`
	StartFrom int          `json:"start_from"`
	Progress  progressJSON `json:"progress"`
}

type progressJSON struct {
	Total      int                      `json:"total"`
	Successful int                      `json:"successful"`
	Failed     int                      `json:"failed"`
	FailedList []medcorpus.EntryFailure `json:"failed_list"`
}

// Ensure ReportWriter implements medcorpus.ReportWriter at compile time.
var _ medcorpus.ReportWriter = (*ReportWriter)(nil)

// ReportWriter persists progress reports as JSON in the output
// directory.
type ReportWriter struct {
	baseDir string
}

// NewReportWriter creates a new ReportWriter rooted at the given base
// directory.
func NewReportWriter(baseDir string) *ReportWriter {
	return &ReportWriter{baseDir: baseDir}
}

// WriteReport writes the report to <base>/crawl_report.json, replacing
// any previous flush of the same run.
func (w *ReportWriter) WriteReport(ctx context.Context, report *medcorpus.Report) error {
	out := reportJSON{
		Timestamp: report.Timestamp.Format("2006-01-02 15:04:05"),
		StartFrom: report.StartFrom,
		Progress: progressJSON{
			Total:      report.Total,
			Successful: report.Successful,
			Failed:     report.Failed,
			FailedList: report.FailedList,
		},
	}
	// An empty failure list serializes as [], not null.
	if out.Progress.FailedList == nil {
		out.Progress.FailedList = []medcorpus.EntryFailure{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return medcorpus.Errorf(medcorpus.EINTERNAL, "encode report: %v", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return medcorpus.Errorf(medcorpus.EINTERNAL, "create output directory: %v", err)
	}
	fullPath := filepath.Join(w.baseDir, ReportFileName)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return medcorpus.Errorf(medcorpus.EINTERNAL, "write %s: %v", ReportFileName, err)
	}
	return nil
}
