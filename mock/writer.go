package mock

import (
	"context"

	"github.com/fwojciec/medcorpus"
)

var (
	_ medcorpus.OutputWriter = (*OutputWriter)(nil)
	_ medcorpus.ReportWriter = (*ReportWriter)(nil)
)

// OutputWriter is a mock implementation of medcorpus.OutputWriter.
type OutputWriter struct {
	WriteEntryFn func(ctx context.Context, slug string, prose, structured []byte) error
}

func (w *OutputWriter) WriteEntry(ctx context.Context, slug string, prose, structured []byte) error {
	return w.WriteEntryFn(ctx, slug, prose, structured)
}

// ReportWriter is a mock implementation of medcorpus.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *medcorpus.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *medcorpus.Report) error {
	return w.WriteReportFn(ctx, report)
}
