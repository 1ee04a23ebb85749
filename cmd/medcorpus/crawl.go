package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/medcorpus"
	"github.com/fwojciec/medcorpus/crawl"
	"github.com/fwojciec/medcorpus/fs"
	"github.com/fwojciec/medcorpus/goquery"
	medhttp "github.com/fwojciec/medcorpus/http"
	"github.com/fwojciec/medcorpus/markdown"
	medslog "github.com/fwojciec/medcorpus/slog"
	"github.com/fwojciec/medcorpus/sqlite"
	"github.com/fwojciec/medcorpus/yaml"
)

// checkpointEvery is how many entries pass between report flushes, so a
// killed run still leaves a recent report behind.
const checkpointEvery = 25

// runCrawl wires the crawl pipeline and processes the selected catalog
// slice. Only catalog load and database open failures are fatal;
// per-entry failures end up in the report without changing the exit
// status.
func runCrawl(cli *CLI, deps *Dependencies, start, limit int) error {
	if cli.SkipExisting && cli.DB == "" {
		return fmt.Errorf("--skip-existing requires --db")
	}

	catalog, err := fs.LoadCatalog(cli.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %s", medcorpus.ErrorMessage(err))
	}

	delay := time.Duration(cli.Delay * float64(time.Second))

	var fetcher medcorpus.Fetcher = medhttp.NewFetcher()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		fetcher = medslog.NewLoggingFetcher(fetcher, logger)
	}

	crawler := &crawl.Crawler{
		Fetcher:         fetcher,
		Extractor:       goquery.NewExtractor(),
		Prose:           markdown.NewExporter(),
		Structured:      yaml.NewExporter(),
		Output:          fs.NewWriter(cli.Output),
		Reports:         fs.NewReportWriter(cli.Output),
		Pacer:           crawl.NewPacer(delay),
		Retry:           crawl.DefaultRetryPolicy(delay),
		CheckpointEvery: checkpointEvery,
		Logger: func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		},
	}

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer db.Close()

		crawler.Records = sqlite.NewRecordService(db)
		crawler.SkipExisting = cli.SkipExisting
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %d entries (delay %.1fs)\n", event.Total, cli.Delay)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s saved as %s\n", event.Index, event.Total, event.Entry.Name, event.Slug)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s already crawled, skipped\n", event.Index, event.Total, event.Entry.Name)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s failed: %s\n", event.Index, event.Total, event.Entry.Name, medcorpus.ErrorMessage(event.Err))
		}
	}

	opts := crawl.Options{Start: start, Limit: limit, IncludeDrugs: cli.IncludeDrugs}
	report, err := crawler.Run(deps.Ctx, catalog, opts, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nDone: %d successful, %d failed (report: %s)\n",
		report.Successful, report.Failed, filepath.Join(cli.Output, fs.ReportFileName))
	if report.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Rerun this slice with: medcorpus resume %d --limit %d\n", start, report.Total)
	}

	return nil
}
