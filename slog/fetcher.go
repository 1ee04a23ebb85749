// Package slog provides logging decorators for medcorpus services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/medcorpus"
)

// Ensure LoggingFetcher implements medcorpus.Fetcher.
var _ medcorpus.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured request logging.
type LoggingFetcher struct {
	next   medcorpus.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next medcorpus.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", medcorpus.ErrorMessage(err),
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}
