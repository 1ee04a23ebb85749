// Package http provides an HTTP-based implementation of
// medcorpus.Fetcher for retrieving static article markup.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/medcorpus"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent identifies the crawler to the remote host.
const DefaultUserAgent = "Mozilla/5.0 (Educational crawler)"

// Ensure Fetcher implements medcorpus.Fetcher at compile time.
var _ medcorpus.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs using plain HTTP requests. It does
// not execute JavaScript; only static-equivalent markup is consumed.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Errors are coded
// ETRANSIENT when retrying may help (network failure, HTTP 429/5xx) and
// EPERMANENT when it cannot (4xx and malformed responses).
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", medcorpus.Errorf(medcorpus.EPERMANENT, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		// Timeouts, connection resets, DNS hiccups.
		return "", medcorpus.Errorf(medcorpus.ETRANSIENT, "request failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	if code := classifyStatus(resp.StatusCode); code != "" {
		return "", medcorpus.Errorf(code, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", medcorpus.Errorf(medcorpus.ETRANSIENT, "reading response for %s: %v", url, err)
	}

	return string(body), nil
}

// classifyStatus maps a non-success HTTP status to an error code.
// Returns empty string for 200.
func classifyStatus(status int) string {
	switch {
	case status == http.StatusOK:
		return ""
	case status == http.StatusTooManyRequests || status >= 500:
		return medcorpus.ETRANSIENT
	default:
		// 404/410 and every other client error is terminal.
		return medcorpus.EPERMANENT
	}
}
