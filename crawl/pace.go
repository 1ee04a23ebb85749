package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the politeness delay between outbound requests using a
// burst-1 token bucket: the wall-clock gap between the starts of any two
// consecutive requests is never less than the configured delay,
// including retries and requests issued immediately after a fast
// failure. A zero or negative delay disables pacing.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer with the given minimum delay between
// request starts.
func NewPacer(delay time.Duration) *Pacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next request may start.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
