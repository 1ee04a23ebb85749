package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/medcorpus"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// RetryPolicy controls how failed fetch attempts are retried.
// The total attempt count is len(Delays)+1: one initial attempt plus one
// retry per delay.
type RetryPolicy struct {
	// Delays holds the wait before each retry.
	Delays []time.Duration

	// Retryable reports whether an error is worth retrying.
	// A nil predicate retries everything.
	Retryable func(error) bool
}

// Retryable is the default retry predicate: only transient fetch
// failures are retried.
func Retryable(err error) bool {
	return medcorpus.ErrorCode(err) == medcorpus.ETRANSIENT
}

// DefaultRetryPolicy returns the policy used against the article host:
// two retries spaced at twice the politeness delay, transient failures
// only.
func DefaultRetryPolicy(delay time.Duration) RetryPolicy {
	return RetryPolicy{
		Delays:    []time.Duration{2 * delay, 2 * delay},
		Retryable: Retryable,
	}
}

// FetchWithRetry fetches a URL under the retry policy. The pacer, if
// provided, is awaited before every attempt including retries, so the
// politeness spacing holds across the whole retry sequence. The logger
// function, if provided, is called for each retry attempt.
//
// A non-retryable error returns immediately. Exhausting all attempts on
// retryable errors returns a terminal ETRANSIENT error naming the last
// failure.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, pacer *Pacer, policy RetryPolicy, logger LogFunc) (string, error) {
	maxAttempts := len(policy.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if pacer != nil {
			if err := pacer.Wait(ctx); err != nil {
				return "", err
			}
		}

		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if policy.Retryable != nil && !policy.Retryable(err) {
			return "", err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(policy.Delays[attempt]):
		}
	}

	return "", medcorpus.Errorf(medcorpus.ETRANSIENT, "retries exhausted: %s", medcorpus.ErrorMessage(lastErr))
}
