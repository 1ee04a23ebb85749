package medcorpus

import "context"

// Fetcher retrieves raw HTML from URLs.
// Failed fetches return an error coded ETRANSIENT (timeout, connection
// error, HTTP 429/5xx) or EPERMANENT (HTTP 404/410 and other client
// errors). Retry and pacing policy belong to the caller.
type Fetcher interface {
	// Fetch retrieves the page markup at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
