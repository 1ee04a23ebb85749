package mock

import (
	"context"

	"github.com/fwojciec/medcorpus"
)

var _ medcorpus.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of medcorpus.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
