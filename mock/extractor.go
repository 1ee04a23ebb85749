package mock

import "github.com/fwojciec/medcorpus"

var _ medcorpus.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of medcorpus.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*medcorpus.Document, error)
}

func (e *Extractor) Extract(html string) (*medcorpus.Document, error) {
	return e.ExtractFn(html)
}
