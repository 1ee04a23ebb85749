package mock

import "github.com/fwojciec/medcorpus"

var (
	_ medcorpus.Exporter = (*Exporter)(nil)
	_ medcorpus.Parser   = (*Parser)(nil)
)

// Exporter is a mock implementation of medcorpus.Exporter.
type Exporter struct {
	ExportFn func(doc *medcorpus.Document) ([]byte, error)
}

func (e *Exporter) Export(doc *medcorpus.Document) ([]byte, error) {
	return e.ExportFn(doc)
}

// Parser is a mock implementation of medcorpus.Parser.
type Parser struct {
	ParseFn func(data []byte) (*medcorpus.Document, error)
}

func (p *Parser) Parse(data []byte) (*medcorpus.Document, error) {
	return p.ParseFn(data)
}
