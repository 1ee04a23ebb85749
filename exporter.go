package medcorpus

import "context"

// Exporter serializes a Document into one of the downstream formats.
// Exporters are pure: the same document always yields byte-identical
// output.
type Exporter interface {
	Export(doc *Document) ([]byte, error)
}

// Parser deserializes a structured export back into a Document.
// For the structured format, Parse(Export(doc)) must equal doc.
type Parser interface {
	Parse(data []byte) (*Document, error)
}

// OutputWriter persists the exported pair of files for one entry.
type OutputWriter interface {
	// WriteEntry writes the prose and structured exports under the
	// entry's slug. Both files are written or an error is returned.
	WriteEntry(ctx context.Context, slug string, prose, structured []byte) error
}
