package medcorpus

// Extractor maps raw page markup to the normalized Document model.
type Extractor interface {
	// Extract parses the markup and builds the section tree.
	// Returns ENOTITLE when no page title can be located and ENOCONTENT
	// when no heading yields at least one non-empty section. Malformed
	// sub-structures are skipped individually rather than aborting the
	// whole extraction.
	Extract(html string) (*Document, error)
}
