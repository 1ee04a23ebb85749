package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/medcorpus"
)

// Subdirectories of the output base, one per export format.
const (
	proseDir      = "markdown"
	structuredDir = "yaml"
)

// Ensure Writer implements medcorpus.OutputWriter at compile time.
var _ medcorpus.OutputWriter = (*Writer)(nil)

// Writer writes one prose file and one structured file per entry under
// format-specific subdirectories of a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteEntry writes <base>/markdown/<slug>.md and <base>/yaml/<slug>.yaml.
// Both files are written or the entry fails; a partial pair from a
// failed write is overwritten on the next attempt for the same slug.
func (w *Writer) WriteEntry(ctx context.Context, slug string, prose, structured []byte) error {
	if slug == "" {
		return medcorpus.Errorf(medcorpus.EINVALID, "output slug required")
	}

	if err := w.writeFile(filepath.Join(proseDir, slug+".md"), prose); err != nil {
		return err
	}
	return w.writeFile(filepath.Join(structuredDir, slug+".yaml"), structured)
}

func (w *Writer) writeFile(relPath string, content []byte) error {
	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return medcorpus.Errorf(medcorpus.EINTERNAL, "create output directory: %v", err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return medcorpus.Errorf(medcorpus.EINTERNAL, "write %s: %v", relPath, err)
	}
	return nil
}
