// Package markdown provides the prose exporter: a pure, deterministic
// serialization of a Document as markdown for retrieval pipelines.
package markdown

import (
	"fmt"
	"strings"

	"github.com/fwojciec/medcorpus"
)

// maxHeadingDepth is markdown's deepest heading marker. Sections nested
// deeper render at this depth.
const maxHeadingDepth = 6

// Ensure Exporter implements medcorpus.Exporter at compile time.
var _ medcorpus.Exporter = (*Exporter)(nil)

// Exporter renders documents as markdown.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders the document. The title becomes the top-level heading;
// each section's marker depth equals its tree depth; paragraphs are
// blank-line separated; list items render one per line, numbered lists
// with their 1-based index; subsections follow their parent's content
// depth-first in source order.
func (e *Exporter) Export(doc *medcorpus.Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	blocks := []string{"# " + doc.Title}
	for _, sec := range doc.Sections {
		var err error
		blocks, err = appendSection(blocks, &sec, 2)
		if err != nil {
			return nil, err
		}
	}

	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

// appendSection renders one section and its subtree at the given
// heading depth.
func appendSection(blocks []string, sec *medcorpus.Section, depth int) ([]string, error) {
	if depth > maxHeadingDepth {
		depth = maxHeadingDepth
	}
	blocks = append(blocks, strings.Repeat("#", depth)+" "+sec.Heading)

	for _, blk := range sec.Content {
		switch b := blk.(type) {
		case medcorpus.Paragraph:
			blocks = append(blocks, b.Text)
		case medcorpus.List:
			lines := make([]string, 0, len(b.Items))
			for i, item := range b.Items {
				if b.Ordered {
					lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
				} else {
					lines = append(lines, "- "+item)
				}
			}
			blocks = append(blocks, strings.Join(lines, "\n"))
		default:
			return nil, medcorpus.Errorf(medcorpus.EINTERNAL, "unknown content block type %T", blk)
		}
	}

	for _, sub := range sec.Subsections {
		var err error
		blocks, err = appendSection(blocks, &sub, depth+1)
		if err != nil {
			return nil, err
		}
	}

	return blocks, nil
}
