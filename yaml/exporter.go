// Package yaml provides the structured exporter and its parser. The
// export carries the Document schema with no information loss, so
// parsing an export yields a Document identical to the original.
package yaml

import (
	"github.com/fwojciec/medcorpus"
	"gopkg.in/yaml.v3"
)

// Block type discriminators in the structured format.
const (
	typeParagraph = "paragraph"
	typeList      = "list"
)

// Compile-time interface verification.
var (
	_ medcorpus.Exporter = (*Exporter)(nil)
	_ medcorpus.Parser   = (*Parser)(nil)
)

// documentYAML mirrors the Document schema on the wire.
type documentYAML struct {
	Title    string        `yaml:"title"`
	Sections []sectionYAML `yaml:"sections"`
}

type sectionYAML struct {
	Heading     string        `yaml:"heading"`
	Level       int           `yaml:"level"`
	Content     []blockYAML   `yaml:"content,omitempty"`
	Subsections []sectionYAML `yaml:"subsections,omitempty"`
}

// blockYAML is the wire form of the Block union, discriminated by Type.
// Ordered is a pointer so paragraph blocks omit it entirely.
type blockYAML struct {
	Type    string   `yaml:"type"`
	Text    string   `yaml:"text,omitempty"`
	Items   []string `yaml:"items,omitempty"`
	Ordered *bool    `yaml:"ordered,omitempty"`
}

// Exporter renders documents as YAML.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export serializes the document.
func (e *Exporter) Export(doc *medcorpus.Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	sections, err := encodeSections(doc.Sections)
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(documentYAML{Title: doc.Title, Sections: sections})
	if err != nil {
		return nil, medcorpus.Errorf(medcorpus.EINTERNAL, "marshaling document: %v", err)
	}
	return out, nil
}

func encodeSections(sections []medcorpus.Section) ([]sectionYAML, error) {
	var out []sectionYAML
	for _, sec := range sections {
		subs, err := encodeSections(sec.Subsections)
		if err != nil {
			return nil, err
		}

		var content []blockYAML
		for _, blk := range sec.Content {
			switch b := blk.(type) {
			case medcorpus.Paragraph:
				content = append(content, blockYAML{Type: typeParagraph, Text: b.Text})
			case medcorpus.List:
				ordered := b.Ordered
				content = append(content, blockYAML{Type: typeList, Items: b.Items, Ordered: &ordered})
			default:
				return nil, medcorpus.Errorf(medcorpus.EINTERNAL, "unknown content block type %T", blk)
			}
		}

		out = append(out, sectionYAML{
			Heading:     sec.Heading,
			Level:       sec.Level,
			Content:     content,
			Subsections: subs,
		})
	}
	return out, nil
}

// Parser deserializes YAML exports back into Documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes an export. Returns EINVALID for malformed YAML or an
// unknown block type.
func (p *Parser) Parse(data []byte) (*medcorpus.Document, error) {
	var raw documentYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, medcorpus.Errorf(medcorpus.EINVALID, "unmarshaling document: %v", err)
	}

	sections, err := decodeSections(raw.Sections)
	if err != nil {
		return nil, err
	}

	doc := &medcorpus.Document{Title: raw.Title, Sections: sections}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeSections(sections []sectionYAML) ([]medcorpus.Section, error) {
	var out []medcorpus.Section
	for _, sec := range sections {
		subs, err := decodeSections(sec.Subsections)
		if err != nil {
			return nil, err
		}

		var content []medcorpus.Block
		for _, blk := range sec.Content {
			switch blk.Type {
			case typeParagraph:
				content = append(content, medcorpus.Paragraph{Text: blk.Text})
			case typeList:
				ordered := blk.Ordered != nil && *blk.Ordered
				content = append(content, medcorpus.List{Items: blk.Items, Ordered: ordered})
			default:
				return nil, medcorpus.Errorf(medcorpus.EINVALID, "unknown content block type %q", blk.Type)
			}
		}

		out = append(out, medcorpus.Section{
			Heading:     sec.Heading,
			Level:       sec.Level,
			Content:     content,
			Subsections: subs,
		})
	}
	return out, nil
}
