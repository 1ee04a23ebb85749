package medcorpus

// Document is the normalized hierarchical representation of one page's
// content. Each Document is owned by the processing step of a single
// catalog entry and discarded after export.
type Document struct {
	Title    string
	Sections []Section
}

// Validate returns an error if the document contains invalid fields.
// A document with zero sections is invalid: extraction treats that as a
// failure, never as a success with empty content.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if len(d.Sections) == 0 {
		return Errorf(EINVALID, "document requires at least one section")
	}
	return nil
}

// Section is a titled, leveled node in a document's content tree.
// Level is derived from the source heading depth; every subsection has a
// level strictly greater than its parent's.
type Section struct {
	Heading     string
	Level       int
	Content     []Block
	Subsections []Section
}

// IsEmpty reports whether the section carries no content blocks and no
// subsections.
func (s *Section) IsEmpty() bool {
	return len(s.Content) == 0 && len(s.Subsections) == 0
}

// Block is a typed unit of content within a section. The union is
// sealed: the only variants are Paragraph and List, and every consumer
// type-switches over them with an error default so a new variant cannot
// be dropped silently.
type Block interface {
	isBlock()
}

// Paragraph is a run of plain text.
type Paragraph struct {
	Text string
}

func (Paragraph) isBlock() {}

// List is an ordered or unordered sequence of list items.
type List struct {
	Items   []string
	Ordered bool
}

func (List) isBlock() {}
