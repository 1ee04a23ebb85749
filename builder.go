package medcorpus

// MarkupEventKind discriminates markup events emitted by a parser.
type MarkupEventKind int

// Markup event kinds.
const (
	EventHeading MarkupEventKind = iota
	EventParagraph
	EventList
)

// MarkupEvent is one flattened observation from walking page markup in
// source order: a heading at some depth, a paragraph, or a list. The
// event stream is the minimal capability a markup parser must provide;
// the section-building algorithm below is independent of which parsing
// library produced it.
type MarkupEvent struct {
	Kind    MarkupEventKind
	Level   int      // heading depth, headings only
	Text    string   // heading or paragraph text
	Items   []string // list items, lists only
	Ordered bool     // numbered list, lists only
}

// BuildDocument assembles a Document from a title and a source-ordered
// stream of markup events. A heading opens a section nested under the
// closest prior section with a strictly smaller level, so a jump from
// level 2 to level 4 still nests directly under the level-2 section.
// Content events attach to the most recently opened section; content
// before the first heading is discarded. Sections that end up with no
// blocks and no subsections are pruned.
//
// Returns ENOTITLE if the title is empty and ENOCONTENT if no non-empty
// section survives.
func BuildDocument(title string, events []MarkupEvent) (*Document, error) {
	if title == "" {
		return nil, Errorf(ENOTITLE, "no title found in page markup")
	}

	root := &Section{Level: 0}
	stack := []*Section{root}

	for _, ev := range events {
		switch ev.Kind {
		case EventHeading:
			if ev.Text == "" || ev.Level < 1 {
				continue
			}
			for len(stack) > 1 && stack[len(stack)-1].Level >= ev.Level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1]
			parent.Subsections = append(parent.Subsections, Section{
				Heading: ev.Text,
				Level:   ev.Level,
			})
			stack = append(stack, &parent.Subsections[len(parent.Subsections)-1])

		case EventParagraph:
			if ev.Text == "" || len(stack) == 1 {
				continue
			}
			cur := stack[len(stack)-1]
			cur.Content = append(cur.Content, Paragraph{Text: ev.Text})

		case EventList:
			if len(ev.Items) == 0 || len(stack) == 1 {
				continue
			}
			cur := stack[len(stack)-1]
			cur.Content = append(cur.Content, List{Items: ev.Items, Ordered: ev.Ordered})
		}
	}

	sections := pruneSections(root.Subsections)
	if len(sections) == 0 {
		return nil, Errorf(ENOCONTENT, "no non-empty sections found in page markup")
	}

	return &Document{Title: title, Sections: sections}, nil
}

// pruneSections drops sections with no content and no surviving
// subsections, recursively.
func pruneSections(sections []Section) []Section {
	var out []Section
	for _, s := range sections {
		s.Subsections = pruneSections(s.Subsections)
		if s.IsEmpty() {
			continue
		}
		out = append(out, s)
	}
	return out
}
