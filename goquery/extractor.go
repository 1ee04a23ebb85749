// Package goquery provides a goquery-based implementation of
// medcorpus.Extractor. It walks heading and content elements of an
// article page in source order and hands the resulting event stream to
// the section-tree builder in the root package.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/medcorpus"
	"golang.org/x/net/html"
)

// headingLevels maps heading tags to their section nesting depth.
// Article bodies use h2-h4; the h1 is the page title.
var headingLevels = map[string]int{
	"h2": 2,
	"h3": 3,
	"h4": 4,
}

// titleFallbackSelector locates the title when the page has no h1.
const titleFallbackSelector = ".title, .page-title, .article-title"

// contentSelectors locate the main article region, tried in order.
var contentSelectors = []string{
	"article",
	"div.article-body, div.article-content, div.main-content",
	"main",
}

// Ensure Extractor implements medcorpus.Extractor at compile time.
var _ medcorpus.Extractor = (*Extractor)(nil)

// Extractor extracts a Document from article page markup.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup and builds the document's section tree.
func (e *Extractor) Extract(html string) (*medcorpus.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, medcorpus.Errorf(medcorpus.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)
	if title == "" {
		return nil, medcorpus.Errorf(medcorpus.ENOTITLE, "no title found in page markup")
	}

	content := findContentRoot(doc)
	if content == nil {
		return nil, medcorpus.Errorf(medcorpus.ENOCONTENT, "no article content region found")
	}

	return medcorpus.BuildDocument(title, walkContent(content))
}

// extractTitle returns the page title from the first h1, falling back
// to common title classes.
func extractTitle(doc *goquery.Document) string {
	if t := text(doc.Find("h1").First()); t != "" {
		return t
	}
	return text(doc.Find(titleFallbackSelector).First())
}

// findContentRoot returns the main article region, or nil if the page
// has none.
func findContentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// walkContent emits markup events for every heading, paragraph, and
// list in the content region, in source order. Elements nested inside
// another content block (e.g. a paragraph inside a list item) are
// skipped so each block is emitted exactly once; empty or malformed
// elements are skipped individually.
func walkContent(content *goquery.Selection) []medcorpus.MarkupEvent {
	var events []medcorpus.MarkupEvent

	content.Find("h2, h3, h4, p, ul, ol").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("p, ul, ol").Length() > 0 {
			return
		}

		name := goquery.NodeName(sel)
		switch name {
		case "h2", "h3", "h4":
			txt := text(sel)
			if txt == "" {
				return
			}
			events = append(events, medcorpus.MarkupEvent{
				Kind:  medcorpus.EventHeading,
				Level: headingLevels[name],
				Text:  txt,
			})

		case "p":
			txt := text(sel)
			if txt == "" {
				return
			}
			events = append(events, medcorpus.MarkupEvent{
				Kind: medcorpus.EventParagraph,
				Text: txt,
			})

		case "ul", "ol":
			var items []string
			sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				if item := text(li); item != "" {
					items = append(items, item)
				}
			})
			if len(items) == 0 {
				return
			}
			events = append(events, medcorpus.MarkupEvent{
				Kind:    medcorpus.EventList,
				Items:   items,
				Ordered: name == "ol",
			})
		}
	})

	return events
}

// normalizeText collapses whitespace runs to single spaces and trims.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// text returns the selection's text with a space between adjacent text
// nodes, so "<li>a<b>b</b></li>" reads "a b" rather than "ab", then
// normalizes whitespace.
func text(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		appendText(&sb, n)
	}
	return normalizeText(sb.String())
}

func appendText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(sb, c)
	}
}
