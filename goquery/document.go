// Package goquery provides a goquery-backed implementation of
// vahan.Document over the upstream registration detail markup.
//
// The upstream page renders summary fields as ".hrcd-cardbody" cards
// (a label span followed by a value paragraph) and grouped fields
// inside ".hrc-details-card" containers headed by an h3.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kalyug-papa-bolo/vahan"
	"golang.org/x/net/html"
)

// CSS hooks in the upstream markup.
const (
	cardBodySelector     = ".hrcd-cardbody"
	detailCardSelector   = "div.hrc-details-card"
	expiredTitleSelector = ".insurance-alert-box.expired .title"
)

var _ vahan.Parser = (*Parser)(nil)

// Parser builds vahan.Documents from raw HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML into a Document. Only malformed input that
// goquery itself rejects is an error; a page missing every expected
// hook parses fine and reports absence from each lookup.
func (p *Parser) Parse(markup string) (vahan.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, vahan.Errorf(vahan.EINVALID, "failed to parse HTML: %v", err)
	}
	return &document{doc: doc}, nil
}

type document struct {
	doc *goquery.Document
}

// Title returns the first h1 heading text.
func (d *document) Title() (string, bool) {
	h1 := d.doc.Find("h1").First()
	if h1.Length() == 0 {
		return "", false
	}
	text := textOf(h1)
	return text, text != ""
}

// CardValue scans the flat summary-card list for the first card whose
// label span contains text. The first matching card decides: a match
// without a value paragraph is reported as absent.
func (d *document) CardValue(text string) (string, bool) {
	var value string
	var found bool
	d.doc.Find(cardBodySelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		span := card.Find("span").First()
		if span.Length() == 0 || !containsFold(textOf(span), text) {
			return true
		}
		if p := card.Find("p").First(); p.Length() > 0 {
			value = textOf(p)
			found = value != ""
		}
		return false
	})
	return value, found
}

// LabelValue finds a label span anywhere in the document and reads
// the value paragraph inside its enclosing container.
func (d *document) LabelValue(text string, exact bool) (string, bool) {
	label, ok := d.findLabel(text, exact)
	if !ok {
		return "", false
	}
	p := label.Closest("div").Find("p").First()
	if p.Length() == 0 {
		return "", false
	}
	value := textOf(p)
	return value, value != ""
}

// Section locates a detail card by its heading.
func (d *document) Section(text string) (vahan.Section, bool) {
	heading, ok := d.findHeading(text)
	if !ok {
		return nil, false
	}
	card, ok := sectionFor(heading)
	if !ok {
		return nil, false
	}
	return &section{card: card}, true
}

// ExpiredAlert returns the title text of the insurance-expired alert
// region.
func (d *document) ExpiredAlert() (string, bool) {
	title := d.doc.Find(expiredTitleSelector).First()
	if title.Length() == 0 {
		return "", false
	}
	text := textOf(title)
	return text, text != ""
}

// findHeading returns the first h3 whose text contains text
// (case-insensitive).
func (d *document) findHeading(text string) (*goquery.Selection, bool) {
	var out *goquery.Selection
	d.doc.Find("h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if containsFold(textOf(h), text) {
			out = h
			return false
		}
		return true
	})
	return out, out != nil
}

// findLabel returns the first label span matching text, by exact
// trimmed case-insensitive equality or by substring containment.
func (d *document) findLabel(text string, exact bool) (*goquery.Selection, bool) {
	var out *goquery.Selection
	d.doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		got := textOf(s)
		var match bool
		if exact {
			match = strings.EqualFold(got, strings.TrimSpace(text))
		} else {
			match = containsFold(got, text)
		}
		if match {
			out = s
			return false
		}
		return true
	})
	return out, out != nil
}

// sectionFor returns the nearest detail-card ancestor of a heading.
func sectionFor(heading *goquery.Selection) (*goquery.Selection, bool) {
	card := heading.Closest(detailCardSelector)
	return card, card.Length() > 0
}

type section struct {
	card *goquery.Selection
}

// Value finds the label span inside the section and returns the text
// of the first paragraph following it in document order.
func (s *section) Value(label string) (string, bool) {
	var node *html.Node
	s.card.Find("span").EachWithBreak(func(_ int, sp *goquery.Selection) bool {
		if containsFold(textOf(sp), label) && len(sp.Nodes) > 0 {
			node = sp.Nodes[0]
			return false
		}
		return true
	})
	if node == nil {
		return "", false
	}
	p, ok := valueFollowing(node)
	if !ok {
		return "", false
	}
	value := nodeText(p)
	return value, value != ""
}

// valueFollowing returns the first <p> element after label in
// document order, descending into subtrees. This mirrors how the
// upstream markup places values: usually a sibling paragraph, but
// sometimes nested one container deeper.
func valueFollowing(label *html.Node) (*html.Node, bool) {
	for n := nextInDocument(label, false); n != nil; n = nextInDocument(n, true) {
		if n.Type == html.ElementNode && n.Data == "p" {
			return n, true
		}
	}
	return nil, false
}

// nextInDocument advances one step in document order. When descend is
// false the node's own subtree is skipped.
func nextInDocument(n *html.Node, descend bool) *html.Node {
	if descend && n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// nodeText collects the text content of a node's subtree with
// whitespace collapsed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapse(sb.String())
}

// textOf returns a selection's text with whitespace collapsed.
func textOf(s *goquery.Selection) string {
	return collapse(s.Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}
