package vahan

import (
	"context"
	"strings"
)

// Document is a parsed registration detail page. The upstream page is
// a loosely-structured label/value layout: summary fields rendered as
// compact cards near the top, grouped fields inside heading-delimited
// detail cards further down.
//
// All lookups report absence with a false second return value rather
// than an error. Missing fields are routine sparsity in third-party
// markup, not failures.
type Document interface {
	// Title returns the text of the first top-level heading,
	// typically the registration number.
	Title() (string, bool)

	// CardValue scans the flat summary-card list and returns the
	// value of the first card whose label contains text
	// (case-insensitive).
	CardValue(text string) (string, bool)

	// LabelValue searches the whole document for a label and returns
	// the value inside its enclosing container. When exact is true the
	// label must equal text after trimming (case-insensitive);
	// otherwise substring containment is enough.
	LabelValue(text string, exact bool) (string, bool)

	// Section returns the detail card whose heading contains text
	// (case-insensitive), scoping subsequent lookups to its subtree.
	Section(text string) (Section, bool)

	// ExpiredAlert returns the whitespace-collapsed text of the
	// insurance-expired alert region, if the page shows one.
	ExpiredAlert() (string, bool)
}

// Section is a heading-delimited region of a Document grouping
// related labeled fields.
type Section interface {
	// Value returns the text immediately following the first label in
	// the section whose text contains label (case-insensitive).
	Value(label string) (string, bool)
}

// Parser builds a Document from raw markup.
type Parser interface {
	Parse(html string) (Document, error)
}

// Fetcher retrieves the raw registration detail page for an RC number.
type Fetcher interface {
	// Fetch downloads the detail page for rc and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, rc string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// CanonicalRC normalizes an RC number for fetching and cache keying.
func CanonicalRC(rc string) string {
	return strings.ToUpper(strings.TrimSpace(rc))
}
