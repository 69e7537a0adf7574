// Package goquery implements the cinelink extractors on top of
// github.com/PuerkitoBio/goquery CSS selector traversal.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cinelink"
)

// Document is a parsed page. It exposes only the query shapes the
// extractors need; every lookup that may miss returns an ok flag.
type Document struct {
	doc *goquery.Document
}

// Parse parses HTML into a Document.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cinelink.Errorf(cinelink.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// FindAll calls fn for every element matching selector in document order.
func (d *Document) FindAll(selector string, fn func(Node)) {
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		fn(Node{sel: sel})
	})
}

// First returns the first element matching selector.
func (d *Document) First(selector string) (Node, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: sel}, true
}

// FirstAttr returns the named attribute of the first element matching
// selector. A missing element, missing attribute or blank value all
// report false.
func (d *Document) FirstAttr(selector, attr string) (string, bool) {
	n, ok := d.First(selector)
	if !ok {
		return "", false
	}
	return n.Attr(attr)
}

// BodyText returns the visible text of the page body.
func (d *Document) BodyText() string {
	return d.doc.Find("body").Text()
}

// Node is a single element of a Document.
type Node struct {
	sel *goquery.Selection
}

// Attr returns the trimmed value of the named attribute.
// Blank values report false.
func (n Node) Attr(name string) (string, bool) {
	if n.sel == nil {
		return "", false
	}
	v, ok := n.sel.Attr(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Text returns the trimmed text content of the element.
func (n Node) Text() string {
	if n.sel == nil {
		return ""
	}
	return strings.TrimSpace(n.sel.Text())
}

// RawText returns the untrimmed text content, e.g. a script body.
func (n Node) RawText() string {
	if n.sel == nil {
		return ""
	}
	return n.sel.Text()
}

// CellText returns the trimmed text of the i-th (1-based) cell of a row.
func (n Node) CellText(i int) string {
	if n.sel == nil {
		return ""
	}
	return strings.TrimSpace(n.sel.Find(fmt.Sprintf("td:nth-child(%d)", i)).Text())
}

// FindAll calls fn for every descendant of the element matching selector.
func (n Node) FindAll(selector string, fn func(Node)) {
	if n.sel == nil {
		return
	}
	n.sel.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		fn(Node{sel: sel})
	})
}

// FirstText returns the trimmed text of the first descendant matching
// selector, or "" if there is none.
func (n Node) FirstText(selector string) string {
	if n.sel == nil {
		return ""
	}
	return strings.TrimSpace(n.sel.Find(selector).First().Text())
}

// FirstAttr returns the named attribute of the first descendant matching
// selector. Blank values report false.
func (n Node) FirstAttr(selector, attr string) (string, bool) {
	if n.sel == nil {
		return "", false
	}
	return Node{sel: n.sel.Find(selector).First()}.Attr(attr)
}

// NextSibling returns the element immediately following n if it matches
// selector.
func (n Node) NextSibling(selector string) (Node, bool) {
	if n.sel == nil {
		return Node{}, false
	}
	next := n.sel.NextFiltered(selector)
	if next.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: next}, true
}
