package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/elcreate/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const blankDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is a host document backed by an HTML parse tree.
type Document struct {
	root *html.Node // node of type html.DocumentNode, may be nil
}

var _ w3cdom.Document = (*Document)(nil)

// New creates a blank HTML document with empty head and body elements.
func New() *Document {
	doc, err := Parse(strings.NewReader(blankDocument))
	if err != nil {
		panic(err) // cannot happen for a constant, well-formed input
	}
	return doc
}

// Parse reads an HTML document. The HTML5 parsing algorithm always
// produces html, head and body elements, even if they are missing from
// the input.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html document: %w", err)
	}
	return &Document{root: root}, nil
}

// Wrap creates a Document for an existing document node. Clients may use it to
// operate on hand-built trees. Unlike parsed trees, these may lack
// html, head or body elements. root may be nil, resulting in a document
// without any containers.
func Wrap(root *html.Node) *Document {
	return &Document{root: root}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Render writes the document as HTML to w.
// Void elements are written without their children, if any.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return nil
	}
	return render(w, d.root)
}

// CreateElement is part of interface w3cdom.Document.
// The tag name is normalized to lower case. Names which are not valid XML
// names are rejected with w3cdom.ErrInvalidCharacter.
func (d *Document) CreateElement(tagName string) (w3cdom.Element, error) {
	if !w3cdom.IsValidName(tagName) {
		return nil, fmt.Errorf("create element %q: %w", tagName, w3cdom.ErrInvalidCharacter)
	}
	name := strings.ToLower(tagName)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	tracer().Debugf("created element <%s>", name)
	return Element{node: n}, nil
}

// GetElementsByTagName is part of interface w3cdom.Document.
// Name "*" matches all elements.
func (d *Document) GetElementsByTagName(name string) []w3cdom.Element {
	if d == nil || d.root == nil {
		return nil
	}
	name = strings.ToLower(name)
	var elems []w3cdom.Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (name == "*" || n.Data == name) {
			elems = append(elems, Element{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return elems
}

// DocumentElement is part of interface w3cdom.Document.
// It returns the first element child of the document node.
func (d *Document) DocumentElement() w3cdom.Element {
	if n := d.documentElement(); n != nil {
		return Element{node: n}
	}
	return nil
}

// Head is part of interface w3cdom.Document.
// It returns the first head element child of the document element.
func (d *Document) Head() w3cdom.Element {
	if n := childElement(d.documentElement(), atom.Head); n != nil {
		return Element{node: n}
	}
	return nil
}

// Body is part of interface w3cdom.Document.
// It returns the first body or frameset element child of the document element.
func (d *Document) Body() w3cdom.Element {
	if n := childElement(d.documentElement(), atom.Body, atom.Frameset); n != nil {
		return Element{node: n}
	}
	return nil
}

// QuerySelector returns the first element matching a CSS selector group,
// or nil if none matches.
func (d *Document) QuerySelector(selector string) (w3cdom.Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("query selector %q: %w", selector, err)
	}
	if d == nil || d.root == nil {
		return nil, nil
	}
	if n := cascadia.Query(d.root, sel); n != nil {
		return Element{node: n}, nil
	}
	return nil, nil
}

// QuerySelectorAll returns all elements matching a CSS selector group,
// in document order.
func (d *Document) QuerySelectorAll(selector string) ([]w3cdom.Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("query selector %q: %w", selector, err)
	}
	if d == nil || d.root == nil {
		return nil, nil
	}
	nodes := cascadia.QueryAll(d.root, sel)
	elems := make([]w3cdom.Element, len(nodes))
	for i, n := range nodes {
		elems[i] = Element{node: n}
	}
	return elems, nil
}

func (d *Document) documentElement() *html.Node {
	if d == nil || d.root == nil {
		return nil
	}
	if d.root.Type == html.ElementNode {
		return d.root
	}
	return childElement(d.root, 0)
}

// childElement finds the first element child of n with one of the given atoms.
// An atom of 0 matches any element.
func childElement(n *html.Node, atoms ...atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		for _, a := range atoms {
			if a == 0 || c.DataAtom == a {
				return c
			}
		}
	}
	return nil
}
