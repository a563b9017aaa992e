/*
Package memdoc is a lightweight in-memory implementation of the w3cdom interfaces.

It is meant for headless testing of code which creates and inserts elements.
Documents may be configured to lack some of their regions, to hold
head and body elements which are not reachable from the root element,
or to reject certain tag names. Markup set with SetInnerHTML is
stored verbatim and is not parsed.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memdoc

import (
	"fmt"
	"strings"

	"github.com/npillmayer/elcreate/dom/w3cdom"
	"github.com/npillmayer/elcreate/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elcreate.dom'.
func tracer() tracing.Trace {
	return tracing.Select("elcreate.dom")
}

// Document is an in-memory host document.
type Document struct {
	root     *Element // the <html> element, may be nil
	head     *Element // reference returned by Head()
	body     *Element // reference returned by Body()
	rejected map[string]bool
}

var _ w3cdom.Document = (*Document)(nil)

// Option configures a Document.
type Option func(*Document)

// WithoutRoot creates a document without any elements.
func WithoutRoot() Option {
	return func(d *Document) {
		d.root, d.head, d.body = nil, nil, nil
	}
}

// WithoutHead creates a document without a head element.
func WithoutHead() Option {
	return func(d *Document) {
		if d.head != nil {
			d.head.Isolate()
			d.head = nil
		}
	}
}

// WithoutBody creates a document without a body element.
func WithoutBody() Option {
	return func(d *Document) {
		if d.body != nil {
			d.body.Isolate()
			d.body = nil
		}
	}
}

// WithDetachedRegions keeps head and body elements available through Head()
// and Body(), but removes them from the element tree. Lookups by tag name
// will not find them.
func WithDetachedRegions() Option {
	return func(d *Document) {
		if d.head != nil {
			d.head.Isolate()
		}
		if d.body != nil {
			d.body.Isolate()
		}
	}
}

// RejectTags lets CreateElement fail for the given tag names.
func RejectTags(tags ...string) Option {
	return func(d *Document) {
		for _, tag := range tags {
			d.rejected[strings.ToLower(tag)] = true
		}
	}
}

// New creates a document with html, head and body elements, then applies
// options in order.
func New(opts ...Option) *Document {
	d := &Document{rejected: make(map[string]bool)}
	d.root = d.newElement("html")
	d.head = d.newElement("head")
	d.body = d.newElement("body")
	d.root.AddChild(&d.head.Node)
	d.root.AddChild(&d.body.Node)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateElement is part of interface w3cdom.Document.
func (d *Document) CreateElement(tagName string) (w3cdom.Element, error) {
	if !w3cdom.IsValidName(tagName) {
		return nil, fmt.Errorf("create element %q: %w", tagName, w3cdom.ErrInvalidCharacter)
	}
	if d == nil {
		return nil, fmt.Errorf("create element %q: %w", tagName, w3cdom.ErrWrongDocument)
	}
	name := strings.ToLower(tagName)
	if d.rejected[name] {
		return nil, fmt.Errorf("create element %q: tag rejected by document", tagName)
	}
	tracer().Debugf("memdoc: created element <%s>", name)
	return d.newElement(name), nil
}

func (d *Document) newElement(name string) *Element {
	e := &Element{kind: elementNode, tag: name, owner: d}
	e.Payload = e
	return e
}

// GetElementsByTagName is part of interface w3cdom.Document.
// Name "*" matches all elements.
func (d *Document) GetElementsByTagName(name string) []w3cdom.Element {
	if d == nil || d.root == nil {
		return nil
	}
	name = strings.ToLower(name)
	nodes := d.root.Select(func(n *tree.Node[*Element]) bool {
		e := n.Payload
		return e.kind == elementNode && (name == "*" || e.tag == name)
	})
	elems := make([]w3cdom.Element, len(nodes))
	for i, n := range nodes {
		elems[i] = n.Payload
	}
	return elems
}

// Head is part of interface w3cdom.Document.
func (d *Document) Head() w3cdom.Element {
	if d == nil || d.head == nil {
		return nil
	}
	return d.head
}

// Body is part of interface w3cdom.Document.
func (d *Document) Body() w3cdom.Element {
	if d == nil || d.body == nil {
		return nil
	}
	return d.body
}

// DocumentElement is part of interface w3cdom.Document.
func (d *Document) DocumentElement() w3cdom.Element {
	if d == nil || d.root == nil {
		return nil
	}
	return d.root
}
