package memdoc

import (
	"fmt"
	"strings"

	"github.com/npillmayer/elcreate/dom/w3cdom"
	"github.com/npillmayer/elcreate/tree"
)

type nodeKind uint8

const (
	elementNode nodeKind = iota
	textNode
	markupNode // raw markup, stored without parsing
)

// Element is a node of an in-memory document. Only nodes of element kind
// are ever handed out to clients.
type Element struct {
	tree.Node[*Element] // we build on top of general purpose tree
	kind                nodeKind
	tag                 string
	data                string // text or raw markup
	attrs               []w3cdom.Attr
	owner               *Document
}

var _ w3cdom.Element = (*Element)(nil)

// TagName is part of interface w3cdom.Element.
func (e *Element) TagName() string {
	return e.tag
}

// SetAttribute is part of interface w3cdom.Element.
func (e *Element) SetAttribute(name, value string) error {
	if !w3cdom.IsValidName(name) {
		return fmt.Errorf("set attribute %q: %w", name, w3cdom.ErrInvalidCharacter)
	}
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].Key == name {
			e.attrs[i].Value = value
			return nil
		}
	}
	e.attrs = append(e.attrs, w3cdom.Attr{Key: name, Value: value})
	return nil
}

// GetAttribute is part of interface w3cdom.Element.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes is part of interface w3cdom.Element.
func (e *Element) Attributes() []w3cdom.Attr {
	attrs := make([]w3cdom.Attr, len(e.attrs))
	copy(attrs, e.attrs)
	return attrs
}

// SetInnerHTML is part of interface w3cdom.Element.
// The markup is not parsed, but stored as a single opaque child node.
func (e *Element) SetInnerHTML(markup string) error {
	e.RemoveChildren()
	if markup != "" {
		e.AddChild(&e.owner.newNode(markupNode, markup).Node)
	}
	return nil
}

// InnerHTML returns the raw markup set by SetInnerHTML, provided it has not
// been replaced since.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for _, ch := range e.Node.Children() {
		if ch.Payload.kind == markupNode {
			b.WriteString(ch.Payload.data)
		}
	}
	return b.String()
}

// SetTextContent is part of interface w3cdom.Element.
func (e *Element) SetTextContent(text string) {
	e.RemoveChildren()
	if text != "" {
		e.AddChild(&e.owner.newNode(textNode, text).Node)
	}
}

// TextContent is part of interface w3cdom.Element.
// Opaque markup does not contribute to the text content.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.TopDown(func(n *tree.Node[*Element], _ int) error {
		if n.Payload.kind == textNode {
			b.WriteString(n.Payload.data)
		}
		return nil
	})
	return b.String()
}

// AppendChild is part of interface w3cdom.Element.
// If child is currently attached to a parent, it is moved.
func (e *Element) AppendChild(child w3cdom.Element) error {
	ch, ok := child.(*Element)
	if !ok || ch == nil || ch.owner != e.owner {
		return fmt.Errorf("append %T to <%s>: %w", child, e.tag, w3cdom.ErrWrongDocument)
	}
	if ch.IsAncestorOf(&e.Node) {
		return fmt.Errorf("append <%s> to <%s>: %w", ch.tag, e.tag, w3cdom.ErrHierarchyRequest)
	}
	e.AddChild(&ch.Node)
	return nil
}

// ParentNode is part of interface w3cdom.Element.
func (e *Element) ParentNode() w3cdom.Element {
	if p := e.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// Children is part of interface w3cdom.Element.
func (e *Element) Children() []w3cdom.Element {
	var children []w3cdom.Element
	for _, ch := range e.Node.Children() {
		if ch.Payload.kind == elementNode {
			children = append(children, ch.Payload)
		}
	}
	return children
}

func (e *Element) String() string {
	return fmt.Sprintf("<%s>", e.tag)
}

func (d *Document) newNode(kind nodeKind, data string) *Element {
	e := &Element{kind: kind, data: data, owner: d}
	e.Payload = e
	return e
}
