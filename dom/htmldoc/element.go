package htmldoc

import (
	"fmt"
	"strings"

	"github.com/npillmayer/elcreate/dom/w3cdom"
	"golang.org/x/net/html"
)

// Element is an element node of an HTML parse tree.
type Element struct {
	node *html.Node
}

var _ w3cdom.Element = Element{}

// WrapNode creates an Element for an existing element node.
// It returns nil for nodes other than element nodes.
func WrapNode(n *html.Node) w3cdom.Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return Element{node: n}
}

// HTMLNode gets the HTML DOM node corresponding to this element.
func (e Element) HTMLNode() *html.Node {
	return e.node
}

// TagName is part of interface w3cdom.Element.
func (e Element) TagName() string {
	return e.node.Data
}

// SetAttribute is part of interface w3cdom.Element.
func (e Element) SetAttribute(name, value string) error {
	if !w3cdom.IsValidName(name) {
		return fmt.Errorf("set attribute %q: %w", name, w3cdom.ErrInvalidCharacter)
	}
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return nil
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
	return nil
}

// GetAttribute is part of interface w3cdom.Element.
func (e Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes is part of interface w3cdom.Element.
func (e Element) Attributes() []w3cdom.Attr {
	attrs := make([]w3cdom.Attr, len(e.node.Attr))
	for i, a := range e.node.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		attrs[i] = w3cdom.Attr{Key: key, Value: a.Val}
	}
	return attrs
}

// SetInnerHTML is part of interface w3cdom.Element.
// The markup is parsed as a fragment in the context of e and replaces all
// children of e. It is not sanitized in any way. Children of void elements
// are kept, but never rendered.
func (e Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("parse inner html of <%s>: %w", e.node.Data, err)
	}
	removeChildren(e.node)
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// SetTextContent is part of interface w3cdom.Element.
func (e Element) SetTextContent(text string) {
	removeChildren(e.node)
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// TextContent is part of interface w3cdom.Element.
func (e Element) TextContent() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(e.node)
	return b.String()
}

// AppendChild is part of interface w3cdom.Element.
// If child is currently attached to a parent, it is moved.
func (e Element) AppendChild(child w3cdom.Element) error {
	ch, ok := child.(Element)
	if !ok || ch.node == nil {
		return fmt.Errorf("append %T to <%s>: %w", child, e.node.Data, w3cdom.ErrWrongDocument)
	}
	if w3cdom.IsAncestor(ch, e) {
		return fmt.Errorf("append <%s> to <%s>: %w", ch.node.Data, e.node.Data,
			w3cdom.ErrHierarchyRequest)
	}
	if ch.node.Parent != nil {
		ch.node.Parent.RemoveChild(ch.node)
	}
	e.node.AppendChild(ch.node)
	return nil
}

// ParentNode is part of interface w3cdom.Element.
// Only element parents are reported; the parent of the document element
// is the document node and is reported as nil.
func (e Element) ParentNode() w3cdom.Element {
	return WrapNode(e.node.Parent)
}

// Children is part of interface w3cdom.Element.
func (e Element) Children() []w3cdom.Element {
	var children []w3cdom.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, Element{node: c})
		}
	}
	return children
}

// InnerHTML renders the children of e as HTML.
func (e Element) InnerHTML() (string, error) {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// OuterHTML renders e, including its children, as HTML.
func (e Element) OuterHTML() (string, error) {
	var b strings.Builder
	if err := render(&b, e.node); err != nil {
		return "", err
	}
	return b.String(), nil
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}
