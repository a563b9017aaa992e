/*
Package w3cdom defines an interface type for the parts of a W3C Document Object Model
which are needed to create elements and insert them into a document.

See also https://dom.spec.whatwg.org/

Implementations of these interfaces are "host documents". Package htmldoc
implements them on top of golang.org/x/net/html, package memdoc is a
lightweight in-memory document for tests.

Implementations must return an untyped nil for absent elements, never a
nil pointer wrapped in an interface.

# Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"errors"
	"unicode"
)

// Host-level errors, modeled after the DOMException names of the W3C DOM.
var (
	// ErrInvalidCharacter is returned for tag or attribute names which are not valid names.
	ErrInvalidCharacter = errors.New("invalid character in name")
	// ErrHierarchyRequest is returned if a node would become its own ancestor.
	ErrHierarchyRequest = errors.New("hierarchy request error")
	// ErrWrongDocument is returned if a node from another document implementation is appended.
	ErrWrongDocument = errors.New("node belongs to a different document")
)

// Document represents a W3C-type Document, reduced to element creation and region lookup.
type Document interface {
	CreateElement(tagName string) (Element, error) // create a detached element
	GetElementsByTagName(name string) []Element    // all elements with a given name, in document order
	Head() Element                                 // the document's head element, or nil
	Body() Element                                 // the document's body element, or nil
	DocumentElement() Element                      // the root element, or nil
}

// Element represents a W3C-type Element
type Element interface {
	TagName() string                         // element name, normalized to lower case
	SetAttribute(name, value string) error   // set or replace an attribute
	GetAttribute(name string) (string, bool) // get an attribute value and if it is present
	Attributes() []Attr                      // all attributes in insertion order
	SetInnerHTML(markup string) error        // replace all children by parsed markup
	SetTextContent(text string)              // replace all children by a single text node
	TextContent() string                     // get text from node and all descendents
	AppendChild(child Element) error         // append as last child, moving it if attached elsewhere
	ParentNode() Element                     // get the parent node, if any
	Children() []Element                     // get a list of element child-nodes
}

// Attr represents W3C-type Attr
type Attr struct {
	Key   string
	Value string
}

// IsValidName checks if a string is usable as a tag or attribute name.
// It follows the XML Name production, which browsers use for
// createElement and setAttribute.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if isNameStartChar(r) {
			continue
		}
		if i == 0 {
			return false
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

func isNameStartChar(r rune) bool {
	return r == ':' || r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return r == '-' || r == '.' || r == '·' || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

// IsAncestor checks if a is an ancestor of (or identical to) n. It walks up
// from n using ParentNode, so elements must be comparable with ==.
func IsAncestor(a, n Element) bool {
	for ; n != nil; n = n.ParentNode() {
		if n == a {
			return true
		}
	}
	return false
}
