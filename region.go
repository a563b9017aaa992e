package elcreate

import (
	"fmt"
	"strings"

	"github.com/npillmayer/elcreate/dom/w3cdom"
)

// Region determines where in a document an element will be inserted.
type Region int8

// Regions of a document. Values other than these are treated as Other.
const (
	Head  Region = iota // the head of the document (default)
	Body                // the body of the document
	Other               // body if present, else the document element
)

func (r Region) String() string {
	switch r {
	case Head:
		return "head"
	case Body:
		return "body"
	}
	return "other"
}

// ParseRegion converts a region name (head, body or other) to a Region.
func ParseRegion(name string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "head", "":
		return Head, nil
	case "body":
		return Body, nil
	case "other":
		return Other, nil
	}
	return Head, fmt.Errorf("unknown region %q", name)
}

// container finds the element to append to for a region. It is looked up
// anew for every call.
func (r Region) container(doc w3cdom.Document) w3cdom.Element {
	switch r {
	case Head:
		return firstOf(firstByTagName(doc, "head"), doc.Head())
	case Body:
		return firstOf(firstByTagName(doc, "body"), doc.Body())
	}
	return firstOf(firstByTagName(doc, "body"), doc.Body(), doc.DocumentElement())
}

func firstByTagName(doc w3cdom.Document, name string) w3cdom.Element {
	if elems := doc.GetElementsByTagName(name); len(elems) > 0 {
		return elems[0]
	}
	return nil
}

func firstOf(candidates ...w3cdom.Element) w3cdom.Element {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
