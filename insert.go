package elcreate

import (
	"errors"
	"fmt"

	"github.com/npillmayer/elcreate/dom/w3cdom"
)

// InsertInDocument appends el as the last child of the container for region.
// It returns el, now attached, to allow for chaining.
//
// If no container can be found, an error wrapping ErrNoTargetContainer is
// returned and el stays detached.
func InsertInDocument(doc w3cdom.Document, el w3cdom.Element, region Region) (w3cdom.Element, error) {
	if isNilDocument(doc) {
		return nil, fmt.Errorf("%w: %w", ErrNoTargetContainer, ErrNoDocument)
	}
	if el == nil {
		return nil, errors.New("cannot insert nil element")
	}
	target := region.container(doc)
	if target == nil {
		return nil, fmt.Errorf("%w for region %s", ErrNoTargetContainer, region)
	}
	if err := target.AppendChild(el); err != nil {
		return nil, fmt.Errorf("insert <%s> into <%s>: %w", el.TagName(), target.TagName(), err)
	}
	tracer().P("region", region).Debugf("inserted <%s> into <%s>", el.TagName(), target.TagName())
	return el, nil
}

// BuildAndInsert builds the element tree for d and inserts it into the
// container for region.
func BuildAndInsert(doc w3cdom.Document, d Description, region Region) (w3cdom.Element, error) {
	el, err := BuildTree(doc, d)
	if err != nil {
		return nil, err
	}
	return InsertInDocument(doc, el, region)
}
