package elcreate

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/npillmayer/elcreate/dom/w3cdom"
)

// BuildElement creates a single detached element for a description.
// Children of d are not processed; see BuildTree.
//
// Attributes are set in ascending order of their lower-cased names. Then
// d.HTML is set as markup content, if non-empty, and finally d.Text as text
// content, if non-empty.
//
// If the tag name is empty or doc cannot create an element for it,
// an error wrapping ErrInvalidTag is returned. Attribute names rejected by
// doc, or differing only in case, result in an error wrapping
// ErrInvalidAttribute.
func BuildElement(doc w3cdom.Document, d Description) (w3cdom.Element, error) {
	if isNilDocument(doc) {
		return nil, ErrNoDocument
	}
	if d.Tag == "" {
		return nil, fmt.Errorf("%w: empty tag name", ErrInvalidTag)
	}
	el, err := doc.CreateElement(d.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTag, d.Tag, err)
	}
	if err = setAttributes(el, d.Attribs); err != nil {
		return nil, err
	}
	if len(d.HTML) > 0 {
		if err = el.SetInnerHTML(d.HTML); err != nil {
			return nil, fmt.Errorf("element <%s>: %w", d.Tag, err)
		}
	}
	if len(d.Text) > 0 {
		el.SetTextContent(d.Text)
	}
	tracer().P("tag", el.TagName()).Debugf("built element with %d attributes", len(d.Attribs))
	return el, nil
}

// BuildTree creates a detached element for a description, including all of
// its descendants. Children are appended in the order of d.Children.
//
// If any element of the tree fails to build, the error is returned and the
// partially built tree is dropped. The document is never modified.
func BuildTree(doc w3cdom.Document, d Description) (w3cdom.Element, error) {
	root, err := BuildElement(doc, d)
	if err != nil {
		return nil, err
	}
	if err = appendChildren(doc, root, d.Children); err != nil {
		return nil, err
	}
	return root, nil
}

func appendChildren(doc w3cdom.Document, parent w3cdom.Element, children []Description) error {
	for i, ch := range children {
		el, err := BuildElement(doc, ch)
		if err != nil {
			return fmt.Errorf("children[%d]: %w", i, err)
		}
		if err = parent.AppendChild(el); err != nil {
			return fmt.Errorf("children[%d]: %w", i, err)
		}
		if err = appendChildren(doc, el, ch.Children); err != nil {
			return fmt.Errorf("children[%d].%w", i, err)
		}
	}
	return nil
}

func setAttributes(el w3cdom.Element, attribs Attribs) error {
	if len(attribs) == 0 {
		return nil
	}
	keys := make(map[string]string, len(attribs)) // lower-case name => key
	names := make([]string, 0, len(attribs))
	for k := range attribs {
		name := strings.ToLower(k)
		if prev, dup := keys[name]; dup {
			if prev > k {
				prev, k = k, prev
			}
			return fmt.Errorf("%w: %q and %q name the same attribute on <%s>",
				ErrInvalidAttribute, prev, k, el.TagName())
		}
		keys[name] = k
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		k := keys[name]
		value, ok := attribs[k].Resolve()
		if !ok {
			continue // false: omit attribute
		}
		if err := el.SetAttribute(k, value); err != nil {
			return fmt.Errorf("%w %q on <%s>: %w", ErrInvalidAttribute, k, el.TagName(), err)
		}
	}
	return nil
}

// isNilDocument catches typed nil pointers as well as a nil interface.
func isNilDocument(doc w3cdom.Document) bool {
	if doc == nil {
		return true
	}
	v := reflect.ValueOf(doc)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
