package elcreate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Description describes an element and, optionally, its descendants.
//
// Text and HTML are applied only if non-empty. If both are set, HTML is
// applied first and Text replaces it.
type Description struct {
	Tag      string        `yaml:"tag" validate:"required"`
	Text     string        `yaml:"text,omitempty"`
	HTML     string        `yaml:"html,omitempty"` // raw markup, not sanitized
	Attribs  Attribs       `yaml:"attribs,omitempty"`
	Children []Description `yaml:"children,omitempty" validate:"dive"`
}

// Attribs maps attribute names to values. Attribute names are case-insensitive,
// so keys must differ in more than case: {"ID": …, "id": …} is rejected when
// building.
type Attribs map[string]AttrValue

// AttrValue is an attribute value, which is either a string or a boolean.
//
// A string value sets the attribute to the string. A boolean value of true
// sets the attribute with an empty value, false omits the attribute.
// The zero value is the empty string, which is equivalent to true.
type AttrValue struct {
	value  string
	isBool bool
	on     bool
}

// String creates a string attribute value.
func String(s string) AttrValue {
	return AttrValue{value: s}
}

// Bool creates a boolean attribute value.
func Bool(b bool) AttrValue {
	return AttrValue{isBool: true, on: b}
}

// IsBool is true for boolean attribute values.
func (v AttrValue) IsBool() bool {
	return v.isBool
}

// Resolve returns the textual value to set an attribute to and whether the
// attribute should be set at all.
func (v AttrValue) Resolve() (string, bool) {
	if v.isBool {
		return "", v.on
	}
	return v.value, true
}

func (v AttrValue) String() string {
	if v.isBool {
		return strconv.FormatBool(v.on)
	}
	return strconv.Quote(v.value)
}

// UnmarshalYAML decodes a scalar into an attribute value. Booleans become
// boolean values, any other scalar becomes a string value with the scalar's
// textual form. A null value is never handed to UnmarshalYAML; the decoder
// stores the zero value instead, which sets the attribute without a value.
func (v *AttrValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: attribute value must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Bool(b)
	default:
		*v = String(node.Value)
	}
	return nil
}

// --- Validation ------------------------------------------------------------

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a description and all of its descendants for structural
// errors, e.g., missing tag names. It does not check if a document will
// accept the tag and attribute names.
func (d Description) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s fails %q", ErrInvalidDescription, verrs[0].Namespace(), verrs[0].Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
}
