package elcreate

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeDescription reads a description in YAML format from r. As YAML is a
// superset of JSON, JSON input works as well.
//
// Keys are tag, text, html, attribs and children; unknown keys are an error.
// Attribute values which are YAML booleans become boolean values, other
// scalars become strings. The decoded description is validated.
func DecodeDescription(r io.Reader) (Description, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if err == io.EOF {
			return d, fmt.Errorf("%w: empty input", ErrInvalidDescription)
		}
		return d, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// ReadDescriptionFile reads a description from a file. Path "-" denotes stdin.
func ReadDescriptionFile(path string) (Description, error) {
	if path == "-" {
		return DecodeDescription(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return Description{}, err
	}
	defer f.Close()
	d, err := DecodeDescription(f)
	if err != nil {
		return d, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
