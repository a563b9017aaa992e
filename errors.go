package elcreate

import "errors"

// ErrInvalidTag is returned if a description has an empty tag name or if the
// document cannot create an element for the tag name.
var ErrInvalidTag = errors.New("invalid tag")

// ErrInvalidAttribute is returned if the document rejects an attribute name.
var ErrInvalidAttribute = errors.New("invalid attribute")

// ErrNoTargetContainer is returned if no container element can be found for
// a region.
var ErrNoTargetContainer = errors.New("no target container")

// ErrNoDocument is returned if an operation is called with a nil document,
// including a typed nil pointer.
var ErrNoDocument = errors.New("no document")

// ErrInvalidDescription is returned if a description read from a file
// is structurally invalid.
var ErrInvalidDescription = errors.New("invalid element description")
