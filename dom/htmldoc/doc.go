/*
Package htmldoc implements the w3cdom interfaces on top of golang.org/x/net/html.

A Document wraps the document node of an HTML parse tree. Elements are thin
value wrappers around *html.Node, so two Elements compare equal if and only
if they wrap the same node.

Element names and attribute names are normalized to lower case, as
browsers do for HTML documents. SetInnerHTML parses markup with the element
as fragment context and does not sanitize anything.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elcreate.dom'.
func tracer() tracing.Trace {
	return tracing.Select("elcreate.dom")
}
