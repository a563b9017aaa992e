/*
Package elcreate creates element trees from declarative descriptions and
inserts them into a document.

# Overview

Instead of issuing a sequence of create-element and set-attribute calls,
clients describe nested markup as data:

	d := elcreate.Description{
		Tag: "div",
		Attribs: elcreate.Attribs{
			"id":       elcreate.String("tinybox"),
			"hidden":   elcreate.Bool(true),  // written as hidden=""
			"disabled": elcreate.Bool(false), // not written at all
		},
		Children: []elcreate.Description{
			{Tag: "span", Text: "hi"},
		},
	}
	el, err := elcreate.BuildAndInsert(doc, d, elcreate.Body)

The document is always passed explicitly. It is anything implementing
w3cdom.Document; package htmldoc provides an implementation on top of
golang.org/x/net/html, package memdoc an in-memory one for tests.

# Content

A description may carry both plain text and markup. Markup is applied
first, then text, so if both are present the text wins and the markup is
gone.

Markup is handed to the document unchanged. It is NOT sanitized:
clients passing untrusted markup in Description.HTML are responsible for
sanitizing it themselves.

# Regions

Elements are appended to the head or to the body. Region Other appends to
the body or, if there is none, to the document element. The zero value of
Region is Head.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package elcreate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elcreate.builder'.
func tracer() tracing.Trace {
	return tracing.Select("elcreate.builder")
}
