/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node has at most one parent and an
ordered list of children. Children slices are guarded by a mutex, so
single-node operations are concurrency-safe; operations spanning several
nodes (walking, moving subtrees) are not atomic and clients will have to
serialize them.

Nodes carry a payload of a type parameter. Clients who want to build a
typed tree usually embed a Node in their own node type and let the payload
reference the node itself:

	type MyNode struct {
		tree.Node[*MyNode]
		…
	}

	n := &MyNode{}
	n.Payload = n

Navigation functions:

	Parent()                     // get the parent node
	AncestorWith(predicate)      // find ancestor with a given predicate
	Select(predicate)            // find all nodes of a sub-tree matching a predicate
	TopDown(action)              // traverse all nodes depth first, in document order

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elcreate.tree'.
func tracer() tracing.Trace {
	return tracing.Select("elcreate.tree")
}
