package tree

import "errors"

// ErrSkipChildren may be returned by an Action to prevent TopDown from
// descending into the children of the current node.
var ErrSkipChildren = errors.New("skip children of node")

// Predicate is a function type to match tree nodes.
type Predicate[T comparable] func(*Node[T]) bool

// Action is a function type to operate on tree nodes.
// position is the index of node within its parent's children, or 0 for
// the start node of a traversal.
type Action[T comparable] func(node *Node[T], position int) error

// Whatever is a predicate to match anything.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// AncestorWith finds the nearest ancestor of node matching predicate.
// node itself is not considered. If no ancestor matches, nil is returned.
func (node *Node[T]) AncestorWith(predicate Predicate[T]) *Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			return anc
		}
	}
	return nil
}

// Select collects all nodes of the sub-tree starting at node which match
// predicate. node itself is included. Nodes are returned in document order
// (depth first, pre-order).
func (node *Node[T]) Select(predicate Predicate[T]) []*Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	var result []*Node[T]
	node.TopDown(func(n *Node[T], _ int) error {
		if predicate(n) {
			result = append(result, n)
		}
		return nil
	})
	return result
}

// TopDown traverses the sub-tree starting at node depth first, calling action
// for every node before visiting its children. If action returns
// ErrSkipChildren, the children of the current node are skipped. Any other
// error stops the traversal and is returned.
func (node *Node[T]) TopDown(action Action[T]) error {
	if node == nil || action == nil {
		return nil
	}
	return topDown(node, 0, action)
}

func topDown[T comparable](node *Node[T], position int, action Action[T]) error {
	if err := action(node, position); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		tracer().Debugf("tree walk stopped at %v: %v", node, err)
		return err
	}
	for i, ch := range node.Children() {
		if err := topDown(ch, i, action); err != nil {
			return err
		}
	}
	return nil
}
