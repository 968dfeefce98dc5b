package ast

// NodeAtOffset descends from root, always choosing the deepest child whose
// span contains offset (or whose right bound equals offset, when
// includeRightBound is set). Children are scanned in source order; the scan
// stops as soon as a child starts past offset, since children never
// overlap. Returns nil if offset falls outside the root's span.
func NodeAtOffset(root *Node, offset uint32, includeRightBound bool) *Node {
	if root == nil || !containsOffset(root, offset, includeRightBound) {
		return nil
	}
	return deepestAt(root, offset, includeRightBound)
}

func containsOffset(n *Node, offset uint32, includeRightBound bool) bool {
	if includeRightBound && offset == n.End() {
		return true
	}
	return n.Contains(offset)
}

func deepestAt(n *Node, offset uint32, includeRightBound bool) *Node {
	for _, child := range children(n) {
		if child == nil {
			continue
		}
		if child.Offset > offset {
			break
		}
		if containsOffset(child, offset, includeRightBound) {
			return deepestAt(child, offset, includeRightBound)
		}
	}
	return n
}

// children returns n's direct child nodes in source order. Property nodes
// expose their value (not their key) as the sole child, matching the
// spec's rule that a property node itself carries no schema matches.
func children(n *Node) []*Node {
	switch n.Kind {
	case KindArray:
		return n.Items
	case KindObject:
		return n.Properties
	case KindProperty:
		if n.Value != nil {
			return []*Node{n.Value}
		}
		return nil
	default:
		return nil
	}
}

// Visit walks the tree rooted at n in pre-order, calling fn on every node.
// If fn returns false, Visit does not descend into that node's children
// (sibling traversal continues unaffected).
func Visit(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range children(n) {
		Visit(child, fn)
	}
}
