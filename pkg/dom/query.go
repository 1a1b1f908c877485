package dom

// Walk visits n and every node below it in depth-first pre-order. Returning
// false from visit skips the current node's children; the walk itself
// continues with the next sibling. Deferred computations are not invoked:
// Walk sees the tree as built, not as it would render.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.children {
		Walk(child, visit)
	}
}

// Find returns the first node under n (n included) for which match returns
// true, or nil.
func Find(n *Node, match func(*Node) bool) *Node {
	var found *Node
	Walk(n, func(node *Node) bool {
		if found != nil {
			return false
		}
		if match(node) {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node under n (n included) for which match returns
// true, in document order.
func FindAll(n *Node, match func(*Node) bool) []*Node {
	var found []*Node
	Walk(n, func(node *Node) bool {
		if match(node) {
			found = append(found, node)
		}
		return true
	})
	return found
}

// FindByID returns the first element under n with the given id attribute, or
// nil.
func FindByID(n *Node, id string) *Node {
	return Find(n, func(node *Node) bool {
		if node.kind != KindElement {
			return false
		}
		v, ok := node.Attr("id")
		return ok && v == id
	})
}

// FindByTag returns every element under n with the given tag, in document
// order.
func FindByTag(n *Node, tag string) []*Node {
	return FindAll(n, func(node *Node) bool {
		return node.kind == KindElement && node.tag == tag
	})
}

// Count returns the number of nodes in the tree rooted at n, n included.
func Count(n *Node) int {
	count := 0
	Walk(n, func(*Node) bool {
		count++
		return true
	})
	return count
}
