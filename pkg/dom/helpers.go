package dom

import "fmt"

// Text creates a text node. The content is escaped when the tree is
// rendered.
func Text(content string) *Node {
	return &Node{kind: KindText, text: content}
}

// Textf creates a text node with fmt.Sprintf formatting.
func Textf(format string, args ...any) *Node {
	return &Node{kind: KindText, text: fmt.Sprintf(format, args...)}
}

// Raw creates a node whose content is emitted verbatim, with no escaping.
// This is the explicit opt-out for content that is already markup; nothing
// in the library produces raw output implicitly.
func Raw(markup string) *Node {
	return &Node{kind: KindRaw, text: markup}
}

// Deferred wraps a computation that runs when rendering reaches this
// position, not when the tree is built. The result is coerced like an Add
// argument: strings, numbers, nodes and nested deferred values all work.
// Each render pass invokes fn exactly once; nothing is cached between
// passes, so output follows whatever state fn reads.
//
// Deferred panics with *StructuralError when fn is nil.
func Deferred(fn func() any) *Node {
	if fn == nil {
		panic(&StructuralError{Op: "deferred", Reason: "nil function"})
	}
	return &Node{kind: KindDeferred, fn: fn}
}

// Fragment groups items into a single node that renders its children without
// any wrapper tag.
func Fragment(items ...any) *Node {
	n := &Node{kind: KindFragment}
	return n.Add(items...)
}

// If returns node when cond is true and nil otherwise. Nil children are
// skipped by Add, so the false branch adds nothing.
func If(cond bool, node *Node) *Node {
	if cond {
		return node
	}
	return nil
}

// IfElse returns whenTrue or whenFalse depending on cond.
func IfElse(cond bool, whenTrue, whenFalse *Node) *Node {
	if cond {
		return whenTrue
	}
	return whenFalse
}

// Unless returns node when cond is false.
func Unless(cond bool, node *Node) *Node {
	if !cond {
		return node
	}
	return nil
}

// Range maps items to nodes. Nil results are dropped.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	nodes := make([]*Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Repeat calls fn count times and collects the non-nil results.
func Repeat(count int, fn func(i int) *Node) []*Node {
	nodes := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		if n := fn(i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
