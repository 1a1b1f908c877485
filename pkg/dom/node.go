package dom

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <input>, etc.
	KindText                 // Plain text, escaped on render
	KindRaw                  // Pre-escaped text, emitted verbatim
	KindFragment             // Child sequence without a wrapper tag
	KindDeferred             // Computation resolved at render time
	KindOpaque               // Unconvertible value, rejected at render time
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindFragment:
		return "Fragment"
	case KindDeferred:
		return "Deferred"
	case KindOpaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// Attribute is a single key/value pair on an element. The key is always in
// its translated markup form.
type Attribute struct {
	Key   string
	Value any
}

// Attrs passes a batch of attributes to a constructor by caller-spelled key.
// Keys are translated through the key table and applied in sorted key order,
// so map iteration order never leaks into the output.
type Attrs map[string]any

// Node is one entity of a markup tree. Elements carry a tag, an ordered
// attribute list and ordered children; the remaining kinds carry text, a
// deferred computation or a captured raw value. A node belongs to at most one
// parent at a time.
//
// Nodes are not safe for concurrent mutation; see the package documentation
// for the ownership rules.
type Node struct {
	kind     Kind
	tag      string
	void     bool
	attrs    []Attribute
	children []*Node
	parent   *Node

	text string     // KindText, KindRaw
	fn   func() any // KindDeferred
	raw  any        // KindOpaque

	keys *KeyTable // table used by Set; nil means DefaultKeys
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag name; empty for non-element kinds.
func (n *Node) Tag() string { return n.tag }

// IsVoid reports whether the node is a void (self-closing) element.
func (n *Node) IsVoid() bool { return n.void }

// Text returns the literal content of a text or raw node.
func (n *Node) Text() string { return n.text }

// Parent returns the node currently holding this node as a child, if any.
func (n *Node) Parent() *Node { return n.parent }

// Attributes returns the attribute list in insertion order. The slice is the
// node's own storage and must not be modified by the caller.
func (n *Node) Attributes() []Attribute { return n.attrs }

// Children returns the child list in document order. The slice is the node's
// own storage and must not be modified by the caller.
func (n *Node) Children() []*Node { return n.children }

// Attr looks up an attribute by caller-spelled key and reports whether it is
// set. The key goes through the same translation as Set, so Attr("data_id")
// finds an attribute stored as data-id.
func (n *Node) Attr(key string) (any, bool) {
	cleaned, err := n.table().Clean(key)
	if err != nil {
		return nil, false
	}
	for _, a := range n.attrs {
		if a.Key == cleaned {
			return a.Value, true
		}
	}
	return nil, false
}

// Resolve invokes a deferred node's computation and returns the raw result.
// It panics if n is not a deferred node.
func (n *Node) Resolve() any {
	if n.kind != KindDeferred {
		panic(&StructuralError{Op: "resolve", Tag: n.tag, Reason: "not a deferred node"})
	}
	return n.fn()
}

// Opaque returns the value captured for an unconvertible child.
func (n *Node) Opaque() any { return n.raw }

// Set upserts one attribute and returns the node for chaining. The key is
// translated through the node's key table; an illegal key panics with
// *KeyError immediately. A nil value removes the attribute. Setting an
// existing key replaces its value but keeps its original position, so
// attribute order stays deterministic.
func (n *Node) Set(key string, value any) *Node {
	n.setAttr(n.table().mustClean(key), value)
	return n
}

// Add appends items as children (or applies them as attributes, for
// Attribute and Attrs arguments) and returns the node for chaining.
//
// Items are coerced: strings become text nodes, numbers and bools become
// their text representation, fmt.Stringer values their String(), nested
// slices are flattened, nil is skipped. Nodes attach as-is. A value no rule
// covers is kept as an opaque child and reported when the tree is rendered.
//
// Add panics with *StructuralError when the receiver is a void element and
// items contain children, or when a child already has a parent.
func (n *Node) Add(items ...any) *Node {
	for _, item := range items {
		n.addItem(item)
	}
	return n
}

// Detach removes the node from its parent, if any, and returns it. A
// detached node can be attached elsewhere.
func (n *Node) Detach() *Node {
	if n.parent != nil {
		n.parent.detach(n)
	}
	return n
}

// Clear detaches all children and returns the node for chaining.
func (n *Node) Clear() *Node {
	for len(n.children) > 0 {
		n.detach(n.children[0])
	}
	return n
}

func (n *Node) addItem(item any) {
	switch v := item.(type) {
	case nil:
	case *Node:
		if v != nil {
			n.attach(v)
		}
	case Attribute:
		n.setAttr(n.table().mustClean(v.Key), v.Value)
	case []Attribute:
		for _, a := range v {
			n.setAttr(n.table().mustClean(a.Key), a.Value)
		}
	case Attrs:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.setAttr(n.table().mustClean(k), v[k])
		}
	case []*Node:
		for _, c := range v {
			if c != nil {
				n.attach(c)
			}
		}
	case []any:
		for _, c := range v {
			n.addItem(c)
		}
	case string:
		n.attach(Text(v))
	case fmt.Stringer:
		n.attach(Text(v.String()))
	default:
		if s, ok := scalarText(v); ok {
			n.attach(Text(s))
			return
		}
		n.attach(&Node{kind: KindOpaque, raw: v})
	}
}

// attach appends child to n, enforcing the void and single-parent
// invariants.
func (n *Node) attach(child *Node) {
	if n.void {
		panic(&StructuralError{Op: "add", Tag: n.tag, Reason: "void element cannot have children"})
	}
	if child == n {
		panic(&StructuralError{Op: "add", Tag: n.tag, Reason: "node cannot be its own child"})
	}
	if child.parent != nil {
		panic(&StructuralError{Op: "add", Tag: child.tag, Reason: "node already has a parent"})
	}
	child.parent = n
	n.children = append(n.children, child)
}

// detach removes child from n's child list and clears its parent link. It is
// a no-op when child is not a direct child of n.
func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// setAttr applies the upsert/remove rules for an already-translated key.
func (n *Node) setAttr(key string, value any) {
	for i, a := range n.attrs {
		if a.Key == key {
			if value == nil {
				n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			} else {
				n.attrs[i].Value = value
			}
			return
		}
	}
	if value == nil {
		return
	}
	n.attrs = append(n.attrs, Attribute{Key: key, Value: value})
}

func (n *Node) table() *KeyTable {
	if n.keys != nil {
		return n.keys
	}
	return DefaultKeys
}

// scalarText converts the scalar kinds Add accepts into their text form.
func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}
