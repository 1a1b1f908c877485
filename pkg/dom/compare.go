package dom

import (
	"fmt"
	"reflect"
	"strconv"
)

// Difference describes one place where two trees disagree. Path locates the
// node from the root by tag and child index, e.g. "div>ul>li[2]".
type Difference struct {
	Path   string
	Field  string // "kind", "tag", "attrs", "text", "children", "deferred", "opaque"
	A, B   string
	Reason string
}

// String formats the difference for test output.
func (d Difference) String() string {
	return fmt.Sprintf("%s: %s: %s (a=%s b=%s)", d.Path, d.Field, d.Reason, d.A, d.B)
}

// Equal reports whether a and b describe the same tree: same kinds, tags,
// attributes in the same order, and children pairwise equal. Text and raw
// nodes compare by content, deferred nodes by function identity (two
// deferred nodes are equal only when they wrap the same func value), opaque
// nodes by their captured value.
func Equal(a, b *Node) bool {
	return len(Diff(a, b)) == 0
}

// Diff lists every difference between the trees rooted at a and b, in
// document order. An empty result means the trees are equal.
func Diff(a, b *Node) []Difference {
	var diffs []Difference
	compare(a, b, rootPath(a, b), &diffs)
	return diffs
}

func rootPath(a, b *Node) string {
	if a != nil && a.kind == KindElement {
		return a.tag
	}
	if b != nil && b.kind == KindElement {
		return b.tag
	}
	return "."
}

func compare(a, b *Node, path string, diffs *[]Difference) {
	if a == nil && b == nil {
		return
	}
	if a == nil || b == nil {
		*diffs = append(*diffs, Difference{
			Path: path, Field: "children",
			A: describe(a), B: describe(b),
			Reason: "present in one tree only",
		})
		return
	}
	if a.kind != b.kind {
		*diffs = append(*diffs, Difference{
			Path: path, Field: "kind",
			A: a.kind.String(), B: b.kind.String(),
			Reason: "kind mismatch",
		})
		return
	}

	switch a.kind {
	case KindText, KindRaw:
		if a.text != b.text {
			*diffs = append(*diffs, Difference{
				Path: path, Field: "text",
				A: strconv.Quote(a.text), B: strconv.Quote(b.text),
				Reason: "content mismatch",
			})
		}
		return
	case KindDeferred:
		if reflect.ValueOf(a.fn).Pointer() != reflect.ValueOf(b.fn).Pointer() {
			*diffs = append(*diffs, Difference{
				Path: path, Field: "deferred",
				A: "func", B: "func",
				Reason: "different deferred functions",
			})
		}
		return
	case KindOpaque:
		if !reflect.DeepEqual(a.raw, b.raw) {
			*diffs = append(*diffs, Difference{
				Path: path, Field: "opaque",
				A: fmt.Sprintf("%v", a.raw), B: fmt.Sprintf("%v", b.raw),
				Reason: "captured value mismatch",
			})
		}
		return
	case KindElement:
		if a.tag != b.tag {
			*diffs = append(*diffs, Difference{
				Path: path, Field: "tag",
				A: a.tag, B: b.tag,
				Reason: "tag mismatch",
			})
			return
		}
		compareAttrs(a, b, path, diffs)
	}

	// Element and fragment children.
	n := len(a.children)
	if len(b.children) != n {
		*diffs = append(*diffs, Difference{
			Path: path, Field: "children",
			A: strconv.Itoa(len(a.children)), B: strconv.Itoa(len(b.children)),
			Reason: "child count mismatch",
		})
		if len(b.children) < n {
			n = len(b.children)
		}
	}
	for i := 0; i < n; i++ {
		compare(a.children[i], b.children[i], childPath(path, a.children[i], i), diffs)
	}
}

func compareAttrs(a, b *Node, path string, diffs *[]Difference) {
	if len(a.attrs) != len(b.attrs) {
		*diffs = append(*diffs, Difference{
			Path: path, Field: "attrs",
			A: strconv.Itoa(len(a.attrs)), B: strconv.Itoa(len(b.attrs)),
			Reason: "attribute count mismatch",
		})
		return
	}
	for i, attrA := range a.attrs {
		attrB := b.attrs[i]
		if attrA.Key != attrB.Key {
			*diffs = append(*diffs, Difference{
				Path: path, Field: "attrs",
				A: attrA.Key, B: attrB.Key,
				Reason: fmt.Sprintf("attribute order differs at %d", i),
			})
			return
		}
		if !reflect.DeepEqual(attrA.Value, attrB.Value) {
			*diffs = append(*diffs, Difference{
				Path: path, Field: "attrs",
				A: fmt.Sprintf("%s=%v", attrA.Key, attrA.Value),
				B: fmt.Sprintf("%s=%v", attrB.Key, attrB.Value),
				Reason: "attribute value mismatch",
			})
		}
	}
}

func describe(n *Node) string {
	if n == nil {
		return "nil"
	}
	if n.kind == KindElement {
		return "<" + n.tag + ">"
	}
	return n.kind.String()
}

func childPath(parent string, child *Node, index int) string {
	label := describe(child)
	if child != nil && child.kind == KindElement {
		label = child.tag
	}
	return fmt.Sprintf("%s>%s[%d]", parent, label, index)
}
