package dom

// Builder carries the stack of currently open nodes for one logical flow of
// execution. Content constructed through a builder attaches itself to the
// innermost open node, so deeply nested trees can be written without passing
// parents around:
//
//	b := dom.NewBuilder()
//	page := b.Div(dom.Class("page"))
//	b.With(page, func() {
//		b.H1("Season results")
//		b.With(b.Ul(), func() {
//			for _, t := range teams {
//				b.Li(t.Name)
//			}
//		})
//	})
//
// A Builder belongs to exactly one goroutine at a time and does no locking;
// concurrent flows each create their own. Builders share nothing except the
// key table they translate attribute keys through.
type Builder struct {
	stack []*Node
	keys  *KeyTable
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithKeyTable makes the builder translate attribute keys through t instead
// of the process-wide default table.
func WithKeyTable(t *KeyTable) BuilderOption {
	return func(b *Builder) { b.keys = t }
}

// NewBuilder returns a Builder with no open scope.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{keys: DefaultKeys}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Current returns the innermost open node, or nil when no scope is open.
func (b *Builder) Current() *Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// Depth returns the number of open scopes.
func (b *Builder) Depth() int { return len(b.stack) }

// Enter opens n as a scope: until the matching exit, content constructed
// through the builder attaches to n. The returned function closes the scope
// and is meant to be deferred. Entering a nil or void node panics with
// *StructuralError.
func (b *Builder) Enter(n *Node) (exit func()) {
	if n == nil {
		panic(&StructuralError{Op: "enter", Reason: "nil node"})
	}
	if n.void {
		panic(&StructuralError{Op: "enter", Tag: n.tag, Reason: "void element cannot be a scope"})
	}
	if n.kind != KindElement && n.kind != KindFragment {
		panic(&StructuralError{Op: "enter", Tag: n.tag, Reason: n.kind.String() + " node cannot be a scope"})
	}
	b.stack = append(b.stack, n)
	return b.Exit
}

// Exit closes the innermost open scope. An Exit with no open scope panics
// with *ScopeError rather than corrupting the stack.
func (b *Builder) Exit() {
	if len(b.stack) == 0 {
		panic(&ScopeError{Op: "exit", Reason: "no open scope"})
	}
	b.stack[len(b.stack)-1] = nil
	b.stack = b.stack[:len(b.stack)-1]
}

// With runs fn with n as the open scope and returns n. The scope closes on
// every exit path: if fn panics, the stack is restored before the panic
// propagates, so a recovered flow keeps building from exactly where it was.
func (b *Builder) With(n *Node, fn func()) *Node {
	exit := b.Enter(n)
	defer exit()
	fn()
	return n
}

// El constructs an element like the package-level El and attaches it to the
// innermost open node, if any. A *Node argument that is already a child of
// the open node is moved into the new element instead of staying behind, so
// nested calls like b.Div(b.P("x")) produce the div wrapping the p.
func (b *Builder) El(tag string, args ...any) *Node {
	parent := b.Current()
	reclaim(parent, args)
	n := newElement(b.keys, tag, args...)
	if parent != nil {
		parent.Add(n)
	}
	return n
}

// Add appends items to the innermost open node. It panics with *ScopeError
// when no scope is open.
func (b *Builder) Add(items ...any) {
	parent := b.Current()
	if parent == nil {
		panic(&ScopeError{Op: "add", Reason: "no open scope"})
	}
	reclaim(parent, items)
	parent.Add(items...)
}

// Text constructs a text node and attaches it to the open scope, if any.
func (b *Builder) Text(content string) *Node {
	return b.put(Text(content))
}

// Textf constructs a formatted text node and attaches it to the open scope,
// if any.
func (b *Builder) Textf(format string, args ...any) *Node {
	return b.put(Textf(format, args...))
}

// Raw constructs a raw node and attaches it to the open scope, if any.
func (b *Builder) Raw(markup string) *Node {
	return b.put(Raw(markup))
}

// Deferred constructs a deferred node and attaches it to the open scope, if
// any.
func (b *Builder) Deferred(fn func() any) *Node {
	return b.put(Deferred(fn))
}

// Fragment constructs a fragment and attaches it to the open scope, if any.
func (b *Builder) Fragment(items ...any) *Node {
	parent := b.Current()
	reclaim(parent, items)
	return b.put(Fragment(items...))
}

func (b *Builder) put(n *Node) *Node {
	if parent := b.Current(); parent != nil {
		parent.Add(n)
	}
	return n
}

// reclaim detaches *Node arguments that already hang off parent, so they can
// be re-attached under the node about to consume them.
func reclaim(parent *Node, args []any) {
	if parent == nil {
		return
	}
	for _, a := range args {
		switch v := a.(type) {
		case *Node:
			if v != nil && v.parent == parent {
				parent.detach(v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil && c.parent == parent {
					parent.detach(c)
				}
			}
		case []any:
			reclaim(parent, v)
		}
	}
}
