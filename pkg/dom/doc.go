// Package dom models markup documents as trees of nodes and provides two
// ways to build them: explicit attachment with Add, and implicit attachment
// through a Builder that tracks the currently open element.
//
// # Core Types
//
// Node is the tree entity. Elements carry a tag, attributes in insertion
// order and ordered children; text, raw-markup and deferred nodes carry
// content. Attribute keys pass through a KeyTable that turns Go-friendly
// spellings into markup names (class_ → class, data_id → data-id).
//
// # Explicit Construction
//
// Package-level constructors return detached nodes; the caller wires them
// together:
//
//	list := dom.Ul()
//	for _, item := range items {
//	    list.Add(dom.Li(item))
//	}
//	page := dom.Div(dom.Class("page"), list)
//
// # Implicit Construction
//
// A Builder keeps a stack of open elements. Content constructed through it
// attaches to the innermost open element, so nesting follows control flow:
//
//	b := dom.NewBuilder()
//	page := b.Div(dom.Class("page"))
//	b.With(page, func() {
//	    b.With(b.Ul(), func() {
//	        for _, item := range items {
//	            b.Li(item)
//	        }
//	    })
//	})
//
// Both styles produce identical trees; With restores the stack on every exit
// path, including panics raised inside the block.
//
// # Deferred Content
//
// Deferred wraps a computation evaluated when rendering reaches it, once per
// render pass and never at build time. Rendering the same tree twice
// re-evaluates it both times.
//
// # Concurrency
//
// A Node and a Builder belong to one goroutine at a time; neither locks.
// Goroutines building trees concurrently must use separate Builders and must
// not share nodes. The only shared state in the package is the KeyTable
// override registry, which is guarded by an RWMutex: registering a mapping is
// safe at any time and visible to all subsequent encodings, though it is
// intended to be configured once at startup.
package dom
