// Package render serializes dom.Node trees into HTML text.
//
// The renderer walks a tree depth-first and emits markup, handling:
//
//   - Text and attribute escaping (raw nodes opt out explicitly)
//   - Void element syntax, in HTML or XHTML form
//   - Boolean attributes (true renders the bare key, false omits it)
//   - Deferred nodes, resolved fresh on every pass
//   - Pretty-printing with configurable indentation
//
// # Basic Usage
//
// To render a tree to a string:
//
//	r := render.NewRenderer(render.Config{})
//	html, err := r.RenderToString(node)
//
// or use the package conveniences:
//
//	html, err := render.Render(node)
//	html, err := render.RenderPretty(node)
//
// To write to a sink instead of a string:
//
//	err := r.RenderToWriter(w, node)
//
// # Pretty-Printing
//
// With Config.Pretty set, elements whose children are all text render on a
// single line; anything else places each child on its own indented line.
// Whitespace-significant elements (pre, textarea, script, style) are never
// broken up, so pretty and compact output re-parse to equivalent trees.
//
// # Deferred Content
//
// Nodes built with dom.Deferred hold a computation instead of content. Each
// render pass invokes the computation exactly once at the node's position
// and serializes the result under the construction coercion rules. Results
// are never cached; two passes over the same tree may produce different
// output when the underlying data changed.
//
// # Errors
//
// Trees containing values that cannot be serialized (opaque captured values,
// attribute values with no text form) fail with *Error, which carries the
// path from the render root to the offending node. RenderToString discards
// partial output on error.
//
// # Middleware
//
// A render pass can be wrapped with Middleware to time, count or trace it:
//
//	r.Use(func(ctx context.Context, info *render.PassInfo, next func(context.Context) error) error {
//		start := time.Now()
//		err := next(ctx)
//		log.Printf("rendered %d nodes in %s", info.Stats.Nodes, time.Since(start))
//		return err
//	})
package render
