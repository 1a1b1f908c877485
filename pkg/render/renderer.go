package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables indented, line-broken output. Compact output (the
	// default) emits no whitespace beyond what the tree contains.
	Pretty bool

	// IndentWidth is the number of spaces per indentation level in pretty
	// mode. Defaults to 2.
	IndentWidth int

	// XHTML switches void elements to self-closing syntax (<br />) and
	// boolean attributes to the expanded form (checked="checked").
	XHTML bool
}

// Renderer serializes dom.Node trees to markup text. A Renderer is safe for
// concurrent use once configured; Use must not be called concurrently with
// rendering.
type Renderer struct {
	config     Config
	middleware []Middleware
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.IndentWidth <= 0 {
		config.IndentWidth = 2
	}
	return &Renderer{config: config}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// Use appends middleware to the render pass chain. Middleware runs outermost
// first, wrapping the whole pass.
func (r *Renderer) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// RenderToString renders the tree rooted at node and returns the markup. On
// error the partial output is discarded and an empty string returned.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders the tree rooted at node to w. Output already
// written stays written when an error occurs mid-tree; callers that need
// all-or-nothing output should render to a buffer first (RenderToString
// does).
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.RenderToWriterContext(context.Background(), w, node)
}

// RenderToWriterContext renders like RenderToWriter, threading ctx through
// the middleware chain. The render itself never blocks on the context; it is
// carried for middleware that records or traces the pass.
func (r *Renderer) RenderToWriterContext(ctx context.Context, w io.Writer, node *dom.Node) error {
	stats := &PassStats{}
	info := &PassInfo{Root: node, Pretty: r.config.Pretty, Stats: stats}

	run := func(ctx context.Context) error {
		p := &pass{w: w, stats: stats}
		return r.renderNode(p, node, 0, r.config.Pretty)
	}
	for i := len(r.middleware) - 1; i >= 0; i-- {
		mw, next := r.middleware[i], run
		run = func(ctx context.Context) error {
			return mw(ctx, info, next)
		}
	}
	return run(ctx)
}

// Render renders node compactly with a default renderer.
func Render(node *dom.Node) (string, error) {
	return NewRenderer(Config{}).RenderToString(node)
}

// RenderPretty renders node with default pretty-printing.
func RenderPretty(node *dom.Node) (string, error) {
	return NewRenderer(Config{Pretty: true}).RenderToString(node)
}

// pass is the per-render state: the sink, running stats and the path from
// the root used in error reports.
type pass struct {
	w     io.Writer
	stats *PassStats
	path  []string
}

func (p *pass) write(s string) error {
	n, err := io.WriteString(p.w, s)
	p.stats.Bytes += int64(n)
	return err
}

func (p *pass) push(label string, index int) {
	if len(p.path) == 0 {
		p.path = append(p.path, label)
		return
	}
	p.path = append(p.path, fmt.Sprintf("%s[%d]", label, index))
}

func (p *pass) pop() {
	p.path = p.path[:len(p.path)-1]
}

func (p *pass) errorf(value any, format string, args ...any) *Error {
	return &Error{
		Path:   strings.Join(p.path, ">"),
		Reason: fmt.Sprintf(format, args...),
		Value:  value,
	}
}

// renderNode dispatches on node kind. layout is true when the node is being
// placed on its own output line (pretty mode outside preformatted content).
func (r *Renderer) renderNode(p *pass, node *dom.Node, depth int, layout bool) error {
	if node == nil {
		return nil
	}
	p.stats.Nodes++

	switch node.Kind() {
	case dom.KindElement:
		return r.renderElement(p, node, depth, layout)
	case dom.KindText:
		return r.renderLine(p, escapeText(node.Text()), depth, layout)
	case dom.KindRaw:
		return r.renderLine(p, node.Text(), depth, layout)
	case dom.KindFragment:
		for i, child := range node.Children() {
			p.push(pathLabel(child), i)
			err := r.renderNode(p, child, depth, layout)
			p.pop()
			if err != nil {
				return err
			}
		}
		return nil
	case dom.KindDeferred:
		return r.renderResolved(p, node.Resolve(), depth, layout)
	case dom.KindOpaque:
		return p.errorf(node.Opaque(), "unrenderable child of type %T", node.Opaque())
	default:
		return p.errorf(nil, "unknown node kind %d", node.Kind())
	}
}

// renderElement emits an element with attributes and children.
func (r *Renderer) renderElement(p *pass, node *dom.Node, depth int, layout bool) error {
	if len(p.path) == 0 {
		p.push(node.Tag(), 0)
		defer p.pop()
	}

	if layout {
		if err := r.writeIndent(p, depth); err != nil {
			return err
		}
	}
	if err := p.write("<" + node.Tag()); err != nil {
		return err
	}
	if err := r.renderAttributes(p, node); err != nil {
		return err
	}

	if node.IsVoid() {
		open := ">"
		if r.config.XHTML {
			open = " />"
		}
		if err := p.write(open); err != nil {
			return err
		}
		return r.endLine(p, layout)
	}

	if err := p.write(">"); err != nil {
		return err
	}

	children := node.Children()
	childLayout := layout && len(children) > 0 && !isPreformatted(node.Tag()) && !allTextual(children)
	if childLayout {
		if err := p.write("\n"); err != nil {
			return err
		}
	}
	for i, child := range children {
		p.push(pathLabel(child), i)
		err := r.renderNode(p, child, depth+1, childLayout)
		p.pop()
		if err != nil {
			return err
		}
	}
	if childLayout {
		if err := r.writeIndent(p, depth); err != nil {
			return err
		}
	}

	if err := p.write("</" + node.Tag() + ">"); err != nil {
		return err
	}
	return r.endLine(p, layout)
}

// renderLine emits leaf content, on its own indented line when laid out.
func (r *Renderer) renderLine(p *pass, content string, depth int, layout bool) error {
	if layout {
		if err := r.writeIndent(p, depth); err != nil {
			return err
		}
	}
	if err := p.write(content); err != nil {
		return err
	}
	return r.endLine(p, layout)
}

// renderResolved renders the result of a deferred computation, applying the
// same coercion rules as tree construction without mutating any tree.
func (r *Renderer) renderResolved(p *pass, value any, depth int, layout bool) error {
	switch v := value.(type) {
	case nil:
		return nil
	case *dom.Node:
		return r.renderNode(p, v, depth, layout)
	case string:
		return r.renderLine(p, escapeText(v), depth, layout)
	case []*dom.Node:
		for _, child := range v {
			if err := r.renderNode(p, child, depth, layout); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, item := range v {
			if err := r.renderResolved(p, item, depth, layout); err != nil {
				return err
			}
		}
		return nil
	case fmt.Stringer:
		return r.renderLine(p, escapeText(v.String()), depth, layout)
	default:
		if s, ok := scalarString(v); ok {
			return r.renderLine(p, escapeText(s), depth, layout)
		}
		return p.errorf(v, "deferred computation returned unrenderable %T", v)
	}
}

// renderAttributes emits the attribute list in insertion order.
func (r *Renderer) renderAttributes(p *pass, node *dom.Node) error {
	for _, attr := range node.Attributes() {
		if b, ok := attr.Value.(bool); ok {
			if !b {
				continue
			}
			if r.config.XHTML {
				if err := p.write(" " + attr.Key + `="` + attr.Key + `"`); err != nil {
					return err
				}
			} else {
				if err := p.write(" " + attr.Key); err != nil {
					return err
				}
			}
			continue
		}

		value, ok := attrString(attr.Value)
		if !ok {
			return p.errorf(attr.Value, "attribute %q has unrenderable value of type %T", attr.Key, attr.Value)
		}
		if err := p.write(" " + attr.Key + `="` + escapeAttr(value) + `"`); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeIndent(p *pass, depth int) error {
	if depth == 0 {
		return nil
	}
	return p.write(strings.Repeat(" ", depth*r.config.IndentWidth))
}

func (r *Renderer) endLine(p *pass, layout bool) error {
	if !layout {
		return nil
	}
	return p.write("\n")
}

// allTextual reports whether every child is plain text or raw markup, in
// which case the element renders on one line even in pretty mode.
func allTextual(children []*dom.Node) bool {
	for _, child := range children {
		if k := child.Kind(); k != dom.KindText && k != dom.KindRaw {
			return false
		}
	}
	return true
}

func pathLabel(n *dom.Node) string {
	if n == nil {
		return "nil"
	}
	if n.Kind() == dom.KindElement {
		return n.Tag()
	}
	return strings.ToLower(n.Kind().String())
}

// attrString converts an attribute value to its text form.
func attrString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return scalarString(value)
	}
}

// scalarString converts numeric scalars to text.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
