// Package document assembles complete HTML pages around a dom tree. A
// Document owns the doctype declaration and the html element with its head,
// title and body, and renders through any configured render.Renderer.
package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/tagtree-dev/tagtree/pkg/dom"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

// DefaultDoctype is emitted ahead of the tree unless WithDoctype overrides
// it.
const DefaultDoctype = "<!DOCTYPE html>"

// Document is a full page: doctype plus html(head(title), body). Content
// added through Add lands in the body; the head is reachable for metadata.
type Document struct {
	doctype string
	root    *dom.Node
	head    *dom.Node
	body    *dom.Node
	title   *dom.Node
}

// Option configures a Document at construction.
type Option func(*Document)

// WithTitle sets the initial title text.
func WithTitle(title string) Option {
	return func(d *Document) { d.SetTitle(title) }
}

// WithDoctype replaces the doctype declaration with the given full text. An
// empty string omits the declaration.
func WithDoctype(doctype string) Option {
	return func(d *Document) { d.doctype = doctype }
}

// WithLang sets the lang attribute on the html element.
func WithLang(lang string) Option {
	return func(d *Document) { d.root.Set("lang", lang) }
}

// New creates an empty document. The html element carries lang="en" unless
// WithLang overrides it, and the head always holds a title element so
// SetTitle works at any time.
func New(opts ...Option) *Document {
	d := &Document{
		doctype: DefaultDoctype,
		title:   dom.Title(),
	}
	d.head = dom.Head(d.title)
	d.body = dom.Body()
	d.root = dom.Html(dom.Attr("lang", "en"), d.head, d.body)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the html element.
func (d *Document) Root() *dom.Node { return d.root }

// Head returns the head element.
func (d *Document) Head() *dom.Node { return d.head }

// Body returns the body element.
func (d *Document) Body() *dom.Node { return d.body }

// Add appends content to the body and returns the document for chaining.
// Items follow the dom.Node Add coercion rules.
func (d *Document) Add(items ...any) *Document {
	d.body.Add(items...)
	return d
}

// Title returns the current title text.
func (d *Document) Title() string {
	var b strings.Builder
	for _, c := range d.title.Children() {
		if c.Kind() == dom.KindText {
			b.WriteString(c.Text())
		}
	}
	return b.String()
}

// SetTitle replaces the title text.
func (d *Document) SetTitle(title string) {
	d.title.Clear()
	if title != "" {
		d.title.Add(title)
	}
}

// Meta appends a named meta tag to the head.
func (d *Document) Meta(name, content string) *Document {
	d.head.Add(dom.Meta(dom.Attr("name", name), dom.Attr("content", content)))
	return d
}

// Charset appends a charset meta tag to the head.
func (d *Document) Charset(charset string) *Document {
	d.head.Add(dom.Meta(dom.Attr("charset", charset)))
	return d
}

// Stylesheet appends a stylesheet link to the head.
func (d *Document) Stylesheet(href string) *Document {
	d.head.Add(dom.Link(dom.Attr("rel", "stylesheet"), dom.Attr("href", href)))
	return d
}

// Script appends an external script tag to the head.
func (d *Document) Script(src string) *Document {
	d.head.Add(dom.Script(dom.Attr("src", src)))
	return d
}

// Render serializes the whole document with r, doctype included. A nil
// renderer means compact defaults.
func (d *Document) Render(r *render.Renderer) (string, error) {
	if r == nil {
		r = render.NewRenderer(render.Config{})
	}
	tree, err := r.RenderToString(d.root)
	if err != nil {
		return "", err
	}
	if d.doctype == "" {
		return tree, nil
	}
	return d.doctype + "\n" + tree, nil
}

// RenderTo writes the whole document to w, doctype included. A nil renderer
// means compact defaults.
func (d *Document) RenderTo(w io.Writer, r *render.Renderer) error {
	if r == nil {
		r = render.NewRenderer(render.Config{})
	}
	if d.doctype != "" {
		if _, err := io.WriteString(w, d.doctype+"\n"); err != nil {
			return err
		}
	}
	return r.RenderToWriter(w, d.root)
}

// String renders the document pretty-printed with default settings. A tree
// that cannot be rendered yields a comment naming the failure, so String
// stays total for logging and debugging.
func (d *Document) String() string {
	s, err := d.Render(render.NewRenderer(render.Config{Pretty: true}))
	if err != nil {
		return fmt.Sprintf("<!-- document render failed: %v -->", err)
	}
	return s
}
