// Package fixture builds the document trees shared by the benchmark harness
// and the demo command. The shapes stress different parts of the library:
// uniform nesting, attribute-heavy nodes, builder scopes, deferred content,
// and wide tables.
package fixture

import (
	"fmt"
	"time"

	"github.com/tagtree-dev/tagtree/pkg/document"
	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// SampleText returns escaping-heavy filler text.
func SampleText(i int) string {
	return fmt.Sprintf("text %d & <tag> \"quoted\"", i)
}

// Tree builds a uniform tree of divs with the given depth and breadth. Every
// subtree carries a text child; with attrs set, the root also carries class,
// data, and title attributes.
func Tree(depth, breadth int, attrs bool) *dom.Node {
	node := dom.Div()
	if attrs {
		node.Set("class", "bench")
		node.Set("data_id", "123")
		node.Set("title", "bench title")
	}
	if depth <= 0 {
		node.Add(SampleText(0))
		return node
	}
	for i := 0; i < breadth; i++ {
		child := Tree(depth-1, breadth, false)
		child.Add(SampleText(i))
		node.Add(child)
	}
	return node
}

// SmallDocument builds a complete page around a shallow attribute-carrying
// tree.
func SmallDocument() *document.Document {
	doc := document.New(document.WithTitle("Bench"))
	doc.Add(Tree(3, 4, true))
	return doc
}

// ContextHeavy builds a page body through builder scopes: sections each
// holding a heading and a run of paragraphs.
func ContextHeavy(sections, paragraphs int) *dom.Node {
	b := dom.NewBuilder()
	root := b.Div()
	b.With(root, func() {
		for i := 0; i < sections; i++ {
			b.With(b.Section(), func() {
				b.H1(SampleText(i))
				for j := 0; j < paragraphs; j++ {
					b.P(SampleText(i*10 + j))
				}
			})
		}
	})
	return root
}

// Lazy builds a div whose children are all deferred, so the work happens at
// render time.
func Lazy(count int) *dom.Node {
	root := dom.Div()
	for i := 0; i < count; i++ {
		i := i
		root.Add(dom.Deferred(func() any {
			return fmt.Sprintf("lazy %d", i)
		}))
	}
	return root
}

// Table builds a rows-by-cols table by appending each row explicitly.
func Table(rows, cols int) *dom.Node {
	table := dom.Table()
	for r := 0; r < rows; r++ {
		row := dom.Tr()
		for c := 0; c < cols; c++ {
			row.Add(dom.Td("x"))
		}
		table.Add(row)
	}
	return table
}

// TableScoped builds the same table through builder scopes. Its output must
// match Table exactly; the benchmark harness checks that before timing.
func TableScoped(rows, cols int) *dom.Node {
	b := dom.NewBuilder()
	table := b.Table()
	for r := 0; r < rows; r++ {
		row := b.Tr()
		b.With(row, func() {
			for c := 0; c < cols; c++ {
				b.Td("x")
			}
		})
		table.Add(row)
	}
	return table
}

// DemoDocument builds a small showcase page touching most of the library
// surface: builder scopes, attribute translation, deferred content, and raw
// markup.
func DemoDocument() *document.Document {
	doc := document.New(document.WithTitle("tagtree demo"))
	doc.Charset("utf-8")
	doc.Stylesheet("/static/site.css")

	b := dom.NewBuilder()
	b.With(doc.Body(), func() {
		b.With(b.Header(dom.Class("masthead")), func() {
			b.H1("tagtree")
			b.P("Markup trees built in plain Go.")
		})
		b.With(b.Main(), func() {
			b.With(b.Section(dom.ID("features")), func() {
				b.H2("Features")
				b.With(b.Ul(), func() {
					b.Li("Implicit parent scopes")
					b.Li("Attribute key translation: data_id becomes data-id")
					b.Li("Deferred render-time content")
				})
			})
			b.With(b.Section(dom.ID("table")), func() {
				b.H2("A small table")
				b.Add(Table(3, 3))
			})
		})
		b.With(b.Footer(), func() {
			b.P(dom.Deferred(func() any {
				return "Generated " + time.Now().UTC().Format(time.RFC3339)
			}))
		})
	})
	return doc
}
