package render

import (
	"fmt"
	"io"
	"testing"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

func BenchmarkRenderSimple(b *testing.B) {
	renderer := NewRenderer(Config{})
	node := dom.Div(dom.Attr("class", "card"),
		dom.H1("Title"),
		dom.P("Content"),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderLargeTree(b *testing.B) {
	renderer := NewRenderer(Config{})

	var items []any
	for i := 0; i < 1000; i++ {
		items = append(items, dom.Li(fmt.Sprintf("Item %d", i)))
	}
	node := dom.Ul(items...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderDeepNesting(b *testing.B) {
	renderer := NewRenderer(Config{})

	node := dom.Span("Leaf")
	for i := 0; i < 20; i++ {
		node = dom.Div(node)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderManyAttributes(b *testing.B) {
	renderer := NewRenderer(Config{})

	node := dom.Div(
		dom.Attr("id", "main"),
		dom.Attr("class", "container primary active"),
		dom.Attr("data_id", "123"),
		dom.Attr("data_type", "content"),
		dom.Attr("data_status", "published"),
		dom.Attr("aria_label", "Main content"),
		dom.Attr("role", "main"),
		dom.Attr("tabindex", 0),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderPretty(b *testing.B) {
	renderer := NewRenderer(Config{Pretty: true})

	node := dom.Div(dom.Attr("class", "card"),
		dom.H1("Title"),
		dom.P("Content"),
		dom.Ul(
			dom.Li("Item 1"),
			dom.Li("Item 2"),
			dom.Li("Item 3"),
		),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderDeferred(b *testing.B) {
	renderer := NewRenderer(Config{})

	var items []any
	for i := 0; i < 100; i++ {
		i := i
		items = append(items, dom.Deferred(func() any {
			return dom.Li(fmt.Sprintf("Item %d", i))
		}))
	}
	node := dom.Ul(items...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderToWriter(b *testing.B) {
	renderer := NewRenderer(Config{})
	node := dom.Div(dom.Attr("class", "card"),
		dom.H1("Title"),
		dom.P("Content"),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToWriter(io.Discard, node)
	}
}

func BenchmarkRenderTable(b *testing.B) {
	renderer := NewRenderer(Config{})

	var rows []any
	for i := 0; i < 50; i++ {
		rows = append(rows, dom.Tr(
			dom.Td(fmt.Sprintf("%d", i+1)),
			dom.Td(fmt.Sprintf("User %d", i)),
			dom.Td(fmt.Sprintf("user%d@example.com", i)),
		))
	}
	node := dom.Table(dom.Attr("class", "table"),
		dom.Thead(dom.Tr(dom.Th("ID"), dom.Th("Name"), dom.Th("Email"))),
		dom.Tbody(rows...),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}
