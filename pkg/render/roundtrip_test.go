package render

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// parseBody parses rendered markup with a standard parser and returns the
// body element the content lands in.
func parseBody(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	body := findElement(doc, "body")
	if body == nil {
		t.Fatal("no body element in parsed output")
	}
	return body
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// summarize flattens a parsed tree into comparable lines. Whitespace-only
// text is skipped and attributes are sorted, so two renderings of the same
// tree summarize identically regardless of layout.
func summarize(n *html.Node, out *[]string) {
	switch n.Type {
	case html.ElementNode:
		attrs := make([]string, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, a.Key+"="+a.Val)
		}
		sort.Strings(attrs)
		*out = append(*out, "<"+n.Data+" "+strings.Join(attrs, " ")+">")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			summarize(c, out)
		}
		*out = append(*out, "</"+n.Data+">")
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			*out = append(*out, text)
		}
	}
}

func TestReparseTextContent(t *testing.T) {
	const text = `5 < 6 & "six" > 5`

	markup, err := Render(dom.Div(dom.Text(text)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := parseBody(t, markup)
	div := findElement(body, "div")
	if div == nil {
		t.Fatal("no div in parsed output")
	}
	if div.FirstChild == nil || div.FirstChild.Type != html.TextNode {
		t.Fatal("div has no text child after re-parse")
	}
	if got := div.FirstChild.Data; got != text {
		t.Errorf("re-parsed text = %q, want %q", got, text)
	}
}

func TestReparseAttributeValue(t *testing.T) {
	const href = `/search?q="go"&lang=en`

	markup, err := Render(dom.A(dom.Attr("href", href), dom.Text("link")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := findElement(parseBody(t, markup), "a")
	if a == nil {
		t.Fatal("no anchor in parsed output")
	}
	var got string
	for _, attr := range a.Attr {
		if attr.Key == "href" {
			got = attr.Val
		}
	}
	if got != href {
		t.Errorf("re-parsed href = %q, want %q", got, href)
	}
}

func TestPrettyCompactEquivalence(t *testing.T) {
	node := dom.Div(dom.Attr("class", "page"),
		dom.H1("Users"),
		dom.Ul(
			dom.Li(dom.Attr("data_id", 1), "alice"),
			dom.Li(dom.Attr("data_id", 2), "bob"),
		),
		dom.Form(dom.Attr("action", "/save"),
			dom.Input(dom.Attr("type", "text"), dom.Attr("name", "q")),
		),
	)

	compact, err := Render(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pretty, err := RenderPretty(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var compactTree, prettyTree []string
	summarize(parseBody(t, compact), &compactTree)
	summarize(parseBody(t, pretty), &prettyTree)

	if !reflect.DeepEqual(compactTree, prettyTree) {
		t.Errorf("pretty output parses differently:\ncompact: %v\npretty:  %v", compactTree, prettyTree)
	}
}

func TestReparseXHTMLVoid(t *testing.T) {
	markup, err := NewRenderer(Config{XHTML: true}).RenderToString(
		dom.Div(dom.Text("a"), dom.Br(), dom.Text("b")),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	br := findElement(parseBody(t, markup), "br")
	if br == nil {
		t.Fatal("self-closing br did not survive re-parse")
	}
	if br.FirstChild != nil {
		t.Error("br must stay childless after re-parse")
	}
}
