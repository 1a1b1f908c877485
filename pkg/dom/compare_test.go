package dom

import (
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	t.Run("identical trees", func(t *testing.T) {
		build := func() *Node {
			return Div(Class("a"), P("x"), Ul(Li("1"), Li("2")))
		}
		if !Equal(build(), build()) {
			t.Error("identical trees reported unequal")
		}
	})

	t.Run("nil nil equal", func(t *testing.T) {
		if !Equal(nil, nil) {
			t.Error("Equal(nil, nil) = false")
		}
	})

	t.Run("nil vs node", func(t *testing.T) {
		if Equal(nil, Div()) {
			t.Error("Equal(nil, div) = true")
		}
	})

	t.Run("attribute order matters", func(t *testing.T) {
		a := Div().Set("id", "x").Set("class", "c")
		b := Div().Set("class", "c").Set("id", "x")
		if Equal(a, b) {
			t.Error("different attribute order reported equal")
		}
	})

	t.Run("deferred compares by function identity", func(t *testing.T) {
		fn := func() any { return "x" }
		if !Equal(Div(Deferred(fn)), Div(Deferred(fn))) {
			t.Error("same deferred fn reported unequal")
		}
		if Equal(Div(Deferred(fn)), Div(Deferred(func() any { return "x" }))) {
			t.Error("different deferred fns reported equal")
		}
	})

	t.Run("raw and text are distinct", func(t *testing.T) {
		if Equal(Div(Text("<b>")), Div(Raw("<b>"))) {
			t.Error("text and raw with same content reported equal")
		}
	})
}

func TestDiff(t *testing.T) {
	t.Run("tag mismatch", func(t *testing.T) {
		diffs := Diff(Div(), Span())
		if len(diffs) != 1 || diffs[0].Field != "tag" {
			t.Fatalf("diffs = %v, want one tag difference", diffs)
		}
	})

	t.Run("text mismatch carries path", func(t *testing.T) {
		a := Div(Ul(Li("one"), Li("two")))
		b := Div(Ul(Li("one"), Li("2")))
		diffs := Diff(a, b)
		if len(diffs) != 1 {
			t.Fatalf("diffs = %d, want 1", len(diffs))
		}
		if !strings.Contains(diffs[0].Path, "li[1]") {
			t.Errorf("path = %q, want it to locate li[1]", diffs[0].Path)
		}
	})

	t.Run("child count mismatch", func(t *testing.T) {
		diffs := Diff(Ul(Li("a")), Ul(Li("a"), Li("b")))
		if len(diffs) == 0 {
			t.Fatal("no differences reported")
		}
		if diffs[0].Field != "children" {
			t.Errorf("field = %q, want children", diffs[0].Field)
		}
	})

	t.Run("attribute value mismatch", func(t *testing.T) {
		diffs := Diff(Div(Class("a")), Div(Class("b")))
		if len(diffs) != 1 || diffs[0].Field != "attrs" {
			t.Fatalf("diffs = %v, want one attrs difference", diffs)
		}
	})

	t.Run("multiple differences all reported", func(t *testing.T) {
		a := Div(P("x"), P("y"))
		b := Div(P("x2"), P("y2"))
		if diffs := Diff(a, b); len(diffs) != 2 {
			t.Errorf("diffs = %d, want 2", len(diffs))
		}
	})

	t.Run("string output", func(t *testing.T) {
		diffs := Diff(Div(P("x")), Div(P("y")))
		if len(diffs) != 1 {
			t.Fatal("want one difference")
		}
		s := diffs[0].String()
		if !strings.Contains(s, "text") {
			t.Errorf("String() = %q, want mention of text field", s)
		}
	})
}
