package render

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

func TestMiddlewareOrder(t *testing.T) {
	renderer := NewRenderer(Config{})

	var order []string
	record := func(name string) Middleware {
		return func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
			order = append(order, name+":before")
			err := next(ctx)
			order = append(order, name+":after")
			return err
		}
	}
	renderer.Use(record("outer"), record("inner"))

	if _, err := renderer.RenderToString(dom.P("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"outer:before", "inner:before", "inner:after", "outer:after"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestMiddlewareStats(t *testing.T) {
	renderer := NewRenderer(Config{})

	var stats PassStats
	renderer.Use(func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
		err := next(ctx)
		stats = *info.Stats
		return err
	})

	html, err := renderer.RenderToString(dom.Div(dom.P("x"), dom.P("y")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// div, two p elements and their two text children
	if stats.Nodes != 5 {
		t.Errorf("Nodes = %d, want 5", stats.Nodes)
	}
	if stats.Bytes != int64(len(html)) {
		t.Errorf("Bytes = %d, want %d", stats.Bytes, len(html))
	}
}

func TestMiddlewarePassInfo(t *testing.T) {
	renderer := NewRenderer(Config{Pretty: true})
	root := dom.Div(dom.P("x"))

	var seen *PassInfo
	renderer.Use(func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
		seen = info
		return next(ctx)
	})

	if _, err := renderer.RenderToString(root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == nil {
		t.Fatal("middleware never ran")
	}
	if seen.Root != root {
		t.Error("info.Root should be the render root")
	}
	if !seen.Pretty {
		t.Error("info.Pretty should reflect the configuration")
	}
}

func TestMiddlewareContext(t *testing.T) {
	type key struct{}

	renderer := NewRenderer(Config{})

	var inner string
	renderer.Use(
		func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
			return next(context.WithValue(ctx, key{}, "outer"))
		},
		func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
			inner, _ = ctx.Value(key{}).(string)
			return next(ctx)
		},
	)

	var buf bytes.Buffer
	err := renderer.RenderToWriterContext(context.Background(), &buf, dom.P("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner != "outer" {
		t.Errorf("inner middleware saw %q, context must flow through the chain", inner)
	}
}

func TestMiddlewareSuppress(t *testing.T) {
	renderer := NewRenderer(Config{})
	renderer.Use(func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
		return nil
	})

	html, err := renderer.RenderToString(dom.P("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("got %q, skipping next must suppress output", html)
	}
}

func TestMiddlewareError(t *testing.T) {
	renderer := NewRenderer(Config{})
	blocked := errors.New("blocked")
	renderer.Use(func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
		return blocked
	})

	_, err := renderer.RenderToString(dom.P("x"))
	if !errors.Is(err, blocked) {
		t.Errorf("err = %v, want middleware error", err)
	}
}

func TestMiddlewareSeesPassError(t *testing.T) {
	renderer := NewRenderer(Config{})

	var passErr error
	renderer.Use(func(ctx context.Context, info *PassInfo, next func(context.Context) error) error {
		passErr = next(ctx)
		return passErr
	})

	_, err := renderer.RenderToString(dom.Div().Add(make(chan int)))
	if err == nil {
		t.Fatal("expected error")
	}
	var rerr *Error
	if !errors.As(passErr, &rerr) {
		t.Errorf("middleware saw %v, want the render error", passErr)
	}
}
