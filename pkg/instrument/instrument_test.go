package instrument

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tagtree-dev/tagtree/pkg/dom"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

func counterValue(t *testing.T, families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if !labelsMatch(m, labels) {
				continue
			}
			return m.GetCounter().GetValue()
		}
	}
	t.Fatalf("no counter %q with labels %v", name, labels)
	return 0
}

func histogramCount(t *testing.T, families []*dto.MetricFamily, name string) uint64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			return m.GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("no histogram %q", name)
	return 0
}

func labelsMatch(m *dto.Metric, labels map[string]string) bool {
	for k, v := range labels {
		found := false
		for _, pair := range m.GetLabel() {
			if pair.GetName() == k && pair.GetValue() == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestPrometheusMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	renderer := render.NewRenderer(render.Config{})
	renderer.Use(Prometheus(WithRegistry(reg), WithNamespace("test")))

	good := dom.Div(dom.P("x"))
	html, err := renderer.RenderToString(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := renderer.RenderToString(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := renderer.RenderToString(dom.Div().Add(make(chan int))); err == nil {
		t.Fatal("expected render error")
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	if got := counterValue(t, families, "test_renders_total", map[string]string{"status": "success"}); got != 2 {
		t.Errorf("success renders = %v, want 2", got)
	}
	if got := counterValue(t, families, "test_renders_total", map[string]string{"status": "error"}); got != 1 {
		t.Errorf("error renders = %v, want 1", got)
	}
	if got := counterValue(t, families, "test_render_bytes_total", nil); got < float64(2*len(html)) {
		t.Errorf("bytes total = %v, want at least %d", got, 2*len(html))
	}
	if got := histogramCount(t, families, "test_render_duration_seconds"); got != 3 {
		t.Errorf("duration samples = %d, want 3", got)
	}
	if got := histogramCount(t, families, "test_render_nodes"); got != 3 {
		t.Errorf("node samples = %d, want 3", got)
	}
}

func TestPrometheusNaming(t *testing.T) {
	reg := prometheus.NewRegistry()
	renderer := render.NewRenderer(render.Config{})
	renderer.Use(Prometheus(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("web"),
		WithConstLabels(prometheus.Labels{"site": "docs"}),
		WithBuckets([]float64{0.001, 0.1, 1}),
	))

	if _, err := renderer.RenderToString(dom.P("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if got := counterValue(t, families, "app_web_renders_total", map[string]string{"status": "success", "site": "docs"}); got != 1 {
		t.Errorf("renders = %v, want 1", got)
	}
}

func TestOpenTelemetryTransparent(t *testing.T) {
	renderer := render.NewRenderer(render.Config{Pretty: true})
	renderer.Use(OpenTelemetry(
		WithTracerName("test"),
		WithSpanName("test.render"),
		WithAttributes(attribute.String("component", "test")),
	))

	html, err := renderer.RenderToString(dom.Div(dom.P("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div>\n  <p>x</p>\n</div>\n" {
		t.Errorf("middleware altered output: %q", html)
	}
}

func TestOpenTelemetryErrorPropagation(t *testing.T) {
	renderer := render.NewRenderer(render.Config{})
	renderer.Use(OpenTelemetry())

	_, err := renderer.RenderToString(dom.Div().Add(make(chan int)))
	if err == nil {
		t.Fatal("expected render error")
	}
	var rerr *render.Error
	if !errors.As(err, &rerr) {
		t.Errorf("error type = %T, want *render.Error through the middleware", err)
	}
}

func TestRootLabel(t *testing.T) {
	if got := rootLabel(dom.Div()); got != "div" {
		t.Errorf("rootLabel(div) = %q", got)
	}
	if got := rootLabel(dom.Text("x")); got != "Text" {
		t.Errorf("rootLabel(text) = %q", got)
	}
	if got := rootLabel(nil); got != "" {
		t.Errorf("rootLabel(nil) = %q", got)
	}
}
