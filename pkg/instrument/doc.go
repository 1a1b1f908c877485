// Package instrument provides render middleware for observability:
// Prometheus metrics and OpenTelemetry traces over render passes.
//
// Both constructors return a render.Middleware ready for Renderer.Use:
//
//	r := render.NewRenderer(render.Config{})
//	r.Use(
//	    instrument.OpenTelemetry(),
//	    instrument.Prometheus(),
//	)
package instrument
