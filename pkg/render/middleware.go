package render

import (
	"context"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// PassStats accumulates counters over one render pass. Middleware observes
// the final values after next returns.
type PassStats struct {
	// Nodes is the number of tree nodes visited, including nodes produced
	// by deferred computations.
	Nodes int

	// Bytes is the number of bytes written to the output sink.
	Bytes int64
}

// PassInfo describes one render pass to middleware.
type PassInfo struct {
	// Root is the node the pass started from.
	Root *dom.Node

	// Pretty reports whether the pass produced indented output.
	Pretty bool

	// Stats is filled in as the pass runs. Values are only complete after
	// next returns without error.
	Stats *PassStats
}

// Middleware wraps a render pass. Implementations must call next exactly
// once to run the pass (or the rest of the chain) and may observe info both
// before and after the call. Returning without calling next suppresses the
// render.
type Middleware func(ctx context.Context, info *PassInfo, next func(context.Context) error) error
