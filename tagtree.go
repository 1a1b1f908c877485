// Package tagtree builds HTML documents as trees of plain Go values.
//
// This is the recommended import for most programs:
//
//	import "github.com/tagtree-dev/tagtree"
//
// Usage:
//
//	page := tagtree.El("div", tagtree.Attr("class", "page"),
//	    tagtree.El("h1", "Hello"),
//	    tagtree.El("p", "Built from plain Go values."),
//	)
//	html, err := tagtree.Render(page)
//
// The subpackages stay importable on their own: pkg/dom holds the node
// model, builder, and attribute key table; pkg/render the renderer and its
// middleware seam; pkg/document the html/head/body wrapper; pkg/publish the
// output targets; pkg/instrument the Prometheus and OpenTelemetry render
// middleware.
package tagtree

import (
	"github.com/tagtree-dev/tagtree/pkg/document"
	"github.com/tagtree-dev/tagtree/pkg/dom"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

// =============================================================================
// Node model (re-export from pkg/dom)
// =============================================================================

// Node is one vertex of a markup tree.
type Node = dom.Node

// Attribute is one key/value pair on an element.
type Attribute = dom.Attribute

// Kind is the node type discriminator.
type Kind = dom.Kind

// Kind constants
const (
	KindElement  = dom.KindElement
	KindText     = dom.KindText
	KindRaw      = dom.KindRaw
	KindFragment = dom.KindFragment
	KindDeferred = dom.KindDeferred
	KindOpaque   = dom.KindOpaque
)

// =============================================================================
// Construction (re-export from pkg/dom)
// =============================================================================

// El constructs an element node; arguments become attributes and children.
var El = dom.El

// Text constructs a text node, escaped at render.
var Text = dom.Text

// Textf constructs a formatted text node.
var Textf = dom.Textf

// Raw constructs a node emitted verbatim, with no escaping.
var Raw = dom.Raw

// Deferred wraps a computation evaluated each time the tree renders.
var Deferred = dom.Deferred

// Fragment groups children without introducing an element.
var Fragment = dom.Fragment

// Attr builds one attribute for element constructors.
var Attr = dom.Attr

// =============================================================================
// Builder (re-export from pkg/dom)
// =============================================================================

// Builder carries the stack of currently open nodes, so nested content can
// attach itself without passing parents around.
type Builder = dom.Builder

// BuilderOption configures a Builder.
type BuilderOption = dom.BuilderOption

// NewBuilder returns a Builder with no open scope.
var NewBuilder = dom.NewBuilder

// WithKeyTable makes a builder translate attribute keys through a specific
// table.
var WithKeyTable = dom.WithKeyTable

// =============================================================================
// Attribute keys (re-export from pkg/dom)
// =============================================================================

// KeyTable translates caller-spelled attribute keys to emitted ones.
type KeyTable = dom.KeyTable

// NewKeyTable returns a table with only the built-in translation rules.
var NewKeyTable = dom.NewKeyTable

// RegisterAttributeMapping adds a translation to the process-wide table.
var RegisterAttributeMapping = dom.RegisterAttributeMapping

// ResetAttributeMappings restores the process-wide table to its built-ins.
var ResetAttributeMappings = dom.ResetAttributeMappings

// CleanKey translates one key through the process-wide table.
var CleanKey = dom.CleanKey

// =============================================================================
// Rendering (re-export from pkg/render)
// =============================================================================

// Renderer serializes trees to markup.
type Renderer = render.Renderer

// RenderConfig selects compact or indented output and the markup dialect.
type RenderConfig = render.Config

// Middleware wraps render passes for instrumentation.
type Middleware = render.Middleware

// PassInfo describes one render pass to middleware.
type PassInfo = render.PassInfo

// PassStats accumulates node and byte counts over a pass.
type PassStats = render.PassStats

// RenderError reports an unrenderable part of a tree and its path.
type RenderError = render.Error

// NewRenderer builds a Renderer from a config.
var NewRenderer = render.NewRenderer

// Render serializes a tree compactly.
var Render = render.Render

// RenderPretty serializes a tree with indentation.
var RenderPretty = render.RenderPretty

// =============================================================================
// Errors (re-export from pkg/dom)
// =============================================================================

// KeyError reports an attribute key the table cannot translate.
type KeyError = dom.KeyError

// StructuralError reports a tree mutation that would break an invariant.
type StructuralError = dom.StructuralError

// ScopeError reports builder use with no open scope.
type ScopeError = dom.ScopeError

// Capture runs fn and converts a construction panic into an error.
var Capture = dom.Capture

// =============================================================================
// Document (re-export from pkg/document)
// =============================================================================

// Document wraps a full html/head/body page.
type Document = document.Document

// DocumentOption configures a new Document.
type DocumentOption = document.Option

// NewDocument builds an empty page shell.
var NewDocument = document.New

// WithTitle sets the page title.
var WithTitle = document.WithTitle

// WithLang sets the document language attribute.
var WithLang = document.WithLang

// WithDoctype overrides the doctype line; empty omits it.
var WithDoctype = document.WithDoctype
