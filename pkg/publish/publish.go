// Package publish writes rendered documents and static assets to output
// targets: a local directory tree or an S3 bucket.
package publish

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tagtree-dev/tagtree/pkg/document"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

// Target is a destination for published files.
// Implement this interface to publish to other storage backends.
type Target interface {
	// Put writes one file. The path is slash-separated and relative to the
	// target root.
	Put(ctx context.Context, path string, data []byte, contentType string) error
}

// Publisher renders queued documents and writes them, along with static
// assets, to a Target.
type Publisher struct {
	target   Target
	renderer *render.Renderer
	logger   *zap.Logger
	pages    []queuedPage
	assets   []queuedAsset
}

type queuedPage struct {
	path string
	doc  *document.Document
}

type queuedAsset struct {
	path        string
	data        []byte
	contentType string
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithRenderer sets the renderer used for pages.
// Default: compact rendering.
func WithRenderer(r *render.Renderer) PublisherOption {
	return func(p *Publisher) {
		p.renderer = r
	}
}

// WithLogger sets the logger.
// Default: no logging.
func WithLogger(logger *zap.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// NewPublisher creates a Publisher writing to target.
func NewPublisher(target Target, opts ...PublisherOption) *Publisher {
	p := &Publisher{target: target}
	for _, opt := range opts {
		opt(p)
	}
	if p.renderer == nil {
		p.renderer = render.NewRenderer(render.Config{})
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Page queues a document for publishing under path.
func (p *Publisher) Page(path string, doc *document.Document) *Publisher {
	p.pages = append(p.pages, queuedPage{path: path, doc: doc})
	return p
}

// Asset queues a raw file for publishing under path.
func (p *Publisher) Asset(path string, data []byte, contentType string) *Publisher {
	p.assets = append(p.assets, queuedAsset{path: path, data: data, contentType: contentType})
	return p
}

// Publish renders every queued page and writes pages and assets to the
// target in queue order. The first failure aborts the run.
func (p *Publisher) Publish(ctx context.Context) error {
	for _, pg := range p.pages {
		start := time.Now()

		markup, err := pg.doc.Render(p.renderer)
		if err != nil {
			return fmt.Errorf("render %s: %w", pg.path, err)
		}
		if err := p.target.Put(ctx, pg.path, []byte(markup), "text/html; charset=utf-8"); err != nil {
			return fmt.Errorf("publish %s: %w", pg.path, err)
		}

		p.logger.Info("published page",
			zap.String("path", pg.path),
			zap.Int("bytes", len(markup)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	for _, a := range p.assets {
		if err := p.target.Put(ctx, a.path, a.data, a.contentType); err != nil {
			return fmt.Errorf("publish %s: %w", a.path, err)
		}

		p.logger.Info("published asset",
			zap.String("path", a.path),
			zap.Int("bytes", len(a.data)),
		)
	}

	return nil
}
