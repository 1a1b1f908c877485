package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tagtree-dev/tagtree/internal/fixture"
	"github.com/tagtree-dev/tagtree/pkg/document"
	"github.com/tagtree-dev/tagtree/pkg/dom"
	"github.com/tagtree-dev/tagtree/pkg/publish"
)

const siteCSS = `body { font-family: sans-serif; margin: 2rem auto; max-width: 40rem; }
h1 { border-bottom: 1px solid #ccc; }
`

func siteCmd() *cobra.Command {
	var (
		configPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "site",
		Short: "Render the demo site into a directory",
		Long: `Render a small demo site into a directory.

Rendering options and the output directory come from a YAML config
file; flags override it.

Examples:
  tagtree site
  tagtree site --config tagtree.yaml
  tagtree site --out public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSite(cmd.Context(), configPath, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (default from config)")

	return cmd
}

func runSite(ctx context.Context, configPath, output string) error {
	cfg := publish.DefaultConfig()
	if configPath != "" {
		loaded, err := publish.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if output != "" {
		cfg.OutputDir = output
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	target, err := publish.NewDirTarget(cfg.OutputDir)
	if err != nil {
		return err
	}

	index := fixture.DemoDocument()
	if cfg.Title != "" {
		index.SetTitle(cfg.Title)
	}
	if cfg.Lang != "" {
		index.Root().Set("lang", cfg.Lang)
	}

	pub := publish.NewPublisher(target,
		publish.WithRenderer(cfg.Renderer()),
		publish.WithLogger(logger),
	)
	pub.Page("index.html", index)
	pub.Page("about.html", aboutPage(cfg))
	pub.Asset("static/site.css", []byte(siteCSS), "text/css")

	info("Publishing to %s...", cfg.OutputDir)
	if err := pub.Publish(ctx); err != nil {
		return err
	}
	success("Site written to %s", cfg.OutputDir)
	return nil
}

func aboutPage(cfg publish.Config) *document.Document {
	title := cfg.Title
	if title == "" {
		title = "About tagtree"
	}

	opts := []document.Option{document.WithTitle(title)}
	if cfg.Lang != "" {
		opts = append(opts, document.WithLang(cfg.Lang))
	}
	doc := document.New(opts...)
	doc.Stylesheet("/static/site.css")

	b := dom.NewBuilder()
	b.With(doc.Body(), func() {
		b.H1("About")
		b.P("This site was rendered by the tagtree command line.")
		b.With(b.Ul(), func() {
			b.Li(dom.A(dom.Attr("href", "/"), "Home"))
			b.Li(dom.A(dom.Attr("href", "https://github.com/tagtree-dev/tagtree"), "Source"))
		})
	})
	return doc
}
