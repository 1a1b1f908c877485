package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/fixture"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

func demoCmd() *cobra.Command {
	var (
		pretty bool
		indent int
		xhtml  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the showcase page",
		Long: `Render a built-in showcase page exercising builder scopes,
attribute translation, deferred content, and tables.

Examples:
  tagtree demo
  tagtree demo --pretty
  tagtree demo --pretty --out demo.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(pretty, indent, xhtml, output)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().IntVar(&indent, "indent", 2, "Spaces per nesting level with --pretty")
	cmd.Flags().BoolVar(&xhtml, "xhtml", false, "Self-closing void element syntax")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runDemo(pretty bool, indent int, xhtml bool, output string) error {
	renderer := render.NewRenderer(render.Config{
		Pretty:      pretty,
		IndentWidth: indent,
		XHTML:       xhtml,
	})

	markup, err := fixture.DemoDocument().Render(renderer)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Print(markup)
		if !strings.HasSuffix(markup, "\n") {
			fmt.Println()
		}
		return nil
	}

	if err := os.WriteFile(output, []byte(markup), 0644); err != nil {
		return err
	}
	success("Wrote %s (%d bytes)", output, len(markup))
	return nil
}
