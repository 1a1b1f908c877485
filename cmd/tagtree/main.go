package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const banner = `
  ┌┬┐┌─┐┌─┐┌┬┐┬─┐┌─┐┌─┐
   │ ├─┤│ ┬ │ ├┬┘├┤ ├┤
   ┴ ┴ ┴└─┘ ┴ ┴└─└─┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagtree",
		Short: "Build and publish HTML document trees from Go",
		Long: `Tagtree builds HTML documents as plain Go values.

Trees are assembled from element constructors or through builder
scopes, then rendered compact or indented. The command line ships
two demonstrations:

  • demo   render a showcase page to stdout or a file
  • site   render a small site into a directory via a YAML config`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		siteCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the tagtree ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
