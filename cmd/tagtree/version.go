package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			v := tagtree.Version()
			if short {
				fmt.Println(v.Core())
				return
			}

			printBanner()
			fmt.Println()
			fmt.Printf("  Version:    %s\n", v.String())
			fmt.Printf("  Go version: %s\n", runtime.Version())
			fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Println()
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")

	return cmd
}
