// SPDX-License-Identifier: Unlicense OR MIT

// Command scalekit scales UI sizes designed for a reference device to
// another screen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/indextrown/ScaleKit/internal/cli"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "scalekit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
	}

	root.SetArgs(args)
	return root.Execute()
}
