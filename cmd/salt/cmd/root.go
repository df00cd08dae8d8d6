package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the interpreter's version string, set at build time via
	// -ldflags for release builds and left at this default otherwise.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "salt",
	Short: "Salt language interpreter",
	Long: `salt is a tree-walking interpreter for the Salt scripting language —
an imperative language with English-word keywords (make, print, loop,
give) in place of most punctuation.

Run a script file with "salt run <file>", or invoke salt with no
arguments to start an interactive session.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd, args)
	},
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("salt version %s\n", Version))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted but has no effect; errors are reported the same way without it")
}
