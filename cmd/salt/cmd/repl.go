package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crawfordb2026/salt/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Salt session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(_ *cobra.Command, _ []string) error {
	session := repl.New(banner, Version, "the Salt project", line, "MIT", "salt >>> ")
	session.Start(os.Stdout)
	return nil
}

const line = "----------------------------------------"

const banner = `
   _____       _ _
  / ____|     | | |
 | (___   __ _| | |_
  \___ \ / _  | | __|
  ____) | (_| | | |_
 |_____/ \__,_|_|\__|
`
