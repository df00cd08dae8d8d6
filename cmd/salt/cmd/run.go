package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/eval"
	"github.com/crawfordb2026/salt/lexer"
	"github.com/crawfordb2026/salt/output"
	"github.com/crawfordb2026/salt/parser"
)

var (
	dumpTokens bool
	dumpAST    bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Salt source file",
	Long: `Execute a Salt program read from a file.

Examples:
  salt run program.salt
  salt run --dump-tokens program.salt
  salt run --dump-ast program.salt`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream before running")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running")
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	src := string(content)

	if dumpTokens {
		tokens, _ := lexer.Tokenize(src)
		fmt.Println("Tokens:", tokens)
	}

	prog, err := parser.ParseSource(src)
	if err != nil {
		return err
	}

	if dumpAST {
		fmt.Print(ast.Dump(prog))
	}

	sink := output.NewWriter(os.Stdout)
	evaluator := eval.New(sink)
	runErr := evaluator.Run(prog)
	sink.Flush()
	return runErr
}
