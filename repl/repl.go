/*
File    : salt/repl/repl.go
Package : repl

Package repl implements an interactive Read-Eval-Print Loop for Salt. It
reuses the teacher's readline-and-color combination for line editing and
colored feedback, wired against the new lexer/parser/eval pipeline instead
of GoMix's. Because Salt block statements ('if', 'loop', 'while', function
definitions) can span several lines, the REPL accumulates input until
every opened '{' has a matching '}' before handing the buffer to the
parser — a single physical line is evaluated as soon as it is
brace-balanced on its own.
*/
package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/crawfordb2026/salt/eval"
	"github.com/crawfordb2026/salt/objects"
	"github.com/crawfordb2026/salt/output"
	"github.com/crawfordb2026/salt/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner, version info, and the
// prompt string readline displays.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Salt!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter — blocks may span multiple lines")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.vars' to list declared variables")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits or EOF is
// reached. A single Evaluator persists for the whole session, so
// declarations and function definitions made on one line remain visible
// to every line entered afterward.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	sink := output.NewWriter(writer)
	evaluator := eval.New(sink)

	var pending strings.Builder
	depth := 0

	for {
		prompt := r.Prompt
		if depth > 0 {
			prompt = "... "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		trimmed := strings.TrimSpace(line)
		if depth == 0 && trimmed == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		if depth == 0 && trimmed == ".vars" {
			r.printVars(writer, evaluator)
			continue
		}
		if depth == 0 && trimmed == "" {
			continue
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if depth > 0 {
			continue
		}
		depth = 0

		r.execute(writer, pending.String(), evaluator)
		pending.Reset()
	}
}

// execute parses and runs one brace-balanced chunk of source, reporting
// any diagnostics.Error in red and letting evaluator state persist across
// calls.
func (r *Repl) execute(writer io.Writer, src string, evaluator *eval.Evaluator) {
	prog, err := parser.ParseSource(src)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if err := evaluator.Run(prog); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
	sink, ok := outputWriter(evaluator)
	if ok {
		sink.Flush()
	}
}

// printVars lists every variable currently declared in the session's
// global scope, sorted by name for stable output across runs.
func (r *Repl) printVars(writer io.Writer, evaluator *eval.Evaluator) {
	names := evaluator.Scope.Names()
	sort.Strings(names)
	if len(names) == 0 {
		yellowColor.Fprintln(writer, "(no variables declared)")
		return
	}
	for _, name := range names {
		cell, _ := evaluator.Scope.Lookup(name)
		if cell.Type == objects.ArrayType {
			yellowColor.Fprintf(writer, "%s: %s array of %s, size %d\n", name, cell.Type, cell.ElemType, cell.Size)
			continue
		}
		yellowColor.Fprintf(writer, "%s: %s = %s\n", name, cell.Type, cell.Value.String())
	}
}

// outputWriter recovers the concrete *output.Writer behind evaluator.Out,
// if any, so the REPL can flush buffered print output after every chunk.
func outputWriter(evaluator *eval.Evaluator) (*output.Writer, bool) {
	w, ok := evaluator.Out.(*output.Writer)
	return w, ok
}
