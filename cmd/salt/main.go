/*
File    : salt/cmd/salt/main.go

The salt binary's entry point. All command wiring lives in cmd/salt/cmd;
main only hands off to it and turns a returned error into a nonzero exit
code, per the driver's exit-code contract (0 on success, nonzero on any
tokenizer/parser/evaluator error).
*/
package main

import (
	"fmt"
	"os"

	"github.com/crawfordb2026/salt/cmd/salt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
