// Command linc drives the five-stage linc pipeline (lexer, preprocessor,
// parser, binder, interpreter) plus its optional constant-folding pass.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fosspointer/go-linc/cmd/linc/cmd"
)

func main() {
	os.Exit(guardedExecute())
}

// guardedExecute maps an unexpected panic escaping the pipeline onto a
// small set of internal-error exit codes: these never fire in normal
// operation (every expected failure is a diag.Report) — they're the last
// line of defence against a genuine internal bug, classified the way
// Go's own panic/recover taxonomy separates a runtime fault from an
// arbitrary recovered value.
func guardedExecute() (code int) {
	defer func() {
		if r := recover(); r != nil {
			switch err := r.(type) {
			case runtime.Error:
				fmt.Fprintf(os.Stderr, "internal error: %v\n", err)
				code = 1
			case error:
				fmt.Fprintf(os.Stderr, "internal error: %v\n", err)
				code = 2
			default:
				fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
				code = 3
			}
		}
	}()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
