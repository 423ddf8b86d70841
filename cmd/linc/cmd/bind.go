package cmd

import (
	"fmt"
	"os"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/spf13/cobra"
)

var bindCmd = &cobra.Command{
	Use:   "bind [file]",
	Short: "Run the pipeline through the binder and dump the bound program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBind,
}

func init() {
	rootCmd.AddCommand(bindCmd)
}

func runBind(_ *cobra.Command, args []string) error {
	text, file, err := readSource(args)
	if err != nil {
		return err
	}

	sink := diag.NewSink()
	srcMap := source.NewMap()

	tokens := lexTokens(text, file, sink, srcMap)
	if !stopBeforeNext(sink, diag.Lexer) {
		tokens = preprocessTokens(tokens, file, sink, srcMap)
	}
	var bound any
	if !stopBeforeNext(sink, diag.Preprocessor) {
		prog := parseTokens(tokens, sink)
		if !stopBeforeNext(sink, diag.Parser) {
			bound = bindProgram(prog, sink)
		}
	}

	if bound != nil {
		fmt.Printf("%+v\n", bound)
	}

	emitReports(sink, srcMap)
	if sink.HasError() {
		os.Exit(4)
	}
	return nil
}
