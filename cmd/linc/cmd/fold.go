package cmd

import (
	"fmt"
	"os"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/fold"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/spf13/cobra"
)

var foldCmd = &cobra.Command{
	Use:   "fold [file]",
	Short: "Run the pipeline through the binder and dump the program after constant folding",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFold,
}

func init() {
	rootCmd.AddCommand(foldCmd)
}

func runFold(_ *cobra.Command, args []string) error {
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
	var folded any
	if !stopBeforeNext(sink, diag.Preprocessor) {
		prog := parseTokens(tokens, sink)
		if !stopBeforeNext(sink, diag.Parser) {
			bound := bindProgram(prog, sink)
			if !stopBeforeNext(sink, diag.Binder) {
				folded = fold.Fold(bound)
			}
		}
	}

	if folded != nil {
		fmt.Printf("%+v\n", folded)
	}

	emitReports(sink, srcMap)
	if sink.HasError() {
		os.Exit(4)
	}
	return nil
}
