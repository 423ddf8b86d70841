package cmd

import (
	"fmt"
	"os"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Run the lexer, preprocessor and parser, and dump the resulting program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
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

	var prog any
	if !stopBeforeNext(sink, diag.Preprocessor) {
		prog = parseTokens(tokens, sink)
	}

	if prog != nil {
		fmt.Printf("%+v\n", prog)
	}

	emitReports(sink, srcMap)
	if sink.HasError() {
		os.Exit(4)
	}
	return nil
}
