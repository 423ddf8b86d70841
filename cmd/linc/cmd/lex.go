package cmd

import (
	"fmt"
	"os"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a linc file or expression and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	text, file, err := readSource(args)
	if err != nil {
		return err
	}

	sink := diag.NewSink()
	srcMap := source.NewMap()
	tokens := lexTokens(text, file, sink, srcMap)

	for _, tok := range tokens {
		printToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	emitReports(sink, srcMap)
	if stopBeforeNext(sink, diag.Lexer) {
		os.Exit(4)
	}
	return nil
}

func printToken(tok token.Token) {
	if tok.HasVal {
		fmt.Printf("[%-14s] %q @%d:%d\n", tok.Kind, tok.Value, tok.Span.LineStart, tok.Span.ColStart)
		return
	}
	fmt.Printf("[%-14s] @%d:%d\n", tok.Kind, tok.Span.LineStart, tok.Span.ColStart)
}
