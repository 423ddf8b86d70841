package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/binder"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/lexer"
	"github.com/fosspointer/go-linc/internal/parser"
	"github.com/fosspointer/go-linc/internal/preprocessor"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// readSource reads either the -e expression or the single positional file
// argument.
func readSource(args []string) (text, file string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], nil
}

// lexTokens runs the lexer stage and registers file in srcMap.
func lexTokens(text, file string, sink *diag.Sink, srcMap *source.Map) []token.Token {
	srcMap.AddFile(file, text)
	l := lexer.New(text, file, sink)
	return l.Tokenize()
}

// preprocessTokens runs the preprocessor stage, seeding -D defines before
// expansion so they're visible to every file.
func preprocessTokens(tokens []token.Token, file string, sink *diag.Sink, srcMap *source.Map) []token.Token {
	exp := preprocessor.New(sink, srcMap, preprocessor.NewFileLoader(), includeDirs...)
	for _, d := range defines {
		name, value, _ := strings.Cut(d, "=")
		exp.Seed(name, value)
	}
	return exp.Expand(tokens, file)
}

func parseTokens(tokens []token.Token, sink *diag.Sink) *ast.Program {
	p := parser.New(tokens, sink)
	return p.ParseProgram()
}

func bindProgram(prog *ast.Program, sink *diag.Sink) *boundtree.Program {
	b := binder.New(sink)
	return b.Bind(prog)
}

// stopBeforeNext reports whether stage produced an Error: the driver
// stops before the next stage when the sink contains any Error from the
// current stage, never mid-stage.
func stopBeforeNext(sink *diag.Sink, stage diag.Stage) bool {
	return len(sink.ErrorsInStage(stage)) > 0
}
