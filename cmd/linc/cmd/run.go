package cmd

import (
	"fmt"
	"os"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/fold"
	"github.com/fosspointer/go-linc/internal/interp"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/spf13/cobra"
)

var (
	traceExec bool
	dumpAST   bool
)

func init() {
	rootCmd.RunE = runScript
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.Flags().BoolVar(&traceExec, "trace", false, "log each stage's entry to stderr")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed program before binding")
}

// resolveRunInput splits positionals into the script source and the argv
// main receives: with -e, every positional becomes script argv; otherwise
// the first positional is the file to run and the rest are script argv.
func resolveRunInput(args []string) (text, file string, scriptArgs []string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", args, nil
	}
	if len(args) == 0 {
		return "", "", nil, fmt.Errorf("either provide a file path or use -e for inline code")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], args[1:], nil
}

// runScript is the program-evaluation CLI driver: lex, preprocess, parse,
// bind, optionally fold, then interpret, mapping the result onto the
// exit-code contract (0 success, 4 compilation failure, main's numeric
// return otherwise).
func runScript(_ *cobra.Command, args []string) error {
	text, file, scriptArgs, err := resolveRunInput(args)
	if err != nil {
		return err
	}

	exitCode := runPipeline(text, file, scriptArgs)
	os.Exit(exitCode)
	return nil
}

func runPipeline(text, file string, scriptArgs []string) int {
	sink := diag.NewSink()
	srcMap := source.NewMap()

	logStage("lexer")
	tokens := lexTokens(text, file, sink, srcMap)
	if emitIfFailed(sink, diag.Lexer, srcMap) {
		return 4
	}

	logStage("preprocessor")
	tokens = preprocessTokens(tokens, file, sink, srcMap)
	if emitIfFailed(sink, diag.Preprocessor, srcMap) {
		return 4
	}

	logStage("parser")
	prog := parseTokens(tokens, sink)
	if emitIfFailed(sink, diag.Parser, srcMap) {
		return 4
	}
	if dumpAST {
		fmt.Printf("%+v\n", prog)
	}

	logStage("binder")
	bound := bindProgram(prog, sink)
	if emitIfFailed(sink, diag.Binder, srcMap) {
		return 4
	}

	if optimize {
		logStage("fold")
		bound = fold.Fold(bound)
	}

	logStage("interpreter")
	interpreter := interp.New(bound, sink, interp.WithArgs(scriptArgs))
	exitCode, ok := interpreter.Run()
	emitReports(sink, srcMap)
	if !ok {
		return 4
	}
	return exitCode
}

// emitIfFailed prints every Report pushed so far and reports whether
// stage produced an Error, so the driver stops before the next stage.
func emitIfFailed(sink *diag.Sink, stage diag.Stage, srcMap *source.Map) bool {
	if !stopBeforeNext(sink, stage) {
		return false
	}
	emitReports(sink, srcMap)
	return true
}

func emitReports(sink *diag.Sink, srcMap *source.Map) {
	for _, r := range sink.Reports() {
		fmt.Fprintln(os.Stderr, diag.Render(r, srcMap, colorEnabled()))
	}
	if dumpFile != "" {
		writeDumpFile(sink)
	}
}

func writeDumpFile(sink *diag.Sink) {
	f, err := os.Create(dumpFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open %s for diagnostics dump: %v\n", dumpFile, err)
		return
	}
	defer f.Close()
	for _, r := range sink.Reports() {
		fmt.Fprintln(f, r.Line())
	}
}

func logStage(name string) {
	if traceExec {
		slogTrace(name)
	}
}
