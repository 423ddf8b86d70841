package interp

import (
	"bytes"
	"testing"

	"github.com/fosspointer/go-linc/internal/binder"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/lexer"
	"github.com/fosspointer/go-linc/internal/parser"
	"github.com/fosspointer/go-linc/internal/preprocessor"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/gkampitakis/go-snaps/snaps"
)

// runFixture runs the lexer, preprocessor, parser, binder and interpreter
// over src in pipeline order (no -D seeds, include paths or folding),
// returning main's exit code, captured stdout, and the sink (so a test can
// assert on diagnostics too). It works on inline source snippets instead
// of a testdata fixture tree; only TestFixtureStrings checks its output
// with a go-snaps snapshot.
func runFixture(t *testing.T, src string) (int, string, *diag.Sink) {
	t.Helper()

	sink := diag.NewSink()
	srcMap := source.NewMap()
	srcMap.AddFile("<fixture>", src)

	l := lexer.New(src, "<fixture>", sink)
	tokens := l.Tokenize()
	if len(sink.ErrorsInStage(diag.Lexer)) > 0 {
		t.Fatalf("lex errors: %+v", sink.Reports())
	}

	exp := preprocessor.New(sink, srcMap, preprocessor.NewFileLoader())
	tokens = exp.Expand(tokens, "<fixture>")
	if len(sink.ErrorsInStage(diag.Preprocessor)) > 0 {
		t.Fatalf("preprocessor errors: %+v", sink.Reports())
	}

	p := parser.New(tokens, sink)
	prog := p.ParseProgram()
	if len(sink.ErrorsInStage(diag.Parser)) > 0 {
		t.Fatalf("parse errors: %+v", sink.Reports())
	}

	b := binder.New(sink)
	bound := b.Bind(prog)
	if len(sink.ErrorsInStage(diag.Binder)) > 0 {
		t.Fatalf("bind errors: %+v", sink.Reports())
	}

	var out bytes.Buffer
	interp := New(bound, sink, WithStdout(&out))
	code, _ := interp.Run()
	return code, out.String(), sink
}

// TestFixtureArithmetic covers spec.md §8 scenario 1.
func TestFixtureArithmetic(t *testing.T) {
	code, _, _ := runFixture(t, `fn main(): i32 { return 2 + 3 * 4; }`)
	if code != 14 {
		t.Errorf("exit code = %d, want 14", code)
	}
}

// TestFixtureStrings covers spec.md §8 scenario 2.
func TestFixtureStrings(t *testing.T) {
	code, out, _ := runFixture(t, `fn main(): i32 { puts("ab" + 'c'); return 0; }`)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	snaps.MatchSnapshot(t, "strings_output", out)
}

// TestFixtureArrayIteration covers spec.md §8 scenario 3.
func TestFixtureArrayIteration(t *testing.T) {
	code, _, _ := runFixture(t, `fn main(): i32 { i: mut i32 = 0; for x in [1,2,3] { i += x; } return i; }`)
	if code != 6 {
		t.Errorf("exit code = %d, want 6", code)
	}
}

// TestFixtureLabelledBreak covers spec.md §8 scenario 4.
func TestFixtureLabelledBreak(t *testing.T) {
	code, _, _ := runFixture(t, `fn main(): i32 { ~outer while true { ~inner while true { break outer; } } return 7; }`)
	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

// TestFixtureEnumerationMatch covers spec.md §8 scenario 5.
func TestFixtureEnumerationMatch(t *testing.T) {
	code, _, _ := runFixture(t, `enum E { A(i32), B(i32) } fn main(): i32 { e := E::A(5); return match e { E::A(n) -> n, E::B(n) -> -n }; }`)
	if code != 5 {
		t.Errorf("exit code = %d, want 5", code)
	}
}

// TestFixtureDivisionByZero covers the "boundary behaviours" table: one
// Error report, an Invalid result, no crash.
func TestFixtureDivisionByZero(t *testing.T) {
	_, _, sink := runFixtureAllowErrors(t, `fn main(): i32 { a: i32 = 1; b: i32 = 0; return a / b; }`)
	if !sink.HasError() {
		t.Errorf("expected a division-by-zero error to be reported")
	}
}

// runFixtureAllowErrors is runFixture without the fatal-on-stage-error
// checks, for boundary-behaviour tests that expect a diagnostic.
func runFixtureAllowErrors(t *testing.T, src string) (int, string, *diag.Sink) {
	t.Helper()

	sink := diag.NewSink()
	srcMap := source.NewMap()
	srcMap.AddFile("<fixture>", src)

	l := lexer.New(src, "<fixture>", sink)
	tokens := l.Tokenize()

	exp := preprocessor.New(sink, srcMap, preprocessor.NewFileLoader())
	tokens = exp.Expand(tokens, "<fixture>")

	p := parser.New(tokens, sink)
	prog := p.ParseProgram()

	b := binder.New(sink)
	bound := b.Bind(prog)

	var out bytes.Buffer
	interp := New(bound, sink, WithStdout(&out))
	code, _ := interp.Run()
	return code, out.String(), sink
}
