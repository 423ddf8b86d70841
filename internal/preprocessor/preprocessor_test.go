package preprocessor

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/lexer"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// memLoader is an in-memory Loader for tests, avoiding any real filesystem
// access for #include resolution.
type memLoader struct {
	files map[string]string
}

func (l *memLoader) Load(path string) (string, bool) {
	text, ok := l.files[path]
	return text, ok
}

func (l *memLoader) exists(path string) bool {
	_, ok := l.files[path]
	return ok
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		if t.Kind != token.EOF {
			out = append(out, t.Kind)
		}
	}
	return out
}

func tokenize(t *testing.T, text, file string, sink *diag.Sink) []token.Token {
	t.Helper()
	return lexer.New(text, file, sink).Tokenize()
}

func TestExpandObjectLikeDefine(t *testing.T) {
	sink := diag.NewSink()
	srcMap := source.NewMap()
	text := `#define MAX 100# fn f(): i32 { return MAX; }`
	toks := tokenize(t, text, "<test>", sink)

	exp := New(sink, srcMap, &memLoader{})
	out := exp.Expand(toks, "<test>")
	if sink.HasError() {
		t.Fatalf("unexpected errors: %+v", sink.Reports())
	}

	foundNumber := false
	for _, tok := range out {
		if tok.Kind == token.I32Literal && tok.Value == "100" {
			foundNumber = true
		}
	}
	if !foundNumber {
		t.Errorf("expected MAX to expand to literal 100 in output, got %+v", out)
	}
}

func TestExpandParameterisedMacro(t *testing.T) {
	sink := diag.NewSink()
	srcMap := source.NewMap()
	text := `#macro double(x) x + x# fn f(): i32 { return double(21); }`
	toks := tokenize(t, text, "<test>", sink)

	exp := New(sink, srcMap, &memLoader{})
	out := exp.Expand(toks, "<test>")
	if sink.HasError() {
		t.Fatalf("unexpected errors: %+v", sink.Reports())
	}

	count := 0
	for _, tok := range out {
		if tok.Kind == token.I32Literal && tok.Value == "21" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected macro body substituted twice (21 + 21), found %d occurrences", count)
	}
}

func TestSeedImplementsDefineFlag(t *testing.T) {
	sink := diag.NewSink()
	srcMap := source.NewMap()
	text := `fn f(): i32 { return VERSION; }`
	toks := tokenize(t, text, "<test>", sink)

	exp := New(sink, srcMap, &memLoader{})
	exp.Seed("VERSION", "7")
	out := exp.Expand(toks, "<test>")
	if sink.HasError() {
		t.Fatalf("unexpected errors: %+v", sink.Reports())
	}

	found := false
	for _, tok := range out {
		if tok.Kind == token.I32Literal && tok.Value == "7" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected -D-seeded VERSION to expand to 7, got %+v", out)
	}
}

func TestIncludeGuardPreventsDoubleSplice(t *testing.T) {
	sink := diag.NewSink()
	srcMap := source.NewMap()
	loader := &memLoader{files: map[string]string{
		"/root/a.linc": "#guard\nconst X: i32 = 1;",
	}}
	text := `#include "/root/a.linc"
#include "/root/a.linc"
fn f(): i32 { return X; }`
	toks := tokenize(t, text, "<test>", sink)

	exp := New(sink, srcMap, loader)
	out := exp.Expand(toks, "<test>")
	if sink.HasError() {
		t.Fatalf("unexpected errors: %+v", sink.Reports())
	}

	count := 0
	for _, tok := range out {
		if tok.Kind == token.Identifier && tok.Value == "X" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected X to appear twice (one decl, one use) despite the include appearing twice, got %d: %+v", count, out)
	}
}

func TestIncludeMissingTargetWarns(t *testing.T) {
	sink := diag.NewSink()
	srcMap := source.NewMap()
	text := `#include "missing.linc"`
	toks := tokenize(t, text, "<test>", sink)

	exp := New(sink, srcMap, &memLoader{})
	exp.Expand(toks, "<test>")
	if !sink.HasWarning() {
		t.Errorf("expected a warning for a missing include target")
	}
	if sink.HasError() {
		t.Errorf("a missing include target should warn, not error: %+v", sink.Reports())
	}
}

func TestGlueConcatenatesIdentifiers(t *testing.T) {
	sink := diag.NewSink()
	srcMap := source.NewMap()
	text := "foo$bar"
	toks := tokenize(t, text, "<test>", sink)

	exp := New(sink, srcMap, &memLoader{})
	out := exp.Expand(toks, "<test>")
	if sink.HasError() {
		t.Fatalf("unexpected errors: %+v", sink.Reports())
	}

	if len(out) < 1 || out[0].Kind != token.Identifier || out[0].Value != "foobar" {
		t.Errorf("expected foo$bar to glue into a single 'foobar' identifier, got %+v", out)
	}
}
