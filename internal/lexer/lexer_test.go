package lexer

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/token"
)

func kinds(t *testing.T, toks []token.Token) []token.Kind {
	t.Helper()
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerArithmeticExpression(t *testing.T) {
	sink := diag.NewSink()
	l := New("2 + 3 * 4", "test.linc", sink)
	toks := l.Tokenize()

	want := []token.Kind{token.I32Literal, token.Plus, token.I32Literal, token.Star, token.I32Literal, token.EOF}
	got := kinds(t, toks)
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if sink.HasError() {
		t.Fatalf("unexpected errors: %v", sink.Reports())
	}
}

func TestLexerSuffixedLiterals(t *testing.T) {
	sink := diag.NewSink()
	l := New("42u8 1.5f32 7i64", "test.linc", sink)
	toks := l.Tokenize()

	if toks[0].Kind != token.U8Literal || toks[0].Value != "42" {
		t.Errorf("got %v %q, want U8Literal 42", toks[0].Kind, toks[0].Value)
	}
	if toks[1].Kind != token.F32Literal {
		t.Errorf("got %v, want F32Literal", toks[1].Kind)
	}
	if toks[2].Kind != token.I64Literal {
		t.Errorf("got %v, want I64Literal", toks[2].Kind)
	}
}

func TestLexerBasedLiterals(t *testing.T) {
	sink := diag.NewSink()
	l := New("0xFF 0b1010", "test.linc", sink)
	toks := l.Tokenize()

	if toks[0].Base != token.Hex || toks[0].Value != "FF" {
		t.Errorf("got base %v value %q, want hex FF", toks[0].Base, toks[0].Value)
	}
	if toks[1].Base != token.Binary || toks[1].Value != "1010" {
		t.Errorf("got base %v value %q, want binary 1010", toks[1].Base, toks[1].Value)
	}
}

func TestLexerStringAndCharLiterals(t *testing.T) {
	sink := diag.NewSink()
	l := New(`"ab" 'c' "a\"b"`, "test.linc", sink)
	toks := l.Tokenize()

	if toks[0].Value != "ab" {
		t.Errorf("got %q, want ab", toks[0].Value)
	}
	if toks[1].Value != "c" {
		t.Errorf("got %q, want c", toks[1].Value)
	}
	if toks[2].Value != `a"b` {
		t.Errorf("got %q, want a\"b", toks[2].Value)
	}
}

func TestLexerUnterminatedStringReportsError(t *testing.T) {
	sink := diag.NewSink()
	l := New("\"unterminated\n", "test.linc", sink)
	l.Tokenize()

	if !sink.HasError() {
		t.Errorf("expected an error for an unterminated string literal")
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	sink := diag.NewSink()
	l := New("fn main struct enum mut", "test.linc", sink)
	toks := l.Tokenize()

	want := []token.Kind{token.KeywordFn, token.Identifier, token.KeywordStruct, token.KeywordEnum, token.KeywordMut, token.EOF}
	got := kinds(t, toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerMultiCharOperatorsGreedyMatch(t *testing.T) {
	sink := diag.NewSink()
	l := New("a..b i:=0 x::Y a->b", "test.linc", sink)
	toks := l.Tokenize()

	want := []token.Kind{
		token.Identifier, token.RangeSpecifier, token.Identifier,
		token.Identifier, token.ColonEquals, token.I32Literal,
		token.Identifier, token.DoubleColon, token.Identifier,
		token.Identifier, token.Arrow, token.Identifier,
		token.EOF,
	}
	got := kinds(t, toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerInvalidCharacterEmitsSingleInvalidToken(t *testing.T) {
	sink := diag.NewSink()
	l := New("a ? b", "test.linc", sink)
	toks := l.Tokenize()

	if toks[1].Kind != token.Invalid {
		t.Errorf("got %v, want Invalid for '?'", toks[1].Kind)
	}
	if !sink.HasError() {
		t.Errorf("expected an error report for the invalid character")
	}
}
