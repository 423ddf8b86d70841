// Package lexer turns linc source text into a token stream. It never
// rewinds: every recognised lexeme is emitted once, in source order,
// terminated by an EOF token.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// Lexer is a single-pass scanner over one file's source text.
type Lexer struct {
	input        string
	file         string
	sink         *diag.Sink
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// New returns a Lexer over input, attributing every token to file and
// reporting lexical errors to sink.
func New(input, file string, sink *diag.Sink, opts ...Option) *Lexer {
	l := &Lexer{input: input, file: file, sink: sink, line: 1, column: 0}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

func (l *Lexer) pos() source.Position {
	return source.Position{File: l.file, Line: l.line, Column: l.column}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++

	if r == utf8.RuneError && size == 1 {
		l.sink.Errorf(diag.Lexer, source.NewSpan(l.pos(), l.pos()), "invalid UTF-8 encoding")
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) advanceLine() {
	l.line++
	l.column = 0
}

// Tokenize scans the entire input and returns every token, EOF included.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next scans and returns the next token.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	start := l.pos()

	switch {
	case l.ch == 0:
		return l.tok(token.EOF, "", start)
	case isDigit(l.ch):
		return l.scanNumber(start)
	case l.ch == '"':
		return l.scanString(start)
	case l.ch == '\'':
		return l.scanChar(start)
	case isIdentStart(l.ch):
		return l.scanWord(start)
	}

	if kind, ok := bracketKinds[l.ch]; ok {
		l.readChar()
		return l.tok(kind, string(bracketRune(kind)), start)
	}

	if kind, text := l.scanOperator(); kind != token.Invalid {
		return l.tok(kind, text, start)
	}

	ch := l.ch
	l.readChar()
	l.sink.Errorf(diag.Lexer, source.NewSpan(start, start), "unexpected character %q", ch)
	return l.tok(token.Invalid, string(ch), start)
}

func (l *Lexer) tok(kind token.Kind, value string, start source.Position) token.Token {
	return token.Token{Kind: kind, Value: value, HasVal: value != "", Span: source.NewSpan(start, l.pos())}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == '\n':
			l.readChar()
			l.advanceLine()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '#' && l.peekChar() == '#': // "##" line comment; bare '#' is the preprocessor specifier
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func isDigit(ch rune) bool      { return ch >= '0' && ch <= '9' }
func isHexDigit(ch rune) bool   { return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F') }
func isIdentStart(ch rune) bool { return ch == '_' || unicode.IsLetter(ch) }
func isIdentCont(ch rune) bool  { return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch) }

func (l *Lexer) scanWord(start source.Position) token.Token {
	var sb strings.Builder
	for isIdentCont(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	word := sb.String()
	kind := token.LookupIdent(word)
	tok := l.tok(kind, word, start)
	if kind != token.Identifier {
		tok.HasVal = false
	}
	return tok
}

// bracketKinds and bracketRune round-trip single-character bracket tokens.
var bracketKinds = map[rune]token.Kind{
	'(': token.ParenLeft, ')': token.ParenRight,
	'[': token.SquareLeft, ']': token.SquareRight,
	'{': token.BraceLeft, '}': token.BraceRight,
}

func bracketRune(kind token.Kind) rune {
	for r, k := range bracketKinds {
		if k == kind {
			return r
		}
	}
	return 0
}
