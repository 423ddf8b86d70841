package lexer

import (
	"strings"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// escapeRune maps a recognised backslash escape to its rune, backing
// escape-aware character and string literals.
var escapeRune = map[rune]rune{
	'n': '\n', 't': '\t', 'r': '\r', '\\': '\\', '\'': '\'', '"': '"', '0': 0,
}

func (l *Lexer) readEscape() (rune, bool) {
	l.readChar() // consume '\'
	r, ok := escapeRune[l.ch]
	if !ok {
		l.sink.Errorf(diag.Lexer, source.NewSpan(l.pos(), l.pos()), "unknown escape sequence '\\%c'", l.ch)
		r = l.ch
	}
	l.readChar()
	return r, ok
}

func (l *Lexer) scanString(start source.Position) token.Token {
	l.readChar() // consume opening quote
	var sb strings.Builder
	terminated := false

	for {
		if l.ch == 0 || l.ch == '\n' {
			break
		}
		if l.ch == '"' {
			l.readChar()
			terminated = true
			break
		}
		if l.ch == '\\' {
			r, _ := l.readEscape()
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}

	if !terminated {
		l.sink.Errorf(diag.Lexer, source.NewSpan(start, l.pos()), "unterminated string literal")
		return token.Token{Kind: token.Invalid, Value: sb.String(), Span: source.NewSpan(start, l.pos())}
	}

	return l.tok(token.StringLiteral, sb.String(), start)
}

func (l *Lexer) scanChar(start source.Position) token.Token {
	l.readChar() // consume opening quote

	var r rune
	if l.ch == '\\' {
		r, _ = l.readEscape()
	} else if l.ch == 0 || l.ch == '\n' {
		l.sink.Errorf(diag.Lexer, source.NewSpan(start, l.pos()), "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: source.NewSpan(start, l.pos())}
	} else {
		r = l.ch
		l.readChar()
	}

	if l.ch != '\'' {
		l.sink.Errorf(diag.Lexer, source.NewSpan(start, l.pos()), "character literal must contain exactly one character")
		for l.ch != '\'' && l.ch != 0 && l.ch != '\n' {
			l.readChar()
		}
	}
	if l.ch == '\'' {
		l.readChar()
	}

	return l.tok(token.CharLiteral, string(r), start)
}
