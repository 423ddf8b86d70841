package lexer

import (
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// suffixKinds classifies a literal's trailing alphabetic suffix into its
// token kind: a suffixed literal carries its base tag from lex time
// onward, classified from this fixed suffix→kind map.
var suffixKinds = map[string]token.Kind{
	"i8": token.I8Literal, "i16": token.I16Literal, "i32": token.I32Literal, "i64": token.I64Literal,
	"u8": token.U8Literal, "u16": token.U16Literal, "u32": token.U32Literal, "u64": token.U64Literal,
	"f32": token.F32Literal, "f64": token.F64Literal,
}

func isBaseDigit(ch rune, base token.Base) bool {
	switch base {
	case token.Hex:
		return isHexDigit(ch)
	case token.Binary:
		return ch == '0' || ch == '1'
	default:
		return isDigit(ch)
	}
}

func (l *Lexer) scanNumber(start source.Position) token.Token {
	base := token.Decimal
	var digits []rune

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		base = token.Hex
		l.readChar()
		l.readChar()
	} else if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		base = token.Binary
		l.readChar()
		l.readChar()
	}

	for isBaseDigit(l.ch, base) {
		digits = append(digits, l.ch)
		l.readChar()
	}

	floating := false
	if base == token.Decimal && l.ch == '.' && isDigit(l.peekChar()) {
		floating = true
		digits = append(digits, l.ch)
		l.readChar()
		for isDigit(l.ch) {
			digits = append(digits, l.ch)
			l.readChar()
		}
	}

	var suffix []rune
	for isIdentCont(l.ch) {
		suffix = append(suffix, l.ch)
		l.readChar()
	}

	kind := token.I32Literal
	if floating {
		kind = token.F32Literal
	}
	if len(suffix) > 0 {
		if k, ok := suffixKinds[string(suffix)]; ok {
			kind = k
		} else {
			l.sink.Errorf(diag.Lexer, source.NewSpan(start, l.pos()), "unknown numeric literal suffix %q", string(suffix))
		}
	}

	tok := l.tok(kind, string(digits), start)
	tok.Base = base
	return tok
}
