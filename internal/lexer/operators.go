package lexer

import "github.com/fosspointer/go-linc/internal/token"

// operatorRunes is the full symbolic-operator alphabet scanned by greedy
// longest match: ! @ # $ % ^ & * - = + ~ ` | < > : / . , ;
var operatorRunes = map[rune]bool{
	'!': true, '@': true, '#': true, '$': true, '%': true, '^': true, '&': true,
	'*': true, '-': true, '=': true, '+': true, '~': true, '`': true, '|': true,
	'<': true, '>': true, ':': true, '/': true, '.': true, ',': true, ';': true,
}

// multiCharOperators lists every two-character operator spelling; the
// scan tries it before the single-character table so it never stops
// short.
var multiCharOperators = []struct {
	text string
	kind token.Kind
}{
	{"..", token.RangeSpecifier},
	{"::", token.DoubleColon},
	{":=", token.ColonEquals},
	{"->", token.Arrow},
	{"++", token.Increment},
	{"--", token.Decrement},
	{"+=", token.AddAssign},
	{"-=", token.SubAssign},
	{"*=", token.MulAssign},
	{"/=", token.DivAssign},
	{"%=", token.ModAssign},
	{"==", token.Equals},
	{"!=", token.NotEquals},
	{">=", token.GreaterEqual},
	{"<=", token.LessEqual},
	{"&&", token.LogicalAnd},
	{"||", token.LogicalOr},
	{"<<", token.ShiftLeft},
	{">>", token.ShiftRight},
}

var singleCharOperators = map[rune]token.Kind{
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash, '%': token.Percent,
	'=': token.Assign, '<': token.Less, '>': token.Greater,
	'&': token.BitwiseAnd, '|': token.BitwiseOr, '^': token.BitwiseXor, '~': token.BitwiseNot,
	'!': token.LogicalNot, '@': token.Stringify, ':': token.Colon,
	'.': token.Dot, ',': token.Comma, ';': token.Terminator,
	'#': token.PreprocSpecifier, '$': token.GlueSpecifier,
}

// scanOperator performs a greedy longest-match scan: every multi-character
// spelling is tried before falling back to the single-character table.
func (l *Lexer) scanOperator() (token.Kind, string) {
	if !operatorRunes[l.ch] {
		return token.Invalid, ""
	}

	two := string(l.ch) + string(l.peekChar())
	for _, op := range multiCharOperators {
		if op.text == two {
			l.readChar()
			l.readChar()
			return op.kind, two
		}
	}

	if kind, ok := singleCharOperators[l.ch]; ok {
		text := string(l.ch)
		l.readChar()
		return kind, text
	}

	return token.Invalid, ""
}
