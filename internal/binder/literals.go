package binder

import (
	"strconv"
	"strings"

	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
)

// literalPrimitive maps a literal token kind to its primitive type:
// literal value types are derived directly from the token kind.
var literalPrimitive = map[token.Kind]types.Primitive{
	token.I8Literal: types.I8, token.I16Literal: types.I16, token.I32Literal: types.I32, token.I64Literal: types.I64,
	token.U8Literal: types.U8, token.U16Literal: types.U16, token.U32Literal: types.U32, token.U64Literal: types.U64,
	token.F32Literal: types.F32, token.F64Literal: types.F64,
	token.CharLiteral: types.Char, token.StringLiteral: types.String,
	token.TrueLiteral: types.Bool, token.FalseLiteral: types.Bool,
}

func literalBase(base token.Base) int {
	switch base {
	case token.Hex:
		return 16
	case token.Binary:
		return 2
	default:
		return 10
	}
}

// bindLiteral resolves a LiteralExpression's type from its token kind and
// records the token's text and base. The numeric text is parsed later, by
// LiteralUintValue/LiteralIntValue, which wrap overflow silently at the
// declared width — a documented, testable behaviour rather than a
// reported error (see DESIGN.md for the rationale).
func (b *Binder) bindLiteral(lit *ast.LiteralExpression) boundtree.Expression {
	prim, ok := literalPrimitive[lit.Token.Kind]
	if !ok {
		b.errorf(lit.SourceSpan, "invalid literal token %s", lit.Token.Kind)
		return &boundtree.LiteralExpression{Ty: b.invalidType(), SourceSpan: lit.SourceSpan}
	}

	ty := types.NewPrimitive(prim)
	return &boundtree.LiteralExpression{
		TokenKind: lit.Token.Kind, Text: lit.Token.Value, Base: lit.Token.Base, Ty: ty, SourceSpan: lit.SourceSpan,
	}
}

// LiteralUintValue parses a wrapped unsigned integer literal at its
// declared width; it never errors. It backs the interpreter's literal
// evaluation and the constant folder (directly or through
// LiteralIntValue).
func LiteralUintValue(text string, base token.Base, prim types.Primitive) uint64 {
	u, err := strconv.ParseUint(text, literalBase(base), 64)
	if err != nil {
		// ParseUint's own range error still yields the low 64 bits via a
		// manual fallback parse; absent that, 0 is the wrapped value.
		u = parseUintWrapping(text, literalBase(base))
	}
	width := prim.BitWidth()
	if width == 0 || width >= 64 {
		return u
	}
	return u & ((uint64(1) << uint(width)) - 1)
}

func parseUintWrapping(text string, base int) uint64 {
	var u uint64
	for _, ch := range strings.ToLower(text) {
		var digit uint64
		switch {
		case ch >= '0' && ch <= '9':
			digit = uint64(ch - '0')
		case ch >= 'a' && ch <= 'z':
			digit = uint64(ch-'a') + 10
		default:
			continue
		}
		u = u*uint64(base) + digit
	}
	return u
}

// LiteralIntValue parses a wrapped signed integer literal.
func LiteralIntValue(text string, base token.Base, prim types.Primitive) int64 {
	u := LiteralUintValue(text, base, types.U64)
	width := prim.BitWidth()
	if width == 0 || width >= 64 {
		return int64(u)
	}
	mask := uint64(1)<<uint(width) - 1
	u &= mask
	signBit := uint64(1) << uint(width-1)
	if u&signBit != 0 {
		u |= ^mask
	}
	return int64(u)
}

// LiteralFloatValue parses a literal's float64 text.
func LiteralFloatValue(text string) float64 {
	f, _ := strconv.ParseFloat(text, 64)
	return f
}
