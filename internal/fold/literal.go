package fold

import (
	"strconv"

	"github.com/fosspointer/go-linc/internal/binder"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
	"github.com/fosspointer/go-linc/internal/value"
)

func parseLiteralInt(text string, base token.Base, prim types.Primitive) int64 {
	return binder.LiteralIntValue(text, base, prim)
}

func parseLiteralUint(text string, base token.Base, prim types.Primitive) uint64 {
	return binder.LiteralUintValue(text, base, prim)
}

// literalFromValue builds a LiteralExpression whose Text/Base would
// re-parse (via package binder's LiteralIntValue/LiteralUintValue/
// LiteralFloatValue, which the interpreter also calls) back to v exactly.
// Signed values are rendered as their unsigned bit pattern at full 64-bit
// width: LiteralIntValue's own mask-then-sign-extend step recovers the
// correct narrower-width negative value from that, so this round-trips
// regardless of v's declared width — see DESIGN.md.
func literalFromValue(v value.Value, span source.Span) (*boundtree.LiteralExpression, bool) {
	switch v.Tag {
	case value.Bool:
		kind := token.FalseLiteral
		if v.Bool_ {
			kind = token.TrueLiteral
		}
		return &boundtree.LiteralExpression{TokenKind: kind, Text: strconv.FormatBool(v.Bool_), Ty: types.NewPrimitive(types.Bool), SourceSpan: span}, true

	case value.Char:
		return &boundtree.LiteralExpression{TokenKind: token.CharLiteral, Text: string(v.Ch), Ty: types.NewPrimitive(types.Char), SourceSpan: span}, true

	case value.String:
		return &boundtree.LiteralExpression{TokenKind: token.StringLiteral, Text: v.Str, Ty: types.NewPrimitive(types.String), SourceSpan: span}, true

	case value.Unsigned:
		kind, ok := unsignedLiteralKind[v.Prim]
		if !ok {
			return nil, false
		}
		return &boundtree.LiteralExpression{TokenKind: kind, Text: strconv.FormatUint(v.U, 10), Base: token.Decimal, Ty: types.NewPrimitive(v.Prim), SourceSpan: span}, true

	case value.Signed:
		kind, ok := signedLiteralKind[v.Prim]
		if !ok {
			return nil, false
		}
		return &boundtree.LiteralExpression{TokenKind: kind, Text: strconv.FormatUint(uint64(v.I), 10), Base: token.Decimal, Ty: types.NewPrimitive(v.Prim), SourceSpan: span}, true

	case value.Float:
		return &boundtree.LiteralExpression{TokenKind: token.F32Literal, Text: strconv.FormatFloat(float64(v.F32), 'g', -1, 32), Ty: types.NewPrimitive(types.F32), SourceSpan: span}, true

	case value.Double:
		return &boundtree.LiteralExpression{TokenKind: token.F64Literal, Text: strconv.FormatFloat(v.F64, 'g', -1, 64), Ty: types.NewPrimitive(types.F64), SourceSpan: span}, true

	default:
		return nil, false
	}
}

var unsignedLiteralKind = map[types.Primitive]token.Kind{
	types.U8: token.U8Literal, types.U16: token.U16Literal, types.U32: token.U32Literal, types.U64: token.U64Literal,
}

var signedLiteralKind = map[types.Primitive]token.Kind{
	types.I8: token.I8Literal, types.I16: token.I16Literal, types.I32: token.I32Literal, types.I64: token.I64Literal,
}

// literalValue reconstructs the runtime value.Value a bound literal
// denotes, reusing package binder's literal-parsing helpers (the same
// ones the interpreter calls) so folding and evaluation never disagree
// about a literal's meaning.
func literalValue(lit *boundtree.LiteralExpression) value.Value {
	if lit.Ty.Kind != types.VariantPrimitive {
		return value.InvalidValue
	}
	switch lit.TokenKind {
	case token.TrueLiteral:
		return value.NewBool(true)
	case token.FalseLiteral:
		return value.NewBool(false)
	case token.CharLiteral:
		r := []rune(lit.Text)
		if len(r) == 0 {
			return value.NewChar(0)
		}
		return value.NewChar(r[0])
	case token.StringLiteral:
		return value.NewString(lit.Text)
	case token.F32Literal:
		f, _ := strconv.ParseFloat(lit.Text, 64)
		return value.NewFloat32(float32(f))
	case token.F64Literal:
		f, _ := strconv.ParseFloat(lit.Text, 64)
		return value.NewFloat64(f)
	default:
		if lit.Ty.Prim.IsSigned() {
			return value.NewSigned(lit.Ty.Prim, parseLiteralInt(lit.Text, lit.Base, lit.Ty.Prim))
		}
		return value.NewUnsigned(lit.Ty.Prim, parseLiteralUint(lit.Text, lit.Base, lit.Ty.Prim))
	}
}
