package fold

import (
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/value"
)

// evalConstUnary computes a unary operator over a literal operand using
// the same value-model primitives the interpreter calls, excluding the
// mutating forms ('++'/'--') which can never apply to a literal (the
// binder requires a mutable lvalue for those).
func evalConstUnary(kind token.Kind, v value.Value) (value.Value, bool) {
	switch kind {
	case token.Plus:
		if v.Tag == value.String || v.Kind == value.KindArray {
			return value.Length(v), true
		}
		if v.Tag == value.Char {
			return value.Codepoint(v), true
		}
		return v, true
	case token.Minus:
		return value.Negate(v), true
	case token.LogicalNot:
		if v.Tag == value.Bool {
			return value.NewBool(!v.Bool_), true
		}
		return value.NewBool(v.IsZero()), true
	case token.BitwiseNot:
		return value.BitwiseNot(v), true
	case token.Stringify:
		return value.NewString(v.Stringify()), true
	default:
		return value.InvalidValue, false
	}
}

var constArith = map[token.Kind]value.BinaryOp{
	token.Plus:        value.Add,
	token.Minus:        value.Sub,
	token.Star:         value.Mul,
	token.Slash:        value.Div,
	token.Percent:      value.Mod,
	token.BitwiseAnd:   value.BitAnd,
	token.BitwiseOr:    value.BitOr,
	token.BitwiseXor:   value.BitXor,
	token.ShiftLeft:    value.ShiftLeft,
	token.ShiftRight:   value.ShiftRight,
}

// evalConstBinary computes a non-assigning binary operator over two
// literal operands. ok is false when the operator can have a side
// effect-sensitive ordering (none here, since both operands are already
// literals) or isn't one this folder recognises; the caller leaves the
// expression unfolded in that case.
func evalConstBinary(kind token.Kind, left, right value.Value) (value.Value, bool) {
	if op, isArith := constArith[kind]; isArith {
		return value.Arithmetic(op, left, right)
	}

	switch kind {
	case token.Equals:
		return value.NewBool(value.Equal(left, right)), true
	case token.NotEquals:
		return value.NewBool(!value.Equal(left, right)), true
	case token.Less:
		lt, ok := value.Less(left, right)
		return value.NewBool(lt), ok
	case token.GreaterEqual:
		lt, ok := value.Less(left, right)
		return value.NewBool(!lt), ok
	case token.Greater:
		lt, ok := value.Less(right, left)
		return value.NewBool(lt), ok
	case token.LessEqual:
		lt, ok := value.Less(right, left)
		return value.NewBool(!lt), ok
	case token.LogicalAnd:
		return value.NewBool(left.Bool_ && right.Bool_), true
	case token.LogicalOr:
		return value.NewBool(left.Bool_ || right.Bool_), true
	default:
		return value.InvalidValue, false
	}
}
