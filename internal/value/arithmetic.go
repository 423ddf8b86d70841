package value

import "github.com/fosspointer/go-linc/internal/types"

// BinaryOp enumerates the binary operator kinds the value model computes
// directly; the token/AST spelling is mapped onto these by package binder.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	BitAnd
	BitOr
	BitXor
	ShiftLeft
	ShiftRight
)

// Arithmetic evaluates a numeric/string/char binary operator. The caller
// (the interpreter or the constant folder) has already checked the
// operator is applicable to left/right's static types; Arithmetic reports
// ok=false only for the runtime div/mod-by-zero case, which still requires
// a diagnostic at the call site.
func Arithmetic(op BinaryOp, left, right Value) (Value, bool) {
	// '+' on string/char operands concatenates regardless of op tag, since
	// the binder only ever routes this pair through Add.
	if op == Add && (left.Tag == String || left.Tag == Char) && (right.Tag == String || right.Tag == Char) {
		return NewString(left.Stringify() + right.Stringify()), true
	}

	switch left.Tag {
	case Unsigned:
		r := AsUnsignedFrom(right)
		return arithUnsigned(op, left.Prim, left.U, r)
	case Signed:
		r := right.AsInt64()
		return arithSigned(op, left.Prim, left.I, r)
	case Float:
		r := float32(right.AsFloat64())
		return arithFloat32(op, left.F32, r)
	case Double:
		r := right.AsFloat64()
		return arithFloat64(op, left.F64, r)
	default:
		return InvalidValue, false
	}
}

func arithUnsigned(op BinaryOp, prim types.Primitive, a, b uint64) (Value, bool) {
	switch op {
	case Add:
		return NewUnsigned(prim, a+b), true
	case Sub:
		return NewUnsigned(prim, a-b), true
	case Mul:
		return NewUnsigned(prim, a*b), true
	case Div:
		if b == 0 {
			return InvalidValue, false
		}
		return NewUnsigned(prim, a/b), true
	case Mod:
		if b == 0 {
			return InvalidValue, false
		}
		return NewUnsigned(prim, a%b), true
	case BitAnd:
		return NewUnsigned(prim, a&b), true
	case BitOr:
		return NewUnsigned(prim, a|b), true
	case BitXor:
		return NewUnsigned(prim, a^b), true
	case ShiftLeft:
		return NewUnsigned(prim, a<<uint(b)), true
	case ShiftRight:
		return NewUnsigned(prim, a>>uint(b)), true
	default:
		return InvalidValue, false
	}
}

func arithSigned(op BinaryOp, prim types.Primitive, a, b int64) (Value, bool) {
	switch op {
	case Add:
		return NewSigned(prim, a+b), true
	case Sub:
		return NewSigned(prim, a-b), true
	case Mul:
		return NewSigned(prim, a*b), true
	case Div:
		if b == 0 {
			return InvalidValue, false
		}
		return NewSigned(prim, a/b), true
	case Mod:
		if b == 0 {
			return InvalidValue, false
		}
		return NewSigned(prim, a%b), true
	case BitAnd:
		return NewSigned(prim, a&b), true
	case BitOr:
		return NewSigned(prim, a|b), true
	case BitXor:
		return NewSigned(prim, a^b), true
	case ShiftLeft:
		return NewSigned(prim, a<<uint(b)), true
	case ShiftRight:
		return NewSigned(prim, a>>uint(b)), true
	default:
		return InvalidValue, false
	}
}

func arithFloat32(op BinaryOp, a, b float32) (Value, bool) {
	switch op {
	case Add:
		return NewFloat32(a + b), true
	case Sub:
		return NewFloat32(a - b), true
	case Mul:
		return NewFloat32(a * b), true
	case Div:
		if b == 0 {
			return InvalidValue, false
		}
		return NewFloat32(a / b), true
	default:
		return InvalidValue, false
	}
}

func arithFloat64(op BinaryOp, a, b float64) (Value, bool) {
	switch op {
	case Add:
		return NewFloat64(a + b), true
	case Sub:
		return NewFloat64(a - b), true
	case Mul:
		return NewFloat64(a * b), true
	case Div:
		if b == 0 {
			return InvalidValue, false
		}
		return NewFloat64(a / b), true
	default:
		return InvalidValue, false
	}
}

// Negate implements unary '-' on a signed or floating value.
func Negate(v Value) Value {
	switch v.Tag {
	case Signed:
		return NewSigned(v.Prim, -v.I)
	case Float:
		return NewFloat32(-v.F32)
	case Double:
		return NewFloat64(-v.F64)
	default:
		return InvalidValue
	}
}

// BitwiseNot implements unary '~' on an integral value.
func BitwiseNot(v Value) Value {
	switch v.Tag {
	case Unsigned:
		return NewUnsigned(v.Prim, ^v.U)
	case Signed:
		return NewSigned(v.Prim, ^v.I)
	default:
		return InvalidValue
	}
}

// Length implements unary '+' on a string or array (its element count).
func Length(v Value) Value {
	switch v.Kind {
	case KindArray:
		return NewUnsigned(types.U64, uint64(len(v.Elems)))
	case KindPrimitive:
		if v.Tag == String {
			return NewUnsigned(types.U64, uint64(len([]rune(v.Str))))
		}
	}
	return InvalidValue
}

// Codepoint implements unary '+' on a char, yielding its i32 code point.
func Codepoint(v Value) Value {
	if v.Tag != Char {
		return InvalidValue
	}
	return NewSigned(types.I32, int64(v.Ch))
}

// Increment/Decrement implement '++'/'--' on a mutable numeric lvalue; the
// interpreter is responsible for the lvalue check and the store-back.
func Increment(v Value) Value {
	r, _ := Arithmetic(Add, v, unitOf(v))
	return r
}

func Decrement(v Value) Value {
	r, _ := Arithmetic(Sub, v, unitOf(v))
	return r
}

func unitOf(v Value) Value {
	switch v.Tag {
	case Unsigned:
		return NewUnsigned(v.Prim, 1)
	case Signed:
		return NewSigned(v.Prim, 1)
	case Float:
		return NewFloat32(1)
	case Double:
		return NewFloat64(1)
	default:
		return InvalidValue
	}
}
