package binder

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
)

// resolveBinaryOperator implements the binary operator-dispatch table. It
// returns a BoundBinaryOperator with ReturnType Invalid (plus a pushed
// diagnostic) for any combination not covered by the table.
func (b *Binder) resolveBinaryOperator(op token.Token, left, right *types.Type, span source.Span) boundtree.BoundBinaryOperator {
	bad := boundtree.BoundBinaryOperator{Kind: op.Kind, LeftType: left, RightType: right, ReturnType: b.invalidType()}

	if left.IsInvalid() || right.IsInvalid() {
		return bad
	}

	switch op.Kind {
	case token.Plus:
		if isPrim(left, types.String) || isPrim(left, types.Char) {
			if (isPrim(right, types.String) || isPrim(right, types.Char)) {
				return mk(op.Kind, left, right, types.NewPrimitive(types.String))
			}
		}
		if left.Kind == types.VariantArray && right.Kind == types.VariantArray && types.AssignableTo(right.ArrayBase, left.ArrayBase) {
			return mk(op.Kind, left, right, sumArrayType(left, right))
		}
		if sameNumeric(left, right) {
			return mk(op.Kind, left, right, types.NewPrimitive(left.Prim))
		}

	case token.Minus, token.Star, token.Slash, token.Percent:
		if sameNumeric(left, right) {
			return mk(op.Kind, left, right, types.NewPrimitive(left.Prim))
		}

	case token.LogicalAnd, token.LogicalOr:
		if isPrim(left, types.Bool) && isPrim(right, types.Bool) {
			return mk(op.Kind, left, right, types.NewPrimitive(types.Bool))
		}

	case token.Equals, token.NotEquals:
		if types.Compatible(left, right) {
			return mk(op.Kind, left, right, types.NewPrimitive(types.Bool))
		}

	case token.Greater, token.Less, token.GreaterEqual, token.LessEqual:
		if sameNumeric(left, right) {
			return mk(op.Kind, left, right, types.NewPrimitive(types.Bool))
		}

	case token.BitwiseAnd, token.BitwiseOr, token.BitwiseXor, token.ShiftLeft, token.ShiftRight:
		if left.Kind == types.VariantPrimitive && left.Prim.IsIntegral() && right.Kind == types.VariantPrimitive && right.Prim.IsIntegral() {
			return mk(op.Kind, left, right, types.NewPrimitive(left.Prim))
		}

	case token.Assign, token.AddAssign, token.SubAssign, token.MulAssign, token.DivAssign, token.ModAssign:
		if !left.Mutable {
			b.errorf(span, "left-hand side of %q is not mutable storage", op.Kind)
			return bad
		}
		if types.AssignableTo(right, left) {
			return mk(op.Kind, left, right, left)
		}
	}

	b.errorf(span, "undefined operator %q for %s and %s", op.Kind, left, right)
	return bad
}

// resolveUnaryOperator implements the unary operator-dispatch rules.
func (b *Binder) resolveUnaryOperator(op token.Token, operand *types.Type, span source.Span) boundtree.BoundUnaryOperator {
	bad := boundtree.BoundUnaryOperator{Kind: op.Kind, OperandType: operand, ReturnType: b.invalidType()}
	if operand.IsInvalid() {
		return bad
	}

	switch op.Kind {
	case token.Plus:
		if isPrim(operand, types.String) || operand.Kind == types.VariantArray {
			return mkUnary(op.Kind, operand, types.NewPrimitive(types.U64))
		}
		if isPrim(operand, types.Char) {
			return mkUnary(op.Kind, operand, types.NewPrimitive(types.I32))
		}
		if operand.Kind == types.VariantPrimitive && operand.Prim.IsNumeric() {
			return mkUnary(op.Kind, operand, operand)
		}
	case token.Minus:
		if operand.Kind == types.VariantPrimitive && (operand.Prim.IsSigned() || operand.Prim.IsFloat()) {
			return mkUnary(op.Kind, operand, operand)
		}
	case token.LogicalNot:
		if isPrim(operand, types.Bool) || (operand.Kind == types.VariantPrimitive && operand.Prim.IsNumeric()) {
			return mkUnary(op.Kind, operand, types.NewPrimitive(types.Bool))
		}
	case token.BitwiseNot:
		if operand.Kind == types.VariantPrimitive && operand.Prim.IsIntegral() {
			return mkUnary(op.Kind, operand, operand)
		}
	case token.Stringify:
		return mkUnary(op.Kind, operand, types.NewPrimitive(types.String))
	case token.Colon:
		return mkUnary(op.Kind, operand, types.NewPrimitive(types.TypeKind))
	case token.Increment, token.Decrement:
		if !operand.Mutable {
			b.errorf(span, "operand of %q is not mutable storage", op.Kind)
			return bad
		}
		if operand.Kind == types.VariantPrimitive && operand.Prim.IsNumeric() {
			return mkUnary(op.Kind, operand, operand)
		}
	}

	b.errorf(span, "undefined unary operator %q for %s", op.Kind, operand)
	return bad
}

func mk(kind token.Kind, left, right, ret *types.Type) boundtree.BoundBinaryOperator {
	return boundtree.BoundBinaryOperator{Kind: kind, LeftType: left, RightType: right, ReturnType: ret}
}

func mkUnary(kind token.Kind, operand, ret *types.Type) boundtree.BoundUnaryOperator {
	return boundtree.BoundUnaryOperator{Kind: kind, OperandType: operand, ReturnType: ret}
}

func isPrim(t *types.Type, p types.Primitive) bool {
	return t.Kind == types.VariantPrimitive && t.Prim == p
}

func sameNumeric(left, right *types.Type) bool {
	return left.Kind == types.VariantPrimitive && right.Kind == types.VariantPrimitive &&
		left.Prim.IsNumeric() && left.Prim == right.Prim
}

// sumArrayType computes the result type of array '+' concatenation: a
// count equal to the sum of both operand counts when both are known,
// otherwise unbounded.
func sumArrayType(left, right *types.Type) *types.Type {
	if left.ArrayCount != nil && right.ArrayCount != nil {
		n := *left.ArrayCount + *right.ArrayCount
		return types.NewArray(left.ArrayBase, &n)
	}
	return types.NewArray(left.ArrayBase, nil)
}
