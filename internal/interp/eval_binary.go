package interp

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/value"
)

// compoundArith maps a compound-assignment token to the arithmetic it
// performs before storing back.
var compoundArith = map[token.Kind]value.BinaryOp{
	token.AddAssign: value.Add,
	token.SubAssign: value.Sub,
	token.MulAssign: value.Mul,
	token.DivAssign: value.Div,
	token.ModAssign: value.Mod,
}

func (i *Interpreter) evalBinary(e *boundtree.BinaryExpression) Control {
	switch e.Operator.Kind {
	case token.LogicalAnd, token.LogicalOr:
		return i.evalShortCircuit(e)
	case token.Assign:
		return i.evalAssign(e)
	case token.AddAssign, token.SubAssign, token.MulAssign, token.DivAssign, token.ModAssign:
		return i.evalCompoundAssign(e)
	}

	left := i.Evaluate(e.Left)
	if isUnwinding(left) {
		return left
	}
	right := i.Evaluate(e.Right)
	if isUnwinding(right) {
		return right
	}

	return i.applyBinary(e.Operator.Kind, left.Value, right.Value, e)
}

func (i *Interpreter) evalShortCircuit(e *boundtree.BinaryExpression) Control {
	left := i.Evaluate(e.Left)
	if isUnwinding(left) {
		return left
	}
	if e.Operator.Kind == token.LogicalAnd && !left.Value.Bool_ {
		return normal(value.NewBool(false))
	}
	if e.Operator.Kind == token.LogicalOr && left.Value.Bool_ {
		return normal(value.NewBool(true))
	}
	right := i.Evaluate(e.Right)
	if isUnwinding(right) {
		return right
	}
	return normal(value.NewBool(right.Value.Bool_))
}

func (i *Interpreter) evalAssign(e *boundtree.BinaryExpression) Control {
	lv, ok := i.resolveLvalue(e.Left)
	if !ok {
		return normal(value.InvalidValue)
	}
	right := i.Evaluate(e.Right)
	if isUnwinding(right) {
		return right
	}
	lv.set(right.Value)
	return normal(right.Value)
}

func (i *Interpreter) evalCompoundAssign(e *boundtree.BinaryExpression) Control {
	lv, ok := i.resolveLvalue(e.Left)
	if !ok {
		return normal(value.InvalidValue)
	}
	right := i.Evaluate(e.Right)
	if isUnwinding(right) {
		return right
	}
	op := compoundArith[e.Operator.Kind]
	result, ok := value.Arithmetic(op, lv.get(), right.Value)
	if !ok {
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "division or modulo by zero"})
		return normal(value.InvalidValue)
	}
	lv.set(result)
	return normal(result)
}

// applyBinary evaluates a non-assigning, non-short-circuit binary
// operator over already-evaluated operands.
func (i *Interpreter) applyBinary(kind token.Kind, left, right value.Value, e *boundtree.BinaryExpression) Control {
	switch kind {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.BitwiseAnd, token.BitwiseOr, token.BitwiseXor, token.ShiftLeft, token.ShiftRight:
		op := arithOpOf(kind)
		result, ok := value.Arithmetic(op, left, right)
		if !ok {
			i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "division or modulo by zero"})
			return normal(value.InvalidValue)
		}
		return normal(result)

	case token.Equals:
		return normal(value.NewBool(value.Equal(left, right)))
	case token.NotEquals:
		return normal(value.NewBool(!value.Equal(left, right)))

	case token.Less:
		lt, ok := value.Less(left, right)
		return normal(value.NewBool(ok && lt))
	case token.GreaterEqual:
		lt, ok := value.Less(left, right)
		return normal(value.NewBool(ok && !lt))
	case token.Greater:
		lt, ok := value.Less(right, left)
		return normal(value.NewBool(ok && lt))
	case token.LessEqual:
		lt, ok := value.Less(right, left)
		return normal(value.NewBool(ok && !lt))

	default:
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "unsupported binary operator at runtime"})
		return normal(value.InvalidValue)
	}
}

func arithOpOf(kind token.Kind) value.BinaryOp {
	switch kind {
	case token.Plus:
		return value.Add
	case token.Minus:
		return value.Sub
	case token.Star:
		return value.Mul
	case token.Slash:
		return value.Div
	case token.Percent:
		return value.Mod
	case token.BitwiseAnd:
		return value.BitAnd
	case token.BitwiseOr:
		return value.BitOr
	case token.BitwiseXor:
		return value.BitXor
	case token.ShiftLeft:
		return value.ShiftLeft
	case token.ShiftRight:
		return value.ShiftRight
	default:
		return value.Add
	}
}
