package interp

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/value"
)

// evalUnary applies the resolved unary operator to its operand. '++'/'--'
// additionally resolve the operand as an lvalue and store the result
// back — mutating operators require an lvalue operand.
func (i *Interpreter) evalUnary(e *boundtree.UnaryExpression) Control {
	switch e.Operator.Kind {
	case token.Increment, token.Decrement:
		lv, ok := i.resolveLvalue(e.Operand)
		if !ok {
			return normal(value.InvalidValue)
		}
		cur := lv.get()
		var next value.Value
		if e.Operator.Kind == token.Increment {
			next = value.Increment(cur)
		} else {
			next = value.Decrement(cur)
		}
		lv.set(next)
		return normal(cur)
	}

	c := i.Evaluate(e.Operand)
	if isUnwinding(c) {
		return c
	}
	v := c.Value

	switch e.Operator.Kind {
	case token.Plus:
		if v.Tag == value.String || v.Kind == value.KindArray {
			return normal(value.Length(v))
		}
		if v.Tag == value.Char {
			return normal(value.Codepoint(v))
		}
		return normal(v)
	case token.Minus:
		return normal(value.Negate(v))
	case token.LogicalNot:
		if v.Tag == value.Bool {
			return normal(value.NewBool(!v.Bool_))
		}
		return normal(value.NewBool(v.IsZero()))
	case token.BitwiseNot:
		return normal(value.BitwiseNot(v))
	case token.Stringify:
		return normal(value.NewString(v.Stringify()))
	case token.Colon:
		return normal(value.NewType(v.Type()))
	default:
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "unsupported unary operator at runtime"})
		return normal(value.InvalidValue)
	}
}
