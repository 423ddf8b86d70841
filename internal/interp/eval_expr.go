package interp

import (
	"github.com/fosspointer/go-linc/internal/binder"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
	"github.com/fosspointer/go-linc/internal/value"
)

func literalInt(text string, base token.Base, prim types.Primitive) int64 {
	return binder.LiteralIntValue(text, base, prim)
}

func literalUint(text string, base token.Base, prim types.Primitive) uint64 {
	return binder.LiteralUintValue(text, base, prim)
}

func literalFloat(text string) float64 {
	return binder.LiteralFloatValue(text)
}

// Evaluate dispatches on the concrete boundtree.Expression type, a
// single closed type switch just like the binder uses for its own
// dispatch.
func (i *Interpreter) Evaluate(expr boundtree.Expression) Control {
	switch e := expr.(type) {
	case *boundtree.LiteralExpression:
		return normal(i.evalLiteral(e))
	case *boundtree.IdentifierExpression:
		return i.evalIdentifier(e)
	case *boundtree.UnaryExpression:
		return i.evalUnary(e)
	case *boundtree.BinaryExpression:
		return i.evalBinary(e)
	case *boundtree.RangeExpression:
		return i.evalRange(e)
	case *boundtree.IndexExpression:
		return i.evalIndex(e)
	case *boundtree.AccessExpression:
		return i.evalAccess(e)
	case *boundtree.CallExpression:
		return i.evalCall(e)
	case *boundtree.ConversionExpression:
		return i.evalConversion(e)
	case *boundtree.ArrayExpression:
		return i.evalArray(e)
	case *boundtree.StructureExpression:
		return i.evalStructure(e)
	case *boundtree.BlockExpression:
		return i.evalBlock(e)
	case *boundtree.IfExpression:
		return i.evalIf(e)
	case *boundtree.WhileExpression:
		return i.evalWhile(e)
	case *boundtree.ForExpression:
		return i.evalFor(e)
	case *boundtree.MatchExpression:
		return i.evalMatch(e)
	default:
		return normal(value.InvalidValue)
	}
}

func (i *Interpreter) evalLiteral(e *boundtree.LiteralExpression) value.Value {
	ty := e.Type()
	if ty.Kind != types.VariantPrimitive {
		return value.InvalidValue
	}
	switch e.TokenKind {
	case token.TrueLiteral:
		return value.NewBool(true)
	case token.FalseLiteral:
		return value.NewBool(false)
	case token.CharLiteral:
		r := []rune(e.Text)
		if len(r) == 0 {
			return value.NewChar(0)
		}
		return value.NewChar(r[0])
	case token.StringLiteral:
		return value.NewString(e.Text)
	case token.F32Literal:
		return value.NewFloat32(float32(literalFloat(e.Text)))
	case token.F64Literal:
		return value.NewFloat64(literalFloat(e.Text))
	default:
		if ty.Prim.IsSigned() {
			return value.NewSigned(ty.Prim, literalInt(e.Text, e.Base, ty.Prim))
		}
		return value.NewUnsigned(ty.Prim, literalUint(e.Text, e.Base, ty.Prim))
	}
}

func (i *Interpreter) evalIdentifier(e *boundtree.IdentifierExpression) Control {
	cell, ok := i.lookup(e.Sym.Name)
	if !ok {
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "unresolved identifier " + e.Sym.Name + " at runtime"})
		return normal(value.InvalidValue)
	}
	return normal(*cell)
}

func (i *Interpreter) evalConversion(e *boundtree.ConversionExpression) Control {
	c := i.Evaluate(e.Operand)
	if isUnwinding(c) {
		return c
	}
	if e.Target.Kind != types.VariantPrimitive {
		return normal(value.InvalidValue)
	}
	return normal(value.ConvertTo(c.Value, e.Target.Prim))
}

func (i *Interpreter) evalArray(e *boundtree.ArrayExpression) Control {
	elems := make([]value.Value, 0, len(e.Elements))
	for _, el := range e.Elements {
		c := i.Evaluate(el)
		if isUnwinding(c) {
			return c
		}
		elems = append(elems, c.Value)
	}
	return normal(value.NewArray(e.ElemType, elems))
}

func (i *Interpreter) evalStructure(e *boundtree.StructureExpression) Control {
	fields := make([]value.Value, len(e.FieldVals))
	for idx, fv := range e.FieldVals {
		if fv == nil {
			fields[idx] = value.VoidValue
			continue
		}
		c := i.Evaluate(fv)
		if isUnwinding(c) {
			return c
		}
		fields[idx] = c.Value
	}
	return normal(value.NewStructure(e.Ty, fields))
}

func (i *Interpreter) evalIndex(e *boundtree.IndexExpression) Control {
	arrC := i.Evaluate(e.Array)
	if isUnwinding(arrC) {
		return arrC
	}
	idxC := i.Evaluate(e.Index)
	if isUnwinding(idxC) {
		return idxC
	}
	idx := int(idxC.Value.AsInt64())
	if idx < 0 || idx >= len(arrC.Value.Elems) {
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "array index out of bounds"})
		return normal(value.InvalidValue)
	}
	return normal(arrC.Value.Elems[idx])
}

func (i *Interpreter) evalAccess(e *boundtree.AccessExpression) Control {
	c := i.Evaluate(e.Target)
	if isUnwinding(c) {
		return c
	}
	if e.FieldIndex < 0 || e.FieldIndex >= len(c.Value.Fields) {
		return normal(value.InvalidValue)
	}
	return normal(c.Value.Fields[e.FieldIndex])
}

func (i *Interpreter) evalRange(e *boundtree.RangeExpression) Control {
	beginC := i.Evaluate(e.Begin)
	if isUnwinding(beginC) {
		return beginC
	}
	endC := i.Evaluate(e.End)
	if isUnwinding(endC) {
		return endC
	}
	return normal(value.NewArray(e.ElementType, []value.Value{beginC.Value, endC.Value}))
}
