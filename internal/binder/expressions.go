package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/types"
)

// bindExpression dispatches on the concrete ast.Expression type. This is
// a closed type switch in place of virtual-dispatch downcasting.
func (b *Binder) bindExpression(expr ast.Expression) boundtree.Expression {
	switch e := expr.(type) {
	case *ast.LiteralExpression:
		return b.bindLiteral(e)
	case *ast.IdentifierExpression:
		return b.bindIdentifier(e)
	case *ast.UnaryExpression:
		return b.bindUnary(e)
	case *ast.BinaryExpression:
		return b.bindBinary(e)
	case *ast.RangeExpression:
		return b.bindRange(e)
	case *ast.IndexExpression:
		return b.bindIndex(e)
	case *ast.AccessExpression:
		return b.bindAccess(e)
	case *ast.CallExpression:
		return b.bindCall(e)
	case *ast.ConversionExpression:
		return b.bindConversion(e)
	case *ast.ArrayExpression:
		return b.bindArray(e)
	case *ast.StructureExpression:
		return b.bindStructure(e)
	case *ast.BlockExpression:
		return b.bindBlock(e)
	case *ast.IfExpression:
		return b.bindIf(e)
	case *ast.WhileExpression:
		return b.bindWhile(e)
	case *ast.ForExpression:
		return b.bindFor(e)
	case *ast.MatchExpression:
		return b.bindMatch(e)
	default:
		b.errorf(expr.Span(), "internal error: unhandled expression kind")
		return &boundtree.LiteralExpression{Ty: b.invalidType(), SourceSpan: expr.Span()}
	}
}

func (b *Binder) bindIdentifier(e *ast.IdentifierExpression) boundtree.Expression {
	sym, ok := b.resolve(e.Name)
	if !ok {
		b.errorf(e.SourceSpan, "undeclared identifier %q", e.Name)
		return &boundtree.IdentifierExpression{Sym: &boundtree.Symbol{Name: e.Name, Ty: b.invalidType()}, SourceSpan: e.SourceSpan}
	}
	return &boundtree.IdentifierExpression{Sym: sym, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindUnary(e *ast.UnaryExpression) boundtree.Expression {
	operand := b.bindExpression(e.Operand)
	op := b.resolveUnaryOperator(e.Operator, operand.Type(), e.SourceSpan)
	return &boundtree.UnaryExpression{Operator: op, Operand: operand, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindBinary(e *ast.BinaryExpression) boundtree.Expression {
	left := b.bindExpression(e.Left)

	// Short-circuit operators don't change typing, only interpreter
	// evaluation order; both operands are still bound here so undeclared
	// names on the right are still reported.
	right := b.bindExpression(e.Right)
	op := b.resolveBinaryOperator(e.Operator, left.Type(), right.Type(), e.SourceSpan)
	return &boundtree.BinaryExpression{Left: left, Operator: op, Right: right, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindRange(e *ast.RangeExpression) boundtree.Expression {
	begin := b.bindExpression(e.Begin)
	end := b.bindExpression(e.End)
	elemType := begin.Type()
	if !types.Equal(begin.Type(), end.Type()) {
		b.errorf(e.SourceSpan, "range endpoints must share a type, got %s and %s", begin.Type(), end.Type())
		elemType = b.invalidType()
	}
	return &boundtree.RangeExpression{Begin: begin, End: end, Reversed: e.Reversed, ElementType: elemType, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindIndex(e *ast.IndexExpression) boundtree.Expression {
	arr := b.bindExpression(e.Array)
	idx := b.bindExpression(e.Index)
	if idx.Type().Kind != types.VariantPrimitive || !idx.Type().Prim.IsIntegral() {
		b.errorf(e.Index.Span(), "array index must be an integral type, got %s", idx.Type())
	}
	elemType := b.invalidType()
	if arr.Type().Kind == types.VariantArray {
		elemType = arr.Type().ArrayBase
	} else if !arr.Type().IsInvalid() {
		b.errorf(e.Array.Span(), "cannot index non-array type %s", arr.Type())
	}
	return &boundtree.IndexExpression{Array: arr, Index: idx, ElemType: elemType, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindAccess(e *ast.AccessExpression) boundtree.Expression {
	target := b.bindExpression(e.Target)
	fieldIndex := -1
	fieldType := b.invalidType()
	if target.Type().Kind == types.VariantStructure {
		for i, f := range target.Type().Fields {
			if f.Name == e.Field {
				fieldIndex = i
				fieldType = f.Type
				break
			}
		}
		if fieldIndex < 0 {
			b.errorf(e.SourceSpan, "structure %s has no field %q", target.Type(), e.Field)
		}
	} else if !target.Type().IsInvalid() {
		b.errorf(e.Target.Span(), "cannot access field of non-structure type %s", target.Type())
	}
	return &boundtree.AccessExpression{Target: target, FieldIndex: fieldIndex, FieldType: fieldType, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindConversion(e *ast.ConversionExpression) boundtree.Expression {
	target := b.resolveType(e.TargetType)
	operand := b.bindExpression(e.Operand)
	return &boundtree.ConversionExpression{Target: target, Operand: operand, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindArray(e *ast.ArrayExpression) boundtree.Expression {
	var elems []boundtree.Expression
	var elemType *types.Type
	for _, el := range e.Elements {
		bound := b.bindExpression(el)
		elems = append(elems, bound)
		if elemType == nil {
			elemType = bound.Type()
		} else if !types.AssignableTo(bound.Type(), elemType) {
			b.errorf(el.Span(), "array element type %s does not match preceding elements' type %s", bound.Type(), elemType)
		}
	}
	if elemType == nil {
		// An inferred empty array is assignable to any array base — model
		// its element type as Invalid so AssignableTo's count==0 rule, not
		// a type match, is what makes the assignment work.
		elemType = b.invalidType()
	}
	return &boundtree.ArrayExpression{ElemType: elemType, Elements: elems, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindStructure(e *ast.StructureExpression) boundtree.Expression {
	ty, ok := b.structTypes[e.TypeName]
	if !ok {
		b.errorf(e.SourceSpan, "unknown structure type %q", e.TypeName)
		ty = b.invalidType()
	}

	vals := make([]boundtree.Expression, len(ty.Fields))
	for i, name := range e.FieldNames {
		bound := b.bindExpression(e.FieldVals[i])
		idx := -1
		if !ty.IsInvalid() {
			for j, f := range ty.Fields {
				if f.Name == name {
					idx = j
					break
				}
			}
		}
		if idx < 0 {
			if !ty.IsInvalid() {
				b.errorf(e.FieldVals[i].Span(), "structure %q has no field %q", e.TypeName, name)
			}
			continue
		}
		if !types.AssignableTo(bound.Type(), ty.Fields[idx].Type) {
			b.errorf(e.FieldVals[i].Span(), "field %q expects %s, got %s", name, ty.Fields[idx].Type, bound.Type())
		}
		vals[idx] = bound
	}

	return &boundtree.StructureExpression{Ty: ty, FieldVals: vals, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindBlock(e *ast.BlockExpression) boundtree.Expression {
	b.pushScope()
	defer b.popScope()

	var stmts []boundtree.Statement
	for _, v := range e.Body {
		stmts = append(stmts, b.bindVariant(v))
	}

	var trailing boundtree.Expression
	ty := types.NewPrimitive(types.Void)
	if e.Trailing != nil {
		trailing = b.bindExpression(e.Trailing)
		ty = trailing.Type()
	}

	return &boundtree.BlockExpression{Body: stmts, Trailing: trailing, Ty: ty, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindIf(e *ast.IfExpression) boundtree.Expression {
	cond := b.bindExpression(e.Condition)
	if !isPrim(cond.Type(), types.Bool) && !cond.Type().IsInvalid() {
		b.errorf(e.Condition.Span(), "if condition must be bool, got %s", cond.Type())
	}

	then := b.bindBlock(e.Then).(*boundtree.BlockExpression)

	var elseExpr boundtree.Expression
	ty := then.Ty
	if e.Else != nil {
		elseExpr = b.bindExpression(e.Else)
		if !types.Equal(ty, elseExpr.Type()) {
			// Applies the same permissive unification used by match to an
			// if/else value mismatch.
			ty = types.NewPrimitive(types.Void)
		}
	} else {
		ty = types.NewPrimitive(types.Void)
	}

	return &boundtree.IfExpression{Condition: cond, Then: then, Else: elseExpr, Ty: ty, SourceSpan: e.SourceSpan}
}

func (b *Binder) bindWhile(e *ast.WhileExpression) boundtree.Expression {
	cond := b.bindExpression(e.Condition)
	if !isPrim(cond.Type(), types.Bool) && !cond.Type().IsInvalid() {
		b.errorf(e.Condition.Span(), "while condition must be bool, got %s", cond.Type())
	}

	if e.Label != "" {
		if b.labels[e.Label] {
			b.errorf(e.SourceSpan, "label %q shadows an outer label of the same name", e.Label)
		}
		b.labels[e.Label] = true
		defer delete(b.labels, e.Label)
	}

	b.loops = append(b.loops, loopFrame{label: e.Label})
	defer func() { b.loops = b.loops[:len(b.loops)-1] }()

	body := b.bindBlock(e.Body).(*boundtree.BlockExpression)
	var finally, els *boundtree.BlockExpression
	if e.Finally != nil {
		finally = b.bindBlock(e.Finally).(*boundtree.BlockExpression)
	}
	if e.Else != nil {
		els = b.bindBlock(e.Else).(*boundtree.BlockExpression)
	}

	return &boundtree.WhileExpression{Label: e.Label, Condition: cond, Body: body, Finally: finally, Else: els, SourceSpan: e.SourceSpan}
}
