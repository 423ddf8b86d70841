package fold

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
)

// foldExpr recursively folds e's children first, then attempts to fold e
// itself. Non-foldable nodes are rebuilt structurally with their folded
// children, never mutated in place.
func (f *folder) foldExpr(e boundtree.Expression) boundtree.Expression {
	switch n := e.(type) {
	case *boundtree.LiteralExpression, *boundtree.IdentifierExpression:
		return e

	case *boundtree.UnaryExpression:
		operand := f.foldExpr(n.Operand)
		folded := &boundtree.UnaryExpression{Operator: n.Operator, Operand: operand, SourceSpan: n.SourceSpan}
		if f.cfg.isEnabled(PassLiteral) {
			if lit, ok := asLiteral(operand); ok {
				if result, ok := evalConstUnary(n.Operator.Kind, literalValue(lit)); ok {
					if newLit, ok := literalFromValue(result, n.SourceSpan); ok {
						return newLit
					}
				}
			}
		}
		return folded

	case *boundtree.BinaryExpression:
		return f.foldBinary(n)

	case *boundtree.RangeExpression:
		return &boundtree.RangeExpression{Begin: f.foldExpr(n.Begin), End: f.foldExpr(n.End), Reversed: n.Reversed, ElementType: n.ElementType, SourceSpan: n.SourceSpan}

	case *boundtree.IndexExpression:
		return &boundtree.IndexExpression{Array: f.foldExpr(n.Array), Index: f.foldExpr(n.Index), ElemType: n.ElemType, SourceSpan: n.SourceSpan}

	case *boundtree.AccessExpression:
		return &boundtree.AccessExpression{Target: f.foldExpr(n.Target), FieldIndex: n.FieldIndex, FieldType: n.FieldType, SourceSpan: n.SourceSpan}

	case *boundtree.CallExpression:
		args := make([]boundtree.Expression, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = f.foldExpr(a)
		}
		return &boundtree.CallExpression{Callee: n.Callee, IsExternal: n.IsExternal, Arguments: args, ReturnType: n.ReturnType, SourceSpan: n.SourceSpan}

	case *boundtree.ConversionExpression:
		return &boundtree.ConversionExpression{Target: n.Target, Operand: f.foldExpr(n.Operand), SourceSpan: n.SourceSpan}

	case *boundtree.ArrayExpression:
		elems := make([]boundtree.Expression, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = f.foldExpr(el)
		}
		return &boundtree.ArrayExpression{ElemType: n.ElemType, Elements: elems, SourceSpan: n.SourceSpan}

	case *boundtree.StructureExpression:
		vals := make([]boundtree.Expression, len(n.FieldVals))
		for i, v := range n.FieldVals {
			if v != nil {
				vals[i] = f.foldExpr(v)
			}
		}
		return &boundtree.StructureExpression{Ty: n.Ty, FieldVals: vals, SourceSpan: n.SourceSpan}

	case *boundtree.BlockExpression:
		return f.foldBlock(n)

	case *boundtree.IfExpression:
		return f.foldIf(n)

	case *boundtree.WhileExpression:
		return &boundtree.WhileExpression{
			Label: n.Label, Condition: f.foldExpr(n.Condition), Body: f.foldBlock(n.Body),
			Finally: f.foldBlockOrNil(n.Finally), Else: f.foldBlockOrNil(n.Else), SourceSpan: n.SourceSpan,
		}

	case *boundtree.ForExpression:
		return f.foldFor(n)

	case *boundtree.MatchExpression:
		arms := make([]boundtree.MatchArm, len(n.Arms))
		for i, arm := range n.Arms {
			arms[i] = boundtree.MatchArm{VariantIndex: arm.VariantIndex, BindName: arm.BindName, Body: f.foldExpr(arm.Body)}
		}
		return &boundtree.MatchExpression{Value: f.foldExpr(n.Value), EnumType: n.EnumType, Arms: arms, Ty: n.Ty, SourceSpan: n.SourceSpan}

	default:
		return e
	}
}

// foldBinary folds a literal/literal operator application and collapses
// a short-circuit '&&'/'||' whose left operand is a literal: to that
// literal when it decides the result, otherwise to the right operand
// alone. Neither pass
// ever evaluates the right operand when it wouldn't already be evaluated
// at runtime, so no side effect is elided.
func (f *folder) foldBinary(n *boundtree.BinaryExpression) boundtree.Expression {
	left := f.foldExpr(n.Left)

	if f.cfg.isEnabled(PassShortCircuit) && (n.Operator.Kind == token.LogicalAnd || n.Operator.Kind == token.LogicalOr) {
		if lit, ok := asLiteral(left); ok {
			lv := literalValue(lit)
			if n.Operator.Kind == token.LogicalAnd && !lv.Bool_ {
				return left
			}
			if n.Operator.Kind == token.LogicalOr && lv.Bool_ {
				return left
			}
			return f.foldExpr(n.Right)
		}
	}

	right := f.foldExpr(n.Right)
	folded := &boundtree.BinaryExpression{Left: left, Operator: n.Operator, Right: right, SourceSpan: n.SourceSpan}

	if !f.cfg.isEnabled(PassLiteral) {
		return folded
	}
	leftLit, leftOK := asLiteral(left)
	rightLit, rightOK := asLiteral(right)
	if !leftOK || !rightOK {
		return folded
	}
	result, ok := evalConstBinary(n.Operator.Kind, literalValue(leftLit), literalValue(rightLit))
	if !ok {
		return folded
	}
	newLit, ok := literalFromValue(result, n.SourceSpan)
	if !ok {
		return folded
	}
	return newLit
}

func (f *folder) foldBlock(b *boundtree.BlockExpression) *boundtree.BlockExpression {
	if b == nil {
		return nil
	}
	body := make([]boundtree.Statement, len(b.Body))
	for i, s := range b.Body {
		body[i] = f.foldStmt(s)
	}
	var trailing boundtree.Expression
	if b.Trailing != nil {
		trailing = f.foldExpr(b.Trailing)
	}
	return &boundtree.BlockExpression{Body: body, Trailing: trailing, Ty: b.Ty, SourceSpan: b.SourceSpan}
}

func (f *folder) foldBlockOrNil(b *boundtree.BlockExpression) *boundtree.BlockExpression {
	if b == nil {
		return nil
	}
	return f.foldBlock(b)
}

// foldIf implements the if/else literal-test collapse: a boolean-literal
// condition selects its branch outright; an `if` without `else` that
// tests false folds away to an empty void block.
func (f *folder) foldIf(n *boundtree.IfExpression) boundtree.Expression {
	cond := f.foldExpr(n.Condition)
	then := f.foldBlock(n.Then)
	var els boundtree.Expression
	if n.Else != nil {
		els = f.foldExpr(n.Else)
	}

	if f.cfg.isEnabled(PassBranch) {
		if lit, ok := asLiteral(cond); ok {
			v := literalValue(lit)
			if v.Bool_ {
				return then
			}
			if els != nil {
				return els
			}
			return &boundtree.BlockExpression{Ty: types.NewPrimitive(types.Void), SourceSpan: n.SourceSpan}
		}
	}

	return &boundtree.IfExpression{Condition: cond, Then: then, Else: els, Ty: n.Ty, SourceSpan: n.SourceSpan}
}

func (f *folder) foldFor(n *boundtree.ForExpression) *boundtree.ForExpression {
	out := &boundtree.ForExpression{Label: n.Label, IsRanged: n.IsRanged, Body: f.foldBlock(n.Body), SourceSpan: n.SourceSpan}
	if n.IsRanged {
		out.Ranged = &boundtree.RangedForClause{
			Identifier: n.Ranged.Identifier, Iterable: f.foldExpr(n.Ranged.Iterable),
			ElementType: n.Ranged.ElementType, Reversed: n.Ranged.Reversed,
		}
	} else {
		out.Legacy = &boundtree.LegacyForClause{
			Declaration: f.foldStmt(n.Legacy.Declaration), Test: f.foldExpr(n.Legacy.Test), Step: f.foldExpr(n.Legacy.Step),
		}
	}
	return out
}

func (f *folder) foldStmt(s boundtree.Statement) boundtree.Statement {
	switch st := s.(type) {
	case *boundtree.ExpressionStatement:
		return &boundtree.ExpressionStatement{Expression: f.foldExpr(st.Expression), SourceSpan: st.SourceSpan}
	case *boundtree.VariableDeclaration:
		var v boundtree.Expression
		if st.Value != nil {
			v = f.foldExpr(st.Value)
		}
		return &boundtree.VariableDeclaration{Sym: st.Sym, Value: v, SourceSpan: st.SourceSpan}
	case *boundtree.ReturnStatement:
		var v boundtree.Expression
		if st.Value != nil {
			v = f.foldExpr(st.Value)
		}
		return &boundtree.ReturnStatement{Value: v, SourceSpan: st.SourceSpan}
	default:
		return s
	}
}
