package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/types"
)

// bindFor implements the two for-expression forms: legacy and ranged.
func (b *Binder) bindFor(e *ast.ForExpression) boundtree.Expression {
	if e.Label != "" {
		if b.labels[e.Label] {
			b.errorf(e.SourceSpan, "label %q shadows an outer label of the same name", e.Label)
		}
		b.labels[e.Label] = true
		defer delete(b.labels, e.Label)
	}

	b.pushScope()
	defer b.popScope()

	b.loops = append(b.loops, loopFrame{label: e.Label})
	defer func() { b.loops = b.loops[:len(b.loops)-1] }()

	if e.IsRanged {
		return b.bindRangedFor(e)
	}
	return b.bindLegacyFor(e)
}

func (b *Binder) bindRangedFor(e *ast.ForExpression) boundtree.Expression {
	iterable := b.bindExpression(e.Ranged.Iterable)
	elemType := b.invalidType()
	reversed := false

	// The *RangeExpression case must be checked before the generic array
	// case below: a bound range's Type() also reports VariantArray (its
	// runtime representation is a 2-element array), but iteration needs
	// its ElementType/Reversed, not its literal two elements.
	switch {
	case isPrim(iterable.Type(), types.String):
		elemType = types.NewPrimitive(types.Char)
	case isRangeExpr(iterable):
		rangeExpr := iterable.(*boundtree.RangeExpression)
		elemType = rangeExpr.ElementType
		reversed = rangeExpr.Reversed
	case iterable.Type().Kind == types.VariantArray:
		elemType = iterable.Type().ArrayBase
	default:
		if !iterable.Type().IsInvalid() {
			b.errorf(e.Ranged.Iterable.Span(), "cannot iterate over %s; expected string, array, or range", iterable.Type())
		}
	}

	sym := &boundtree.Symbol{Name: e.Ranged.Identifier, Kind: boundtree.SymVariable, Ty: elemType, Mutable: false}
	b.declare(e.Ranged.Identifier, sym, e.SourceSpan)

	body := b.bindBlock(e.Body).(*boundtree.BlockExpression)

	return &boundtree.ForExpression{
		Label:    e.Label,
		IsRanged: true,
		Ranged:   &boundtree.RangedForClause{Identifier: e.Ranged.Identifier, Iterable: iterable, ElementType: elemType, Reversed: reversed},
		Body:       body,
		SourceSpan: e.SourceSpan,
	}
}

func isRangeExpr(e boundtree.Expression) bool {
	_, ok := e.(*boundtree.RangeExpression)
	return ok
}

func (b *Binder) bindLegacyFor(e *ast.ForExpression) boundtree.Expression {
	decl := b.bindDeclarationStatement(e.Legacy.Declaration, e.SourceSpan)
	test := b.bindExpression(e.Legacy.Test)
	if !isPrim(test.Type(), types.Bool) && !test.Type().IsInvalid() {
		b.errorf(e.Legacy.Test.Span(), "for-loop test must be bool, got %s", test.Type())
	}
	step := b.bindExpression(e.Legacy.Step)
	body := b.bindBlock(e.Body).(*boundtree.BlockExpression)

	return &boundtree.ForExpression{
		Label:    e.Label,
		IsRanged: false,
		Legacy:   &boundtree.LegacyForClause{Declaration: decl, Test: test, Step: step},
		Body:       body,
		SourceSpan: e.SourceSpan,
	}
}
