package ast

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/source"
)

func span(file string, line, colStart, colEnd int) source.Span {
	return source.Span{File: file, LineStart: line, LineEnd: line, ColStart: colStart, ColEnd: colEnd}
}

func TestVariantSpanPicksWhicheverFieldIsSet(t *testing.T) {
	declSpan := span("f", 1, 1, 5)
	v := Variant{Declaration: &TypedVariableDeclaration{Name: "x", SourceSpan: declSpan}}
	if v.Span() != declSpan {
		t.Errorf("Variant.Span() = %v, want the Declaration's span %v", v.Span(), declSpan)
	}

	stmtSpan := span("f", 2, 1, 5)
	v = Variant{Statement: &ReturnStatement{SourceSpan: stmtSpan}}
	if v.Span() != stmtSpan {
		t.Errorf("Variant.Span() = %v, want the Statement's span %v", v.Span(), stmtSpan)
	}

	exprSpan := span("f", 3, 1, 5)
	v = Variant{Expression: &IdentifierExpression{Name: "y", SourceSpan: exprSpan}}
	if v.Span() != exprSpan {
		t.Errorf("Variant.Span() = %v, want the Expression's span %v", v.Span(), exprSpan)
	}
}

func TestVariantSpanZeroValueWhenEmpty(t *testing.T) {
	var v Variant
	if v.Span() != (source.Span{}) {
		t.Errorf("empty Variant.Span() = %v, want the zero Span", v.Span())
	}
}

func TestNodeListClauseSpanIsTheListSpan(t *testing.T) {
	listSpan := span("f", 1, 1, 20)
	c := NodeListClause[*IdentifierExpression]{
		Items:    []*IdentifierExpression{{Name: "a", SourceSpan: span("f", 1, 1, 2)}},
		ListSpan: listSpan,
	}
	if c.Span() != listSpan {
		t.Errorf("NodeListClause.Span() = %v, want %v", c.Span(), listSpan)
	}
}

func TestVariantClausePicksASideOnIsA(t *testing.T) {
	aSpan := span("f", 1, 1, 2)
	bSpan := span("f", 2, 1, 2)
	c := VariantClause[*IdentifierExpression, *LiteralExpression]{
		A:    &IdentifierExpression{Name: "a", SourceSpan: aSpan},
		B:    &LiteralExpression{SourceSpan: bSpan},
		IsA:  true,
	}
	if c.Span() != aSpan {
		t.Errorf("VariantClause.Span() with IsA=true = %v, want the A span %v", c.Span(), aSpan)
	}

	c.IsA = false
	if c.Span() != bSpan {
		t.Errorf("VariantClause.Span() with IsA=false = %v, want the B span %v", c.Span(), bSpan)
	}
}

func TestProgramSpanIsSourceSpan(t *testing.T) {
	s := span("f", 1, 1, 100)
	p := &Program{SourceSpan: s}
	if p.Span() != s {
		t.Errorf("Program.Span() = %v, want %v", p.Span(), s)
	}
}

// TestForExpressionCarriesExactlyOneClause documents the IsRanged/Legacy/
// Ranged invariant (spec.md §4.6.7): nothing in the ast package enforces
// this structurally, so the parser is solely responsible for setting
// exactly one of Legacy/Ranged consistently with IsRanged.
func TestForExpressionCarriesExactlyOneClause(t *testing.T) {
	ranged := &ForExpression{
		IsRanged: true,
		Ranged:   &RangedForClause{Identifier: "x", Iterable: &IdentifierExpression{Name: "xs"}},
		Body:     &BlockExpression{},
	}
	if ranged.Legacy != nil {
		t.Errorf("a ranged ForExpression should leave Legacy nil")
	}

	legacy := &ForExpression{
		IsRanged: false,
		Legacy: &LegacyForClause{
			Declaration: &InferredVariableDeclaration{Name: "i"},
			Test:        &IdentifierExpression{Name: "i"},
			Step:        &IdentifierExpression{Name: "i"},
		},
		Body: &BlockExpression{},
	}
	if legacy.Ranged != nil {
		t.Errorf("a legacy ForExpression should leave Ranged nil")
	}
}

// TestMatchArmBindNameEmptyMeansDiscarded documents that a "" BindName means
// the payload, if any, is discarded rather than bound to a name.
func TestMatchArmBindNameEmptyMeansDiscarded(t *testing.T) {
	arm := MatchArm{EnumName: "E", VariantName: "A", BindName: ""}
	if arm.BindName != "" {
		t.Errorf("expected an empty BindName to mean a discarded payload")
	}
}

func TestIfExpressionElseHoldsEitherBlockOrNestedIf(t *testing.T) {
	block := &IfExpression{Else: &BlockExpression{}}
	if _, ok := block.Else.(*BlockExpression); !ok {
		t.Errorf("expected Else to accept a *BlockExpression, got %T", block.Else)
	}

	chained := &IfExpression{Else: &IfExpression{}}
	if _, ok := chained.Else.(*IfExpression); !ok {
		t.Errorf("expected Else to accept a nested *IfExpression for else-if chaining, got %T", chained.Else)
	}
}
