package boundtree

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
)

func TestLiteralExpressionTypeIsItsOwnTy(t *testing.T) {
	lit := &LiteralExpression{Text: "5", Ty: types.NewPrimitive(types.I32)}
	if !types.Equal(lit.Type(), types.NewPrimitive(types.I32)) {
		t.Errorf("LiteralExpression.Type() = %v, want i32", lit.Type())
	}
}

func TestIdentifierExpressionTypeDelegatesToSymbol(t *testing.T) {
	sym := &Symbol{Name: "x", Kind: SymVariable, Ty: types.NewPrimitive(types.Bool)}
	ident := &IdentifierExpression{Sym: sym}
	if !types.Equal(ident.Type(), types.NewPrimitive(types.Bool)) {
		t.Errorf("IdentifierExpression.Type() = %v, want bool", ident.Type())
	}
}

func TestBinaryExpressionTypeIsOperatorReturnType(t *testing.T) {
	bin := &BinaryExpression{
		Operator: BoundBinaryOperator{
			Kind:       token.Plus,
			LeftType:   types.NewPrimitive(types.I32),
			RightType:  types.NewPrimitive(types.I32),
			ReturnType: types.NewPrimitive(types.I32),
		},
	}
	if !types.Equal(bin.Type(), types.NewPrimitive(types.I32)) {
		t.Errorf("BinaryExpression.Type() = %v, want i32", bin.Type())
	}
}

func TestUnaryExpressionTypeIsOperatorReturnType(t *testing.T) {
	un := &UnaryExpression{
		Operator: BoundUnaryOperator{
			Kind:        token.Minus,
			OperandType: types.NewPrimitive(types.I32),
			ReturnType:  types.NewPrimitive(types.I32),
		},
	}
	if !types.Equal(un.Type(), types.NewPrimitive(types.I32)) {
		t.Errorf("UnaryExpression.Type() = %v, want i32", un.Type())
	}
}

// TestRangeExpressionTypeIsTwoElementArray documents that a bound range's
// own Type() reports a 2-element array of its ElementType — the reason
// binder's ranged-for binding must special-case *RangeExpression before
// falling through to the generic VariantArray case.
func TestRangeExpressionTypeIsTwoElementArray(t *testing.T) {
	r := &RangeExpression{ElementType: types.NewPrimitive(types.I32)}
	ty := r.Type()
	if ty.Kind != types.VariantArray {
		t.Fatalf("RangeExpression.Type().Kind = %v, want VariantArray", ty.Kind)
	}
	if ty.ArrayCount == nil || *ty.ArrayCount != 2 {
		t.Errorf("RangeExpression.Type().ArrayCount = %v, want 2", ty.ArrayCount)
	}
	if !types.Equal(ty.ArrayBase, types.NewPrimitive(types.I32)) {
		t.Errorf("RangeExpression.Type().ArrayBase = %v, want i32", ty.ArrayBase)
	}
}

func TestIndexExpressionTypeIsElemType(t *testing.T) {
	idx := &IndexExpression{ElemType: types.NewPrimitive(types.Char)}
	if !types.Equal(idx.Type(), types.NewPrimitive(types.Char)) {
		t.Errorf("IndexExpression.Type() = %v, want char", idx.Type())
	}
}

func TestAccessExpressionTypeIsFieldType(t *testing.T) {
	acc := &AccessExpression{FieldIndex: 0, FieldType: types.NewPrimitive(types.I32)}
	if !types.Equal(acc.Type(), types.NewPrimitive(types.I32)) {
		t.Errorf("AccessExpression.Type() = %v, want i32", acc.Type())
	}
}

func TestArrayExpressionTypeCountsElements(t *testing.T) {
	arr := &ArrayExpression{
		ElemType: types.NewPrimitive(types.I32),
		Elements: []Expression{
			&LiteralExpression{Ty: types.NewPrimitive(types.I32)},
			&LiteralExpression{Ty: types.NewPrimitive(types.I32)},
			&LiteralExpression{Ty: types.NewPrimitive(types.I32)},
		},
	}
	ty := arr.Type()
	if ty.ArrayCount == nil || *ty.ArrayCount != 3 {
		t.Errorf("ArrayExpression.Type().ArrayCount = %v, want 3", ty.ArrayCount)
	}
}

func TestBlockExpressionTypeIsTrailingType(t *testing.T) {
	block := &BlockExpression{Ty: types.NewPrimitive(types.Bool)}
	if !types.Equal(block.Type(), types.NewPrimitive(types.Bool)) {
		t.Errorf("BlockExpression.Type() = %v, want bool", block.Type())
	}
}

func TestWhileExpressionTypeIsAlwaysVoid(t *testing.T) {
	w := &WhileExpression{}
	if !types.Equal(w.Type(), types.NewPrimitive(types.Void)) {
		t.Errorf("WhileExpression.Type() = %v, want void", w.Type())
	}
}

func TestForExpressionTypeIsAlwaysVoid(t *testing.T) {
	f := &ForExpression{}
	if !types.Equal(f.Type(), types.NewPrimitive(types.Void)) {
		t.Errorf("ForExpression.Type() = %v, want void", f.Type())
	}
}

func TestMatchExpressionTypeIsTy(t *testing.T) {
	m := &MatchExpression{Ty: types.NewPrimitive(types.I32)}
	if !types.Equal(m.Type(), types.NewPrimitive(types.I32)) {
		t.Errorf("MatchExpression.Type() = %v, want i32", m.Type())
	}
}

// TestExpressionStatementWrapsAnyExpression documents that every bound
// Statement family member implements the Statement interface via Span()
// alone — no Type() on the statement level, since statements are run for
// effect, not value.
func TestExpressionStatementWrapsAnyExpression(t *testing.T) {
	var s Statement = &ExpressionStatement{Expression: &LiteralExpression{Ty: types.NewPrimitive(types.Void)}}
	if s.Span() != (s.(*ExpressionStatement)).SourceSpan {
		t.Errorf("ExpressionStatement.Span() should equal its own SourceSpan field")
	}
}

func TestFunctionDeclarationDefaultsAreParallelToParameters(t *testing.T) {
	fn := &FunctionDeclaration{
		Name: "f",
		Parameters: []*Symbol{
			{Name: "a", Kind: SymVariable, Ty: types.NewPrimitive(types.I32)},
			{Name: "b", Kind: SymVariable, Ty: types.NewPrimitive(types.I32)},
		},
		Defaults: []Expression{nil, &LiteralExpression{Ty: types.NewPrimitive(types.I32)}},
	}
	if len(fn.Defaults) != len(fn.Parameters) {
		t.Fatalf("Defaults length %d should match Parameters length %d", len(fn.Defaults), len(fn.Parameters))
	}
	if fn.Defaults[0] != nil {
		t.Errorf("a required parameter's Defaults entry should be nil")
	}
	if fn.Defaults[1] == nil {
		t.Errorf("a defaulted parameter's Defaults entry should be non-nil")
	}
}
