package fold

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
)

func intLiteral(text string, prim types.Primitive) *boundtree.LiteralExpression {
	kind := token.I32Literal
	if k, ok := signedLiteralKind[prim]; ok {
		kind = k
	} else if k, ok := unsignedLiteralKind[prim]; ok {
		kind = k
	}
	return &boundtree.LiteralExpression{TokenKind: kind, Text: text, Base: token.Decimal, Ty: types.NewPrimitive(prim)}
}

func boolLiteral(v bool) *boundtree.LiteralExpression {
	kind := token.FalseLiteral
	text := "false"
	if v {
		kind, text = token.TrueLiteral, "true"
	}
	return &boundtree.LiteralExpression{TokenKind: kind, Text: text, Ty: types.NewPrimitive(types.Bool)}
}

func plusOperator(ty *types.Type) boundtree.BoundBinaryOperator {
	return boundtree.BoundBinaryOperator{Kind: token.Plus, LeftType: ty, RightType: ty, ReturnType: ty}
}

func wrapFunction(body boundtree.Expression) *boundtree.Program {
	return &boundtree.Program{
		Functions: map[string]*boundtree.FunctionDeclaration{
			"main": {Name: "main", ReturnType: types.NewPrimitive(types.I32), Body: body},
		},
	}
}

func TestFoldLiteralArithmeticCollapses(t *testing.T) {
	bin := &boundtree.BinaryExpression{
		Left:     intLiteral("2", types.I32),
		Operator: plusOperator(types.NewPrimitive(types.I32)),
		Right:    intLiteral("3", types.I32),
	}
	out := Fold(wrapFunction(bin))
	result := out.Functions["main"].Body
	lit, ok := result.(*boundtree.LiteralExpression)
	if !ok {
		t.Fatalf("expected folding '2 + 3' to collapse to a LiteralExpression, got %T", result)
	}
	if lit.Text != "5" {
		t.Errorf("folded literal text = %q, want %q", lit.Text, "5")
	}
}

func TestFoldDisablingLiteralPassLeavesArithmeticUnfolded(t *testing.T) {
	bin := &boundtree.BinaryExpression{
		Left:     intLiteral("2", types.I32),
		Operator: plusOperator(types.NewPrimitive(types.I32)),
		Right:    intLiteral("3", types.I32),
	}
	out := Fold(wrapFunction(bin), WithPass(PassLiteral, false))
	result := out.Functions["main"].Body
	if _, ok := result.(*boundtree.BinaryExpression); !ok {
		t.Fatalf("expected the binary expression to survive unfolded with PassLiteral disabled, got %T", result)
	}
}

// TestFoldShortCircuitSkipsRightOperand confirms a false literal on the
// left of '&&' short-circuits to that literal without ever trying to fold
// the (here, unfoldable) right operand.
func TestFoldShortCircuitSkipsRightOperand(t *testing.T) {
	bin := &boundtree.BinaryExpression{
		Left:     boolLiteral(false),
		Operator: boundtree.BoundBinaryOperator{Kind: token.LogicalAnd, ReturnType: types.NewPrimitive(types.Bool)},
		Right:    &boundtree.IdentifierExpression{Sym: &boundtree.Symbol{Name: "x", Ty: types.NewPrimitive(types.Bool)}},
	}
	out := Fold(wrapFunction(bin))
	result := out.Functions["main"].Body
	lit, ok := result.(*boundtree.LiteralExpression)
	if !ok {
		t.Fatalf("expected 'false && x' to short-circuit to the left literal, got %T", result)
	}
	if lit.Text != "false" {
		t.Errorf("short-circuited literal text = %q, want %q", lit.Text, "false")
	}
}

func TestFoldOrShortCircuitsOnTrueLeft(t *testing.T) {
	bin := &boundtree.BinaryExpression{
		Left:     boolLiteral(true),
		Operator: boundtree.BoundBinaryOperator{Kind: token.LogicalOr, ReturnType: types.NewPrimitive(types.Bool)},
		Right:    &boundtree.IdentifierExpression{Sym: &boundtree.Symbol{Name: "x", Ty: types.NewPrimitive(types.Bool)}},
	}
	out := Fold(wrapFunction(bin))
	result := out.Functions["main"].Body
	lit, ok := result.(*boundtree.LiteralExpression)
	if !ok || lit.Text != "true" {
		t.Fatalf("expected 'true || x' to short-circuit to the left literal, got %+v", result)
	}
}

func TestFoldIfWithLiteralTrueCollapsesToThenBranch(t *testing.T) {
	then := &boundtree.BlockExpression{Trailing: intLiteral("1", types.I32), Ty: types.NewPrimitive(types.I32)}
	els := &boundtree.BlockExpression{Trailing: intLiteral("2", types.I32), Ty: types.NewPrimitive(types.I32)}
	ifExpr := &boundtree.IfExpression{
		Condition: boolLiteral(true),
		Then:      then,
		Else:      els,
		Ty:        types.NewPrimitive(types.I32),
	}
	out := Fold(wrapFunction(ifExpr))
	result := out.Functions["main"].Body
	block, ok := result.(*boundtree.BlockExpression)
	if !ok {
		t.Fatalf("expected collapsing to the then-block, got %T", result)
	}
	lit, ok := block.Trailing.(*boundtree.LiteralExpression)
	if !ok || lit.Text != "1" {
		t.Errorf("expected the then-branch's literal 1 to survive, got %+v", block.Trailing)
	}
}

func TestFoldIfWithLiteralFalseNoElseCollapsesToEmptyVoidBlock(t *testing.T) {
	then := &boundtree.BlockExpression{Trailing: intLiteral("1", types.I32), Ty: types.NewPrimitive(types.I32)}
	ifExpr := &boundtree.IfExpression{
		Condition: boolLiteral(false),
		Then:      then,
		Ty:        types.NewPrimitive(types.I32),
	}
	out := Fold(wrapFunction(ifExpr))
	result := out.Functions["main"].Body
	block, ok := result.(*boundtree.BlockExpression)
	if !ok {
		t.Fatalf("expected a collapsed empty block, got %T", result)
	}
	if block.Trailing != nil || len(block.Body) != 0 {
		t.Errorf("expected an empty block, got %+v", block)
	}
}

func TestFoldDisablingBranchPassLeavesIfExpressionIntact(t *testing.T) {
	then := &boundtree.BlockExpression{Trailing: intLiteral("1", types.I32), Ty: types.NewPrimitive(types.I32)}
	ifExpr := &boundtree.IfExpression{Condition: boolLiteral(true), Then: then, Ty: types.NewPrimitive(types.I32)}
	out := Fold(wrapFunction(ifExpr), WithPass(PassBranch, false))
	result := out.Functions["main"].Body
	if _, ok := result.(*boundtree.IfExpression); !ok {
		t.Fatalf("expected the IfExpression to survive with PassBranch disabled, got %T", result)
	}
}

// TestFoldIdentifierOperandPreventsArithmeticFold confirms a binary
// expression with a non-literal operand is rebuilt structurally rather
// than collapsed, since the folder has no constant value to compute with.
func TestFoldIdentifierOperandPreventsArithmeticFold(t *testing.T) {
	bin := &boundtree.BinaryExpression{
		Left:     &boundtree.IdentifierExpression{Sym: &boundtree.Symbol{Name: "x", Ty: types.NewPrimitive(types.I32)}},
		Operator: plusOperator(types.NewPrimitive(types.I32)),
		Right:    intLiteral("3", types.I32),
	}
	out := Fold(wrapFunction(bin))
	result := out.Functions["main"].Body
	folded, ok := result.(*boundtree.BinaryExpression)
	if !ok {
		t.Fatalf("expected the binary expression to survive (not foldable), got %T", result)
	}
	if _, ok := folded.Left.(*boundtree.IdentifierExpression); !ok {
		t.Errorf("expected the identifier operand to be preserved, got %T", folded.Left)
	}
}

func TestFoldPreservesSpanOnRebuiltNodes(t *testing.T) {
	span := source.Span{File: "f", LineStart: 1, LineEnd: 1, ColStart: 1, ColEnd: 5}
	bin := &boundtree.BinaryExpression{
		Left:       &boundtree.IdentifierExpression{Sym: &boundtree.Symbol{Name: "x", Ty: types.NewPrimitive(types.I32)}},
		Operator:   plusOperator(types.NewPrimitive(types.I32)),
		Right:      intLiteral("3", types.I32),
		SourceSpan: span,
	}
	out := Fold(wrapFunction(bin))
	result := out.Functions["main"].Body
	if result.Span() != span {
		t.Errorf("folded node span = %v, want %v", result.Span(), span)
	}
}
