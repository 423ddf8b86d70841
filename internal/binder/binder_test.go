package binder

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/lexer"
	"github.com/fosspointer/go-linc/internal/parser"
	"github.com/fosspointer/go-linc/internal/types"
)

func bindSource(t *testing.T, src string) (*boundtree.Program, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	toks := lexer.New(src, "<test>", sink).Tokenize()
	prog := parser.New(toks, sink).ParseProgram()
	if sink.HasError() {
		t.Fatalf("unexpected parse errors: %+v", sink.Reports())
	}
	bound := New(sink).Bind(prog)
	return bound, sink
}

func mainReturnExpr(t *testing.T, bound *boundtree.Program) boundtree.Expression {
	t.Helper()
	fn, ok := bound.Functions["main"]
	if !ok {
		t.Fatalf("no bound function named main")
	}
	block, ok := fn.Body.(*boundtree.BlockExpression)
	if !ok {
		t.Fatalf("expected main's body to be a BlockExpression, got %T", fn.Body)
	}
	for _, stmt := range block.Body {
		if ret, ok := stmt.(*boundtree.ReturnStatement); ok {
			return ret.Value
		}
	}
	t.Fatalf("main has no return statement")
	return nil
}

func TestBindArithmeticResolvesToI32(t *testing.T) {
	bound, sink := bindSource(t, `fn main(): i32 { return 2 + 3 * 4; }`)
	if sink.HasError() {
		t.Fatalf("unexpected bind errors: %+v", sink.Reports())
	}
	expr := mainReturnExpr(t, bound)
	if !types.Equal(expr.Type(), types.NewPrimitive(types.I32)) {
		t.Errorf("return expression type = %v, want i32", expr.Type())
	}
}

func TestBindUndeclaredIdentifierReportsError(t *testing.T) {
	_, sink := bindSource(t, `fn main(): i32 { return missing; }`)
	if !sink.HasError() {
		t.Fatalf("expected an error for an undeclared identifier")
	}
}

func TestBindRedeclarationInSameScopeReportsError(t *testing.T) {
	_, sink := bindSource(t, `fn main(): i32 { x := 1; x := 2; return x; }`)
	if !sink.HasError() {
		t.Fatalf("expected an error for redeclaring 'x' in the same scope")
	}
}

func TestBindAssignmentToImmutableReportsError(t *testing.T) {
	_, sink := bindSource(t, `fn main(): i32 { x := 1; x = 2; return x; }`)
	if !sink.HasError() {
		t.Fatalf("expected an error assigning to a non-mut binding")
	}
}

func TestBindAssignmentToMutableIsAccepted(t *testing.T) {
	_, sink := bindSource(t, `fn main(): i32 { x: mut i32 = 1; x = 2; return x; }`)
	if sink.HasError() {
		t.Fatalf("unexpected bind errors for a mut binding: %+v", sink.Reports())
	}
}

func TestBindOversizedSuffixedLiteralIsNotRejectedAtBindTime(t *testing.T) {
	// spec.md §4.6.6: a literal that overflows its own suffix's declared
	// width is not a binder error — it wraps silently when the interpreter
	// later materialises it into a runtime value (see LiteralUintValue).
	bound, sink := bindSource(t, `fn main(): u8 { return 256u8; }`)
	if sink.HasError() {
		t.Fatalf("unexpected bind errors: %+v", sink.Reports())
	}
	expr := mainReturnExpr(t, bound)
	lit, ok := expr.(*boundtree.LiteralExpression)
	if !ok {
		t.Fatalf("expected a LiteralExpression, got %T", expr)
	}
	if lit.Text != "256" {
		t.Errorf("bound literal text should stay as written, got %q", lit.Text)
	}
	if !types.Equal(lit.Ty, types.NewPrimitive(types.U8)) {
		t.Errorf("literal type = %v, want u8 (from its own suffix)", lit.Ty)
	}

	wrapped := LiteralUintValue(lit.Text, lit.Base, types.U8)
	if wrapped != 0 {
		t.Errorf("LiteralUintValue(256, u8) = %d, want 0 (wraps at 8 bits)", wrapped)
	}
}

func TestBindMismatchedOperandTypesReportsError(t *testing.T) {
	_, sink := bindSource(t, `fn main(): i32 { return 1 + "s"; }`)
	if !sink.HasError() {
		t.Fatalf("expected an error combining i32 and string with '+'")
	}
}

func TestBindRangedForOverArrayUsesElementType(t *testing.T) {
	bound, sink := bindSource(t, `fn main(): i32 { i: mut i32 = 0; for x in [1, 2, 3] { i += x; } return i; }`)
	if sink.HasError() {
		t.Fatalf("unexpected bind errors: %+v", sink.Reports())
	}
	fn := bound.Functions["main"]
	block := fn.Body.(*boundtree.BlockExpression)
	var forExpr *boundtree.ForExpression
	for _, stmt := range block.Body {
		if es, ok := stmt.(*boundtree.ExpressionStatement); ok {
			if fe, ok := es.Expression.(*boundtree.ForExpression); ok {
				forExpr = fe
			}
		}
	}
	if forExpr == nil {
		t.Fatalf("expected a bound ForExpression among main's statements")
	}
	if !forExpr.IsRanged || forExpr.Ranged == nil {
		t.Fatalf("expected a ranged for-clause")
	}
	if !types.Equal(forExpr.Ranged.ElementType, types.NewPrimitive(types.I32)) {
		t.Errorf("ranged for element type = %v, want i32", forExpr.Ranged.ElementType)
	}
}

func TestBindMatchArmsUnifyPermissively(t *testing.T) {
	bound, sink := bindSource(t, `enum E { A(i32), B(i32) }
fn main(): i32 {
	e := E::A(5);
	return match e { E::A(n) -> n, E::B(n) -> -n };
}`)
	if sink.HasError() {
		t.Fatalf("unexpected bind errors: %+v", sink.Reports())
	}
	expr := mainReturnExpr(t, bound)
	if !types.Equal(expr.Type(), types.NewPrimitive(types.I32)) {
		t.Errorf("match expression type = %v, want i32", expr.Type())
	}
}

func TestBindBreakOutsideLoopReportsError(t *testing.T) {
	_, sink := bindSource(t, `fn main(): i32 { break; return 0; }`)
	if !sink.HasError() {
		t.Fatalf("expected an error for 'break' outside any loop")
	}
}

func TestBindBreakWithUnknownLabelReportsError(t *testing.T) {
	_, sink := bindSource(t, `fn main(): i32 { while true { break elsewhere; } return 0; }`)
	if !sink.HasError() {
		t.Fatalf("expected an error for a break label that names no enclosing loop")
	}
}

func TestBindFunctionHoistingAllowsForwardReference(t *testing.T) {
	// spec.md §4.6.1: declarations are hoisted so mutually/forward-referencing
	// functions resolve regardless of textual order.
	_, sink := bindSource(t, `
fn main(): i32 { return helper(); }
fn helper(): i32 { return 1; }
`)
	if sink.HasError() {
		t.Fatalf("unexpected bind errors for a forward function reference: %+v", sink.Reports())
	}
}
