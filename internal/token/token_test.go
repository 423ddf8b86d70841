package token

import "testing"

func TestBinaryPrecedenceOrdering(t *testing.T) {
	if BinaryPrecedence(Star) <= BinaryPrecedence(Plus) {
		t.Errorf("'*' should bind tighter than '+'")
	}
	if BinaryPrecedence(Plus) <= BinaryPrecedence(Equals) {
		t.Errorf("'+' should bind tighter than '=='")
	}
	if BinaryPrecedence(Equals) <= BinaryPrecedence(LogicalAnd) {
		t.Errorf("'==' should bind tighter than '&&'")
	}
	if BinaryPrecedence(LogicalAnd) <= BinaryPrecedence(LogicalOr) {
		t.Errorf("'&&' should bind tighter than '||'")
	}
	if BinaryPrecedence(LogicalOr) <= BinaryPrecedence(Assign) {
		t.Errorf("'||' should bind tighter than '='")
	}
}

func TestUnaryPrecedenceBindsTighterThanAnyBinary(t *testing.T) {
	for k := range (map[Kind]int{Assign: 0, LogicalOr: 0, LogicalAnd: 0, Equals: 0, BitwiseOr: 0, Plus: 0, Star: 0}) {
		if UnaryPrecedence() <= BinaryPrecedence(k) {
			t.Errorf("unary precedence should exceed binary precedence of %v", k)
		}
	}
}

func TestAssignmentOperatorClassification(t *testing.T) {
	if !Assign.IsAssignmentOperator() {
		t.Errorf("'=' should be an assignment operator")
	}
	if Assign.IsCompoundAssignment() {
		t.Errorf("'=' should not count as compound")
	}
	if !AddAssign.IsAssignmentOperator() || !AddAssign.IsCompoundAssignment() {
		t.Errorf("'+=' should be both an assignment and compound-assignment operator")
	}
	if Plus.IsAssignmentOperator() {
		t.Errorf("'+' should not be an assignment operator")
	}
}

func TestUnderlyingBinaryOp(t *testing.T) {
	tests := map[Kind]Kind{
		AddAssign: Plus,
		SubAssign: Minus,
		MulAssign: Star,
		DivAssign: Slash,
		ModAssign: Percent,
		Assign:    Invalid,
	}
	for op, want := range tests {
		if got := op.UnderlyingBinaryOp(); got != want {
			t.Errorf("%v.UnderlyingBinaryOp() = %v, want %v", op, got, want)
		}
	}
}

func TestAssociativity(t *testing.T) {
	if Assign.Associativity() != RightAssoc {
		t.Errorf("'=' should be right-associative")
	}
	if Plus.Associativity() != LeftAssoc {
		t.Errorf("'+' should be left-associative")
	}
}
