package token

import "github.com/fosspointer/go-linc/internal/source"

// Base tags a numeric literal's radix. The lexer does not range-check a
// literal; overflow wraps silently at the declared width when its text is
// parsed after binding.
type Base int

const (
	Decimal Base = iota
	Hex
	Binary
)

// Token is one lexical unit: its Kind, optional literal text, an optional
// numeric Base for integer/float literals, and the Span of source text it
// was scanned from.
type Token struct {
	Kind   Kind
	Value  string
	Base   Base
	Span   source.Span
	HasVal bool
}

// Associativity of a binary operator.
type Associativity int

const (
	LeftAssoc Associativity = iota
	RightAssoc
)

// binaryPrecedence assigns each binary operator a precedence tier (1..7)
// and associativity. Higher binds tighter.
var binaryPrecedence = map[Kind]int{
	Assign: 1, AddAssign: 1, SubAssign: 1, MulAssign: 1, DivAssign: 1, ModAssign: 1,
	LogicalOr: 2,
	LogicalAnd: 3,
	Equals:     4, NotEquals: 4, Greater: 4, Less: 4, GreaterEqual: 4, LessEqual: 4,
	BitwiseOr: 5, BitwiseXor: 5, BitwiseAnd: 5, ShiftLeft: 5, ShiftRight: 5,
	Plus: 6, Minus: 6,
	Star: 7, Slash: 7, Percent: 7,
}

var rightAssociative = map[Kind]bool{
	Assign: true, AddAssign: true, SubAssign: true, MulAssign: true, DivAssign: true, ModAssign: true,
}

// unaryPrecedence sits one tier above the highest binary tier so a unary
// operator always binds tighter than any binary combination.
const unaryPrecedence = 8

// BinaryPrecedence returns k's binary precedence, or 0 if k is not a
// binary operator (so a zero min-precedence parse loop never matches it).
func BinaryPrecedence(k Kind) int {
	return binaryPrecedence[k]
}

// Associativity returns k's associativity as a binary operator.
func (k Kind) Associativity() Associativity {
	if rightAssociative[k] {
		return RightAssoc
	}
	return LeftAssoc
}

// UnaryPrecedence returns the single precedence tier shared by every unary
// operator.
func UnaryPrecedence() int {
	return unaryPrecedence
}

// IsAssignmentOperator reports whether k is '=' or a compound-assignment
// operator.
func (k Kind) IsAssignmentOperator() bool {
	switch k {
	case Assign, AddAssign, SubAssign, MulAssign, DivAssign, ModAssign:
		return true
	default:
		return false
	}
}

// IsCompoundAssignment reports whether k is a compound-assignment operator
// (i.e. an assignment operator other than plain '=').
func (k Kind) IsCompoundAssignment() bool {
	switch k {
	case AddAssign, SubAssign, MulAssign, DivAssign, ModAssign:
		return true
	default:
		return false
	}
}

// UnderlyingBinaryOp maps a compound-assignment operator to the binary
// operator it implicitly applies (e.g. AddAssign -> Plus).
func (k Kind) UnderlyingBinaryOp() Kind {
	switch k {
	case AddAssign:
		return Plus
	case SubAssign:
		return Minus
	case MulAssign:
		return Star
	case DivAssign:
		return Slash
	case ModAssign:
		return Percent
	default:
		return Invalid
	}
}
