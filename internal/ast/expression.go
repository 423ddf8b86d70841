package ast

import (
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

func (*LiteralExpression) expressionNode()    {}
func (*IdentifierExpression) expressionNode() {}
func (*UnaryExpression) expressionNode()      {}
func (*BinaryExpression) expressionNode()     {}
func (*RangeExpression) expressionNode()      {}
func (*IndexExpression) expressionNode()      {}
func (*AccessExpression) expressionNode()     {}
func (*CallExpression) expressionNode()       {}
func (*ConversionExpression) expressionNode() {}
func (*ArrayExpression) expressionNode()      {}
func (*StructureExpression) expressionNode()  {}
func (*BlockExpression) expressionNode()      {}
func (*IfExpression) expressionNode()         {}
func (*WhileExpression) expressionNode()      {}
func (*ForExpression) expressionNode()        {}
func (*MatchExpression) expressionNode()      {}

// LiteralExpression is a single literal token (number, string, char, bool).
type LiteralExpression struct {
	Token      token.Token
	SourceSpan source.Span
}

func (e *LiteralExpression) Span() source.Span { return e.SourceSpan }

// IdentifierExpression references a declared name.
type IdentifierExpression struct {
	Name       string
	SourceSpan source.Span
}

func (e *IdentifierExpression) Span() source.Span { return e.SourceSpan }

// UnaryExpression is a prefix operator applied to an operand, including
// '++'/'--' as prefix-only mutating operators.
type UnaryExpression struct {
	Operator   token.Token
	Operand    Expression
	SourceSpan source.Span
}

func (e *UnaryExpression) Span() source.Span { return e.SourceSpan }

// BinaryExpression is a left-operator-right triple produced by the Pratt
// loop.
type BinaryExpression struct {
	Left       Expression
	Operator   token.Token
	Right      Expression
	SourceSpan source.Span
}

func (e *BinaryExpression) Span() source.Span { return e.SourceSpan }

// RangeExpression is `a..b`, with an optional leading marker recording
// that the range was written in reverse; the binder/interpreter read
// Reversed to decide iteration direction rather than re-deriving it from
// Begin/End at runtime.
type RangeExpression struct {
	Begin      Expression
	End        Expression
	Reversed   bool
	SourceSpan source.Span
}

func (e *RangeExpression) Span() source.Span { return e.SourceSpan }

// IndexExpression is a modifier-chain `a[i]`.
type IndexExpression struct {
	Array      Expression
	Index      Expression
	SourceSpan source.Span
}

func (e *IndexExpression) Span() source.Span { return e.SourceSpan }

// AccessExpression is a modifier-chain `a.field`.
type AccessExpression struct {
	Target     Expression
	Field      string
	SourceSpan source.Span
}

func (e *AccessExpression) Span() source.Span { return e.SourceSpan }

// CallExpression is `name(args...)`; IsExternal is set by the parser's
// definition table (its one use of that table) and re-derived
// authoritatively by the binder.
type CallExpression struct {
	Callee     string
	Arguments  []Expression
	IsExternal bool
	SourceSpan source.Span
}

func (e *CallExpression) Span() source.Span { return e.SourceSpan }

// ConversionExpression is `as T(x)`, grounded on linc's own
// ConversionExpression.hpp.
type ConversionExpression struct {
	TargetType TypeExpression
	Operand    Expression
	SourceSpan source.Span
}

func (e *ConversionExpression) Span() source.Span { return e.SourceSpan }

// ArrayExpression is an array literal `[e1, e2, ...]`.
type ArrayExpression struct {
	Elements   []Expression
	SourceSpan source.Span
}

func (e *ArrayExpression) Span() source.Span { return e.SourceSpan }

// StructureExpression is a record literal `Name{field: expr, ...}`.
type StructureExpression struct {
	TypeName   string
	FieldNames []string
	FieldVals  []Expression
	SourceSpan source.Span
}

func (e *StructureExpression) Span() source.Span { return e.SourceSpan }

// BlockExpression is `{ variant* trailing-expr? }`; the block's value is
// Trailing, nil when the block ends in a statement/declaration only.
type BlockExpression struct {
	Body       []Variant
	Trailing   Expression
	SourceSpan source.Span
}

func (e *BlockExpression) Span() source.Span { return e.SourceSpan }

// IfExpression is `if cond thenBlock (else elseBlock)?`; expression-form,
// so its value is whichever branch is taken.
type IfExpression struct {
	Condition  Expression
	Then       *BlockExpression
	Else       Expression // nil, *BlockExpression, or a nested *IfExpression
	SourceSpan source.Span
}

func (e *IfExpression) Span() source.Span { return e.SourceSpan }

// WhileExpression is `~label? while cond body (finally finallyBlock)? (else elseBlock)?`.
type WhileExpression struct {
	Label      string
	Condition  Expression
	Body       *BlockExpression
	Finally    *BlockExpression
	Else       *BlockExpression
	SourceSpan source.Span
}

func (e *WhileExpression) Span() source.Span { return e.SourceSpan }

// LegacyForClause is `decl; test; step`.
type LegacyForClause struct {
	Declaration Declaration
	Test        Expression
	Step        Expression
}

// RangedForClause is `ident in iterable`.
type RangedForClause struct {
	Identifier string
	Iterable   Expression
}

// ForExpression carries exactly one of Legacy or Ranged, selected by IsRanged.
type ForExpression struct {
	Label      string
	IsRanged   bool
	Legacy     *LegacyForClause
	Ranged     *RangedForClause
	Body       *BlockExpression
	SourceSpan source.Span
}

func (e *ForExpression) Span() source.Span { return e.SourceSpan }

// MatchArm is one `pattern -> expr` arm of a match expression.
type MatchArm struct {
	EnumName    string
	VariantName string
	BindName    string // "" if the variant carries no payload or it's discarded
	Body        Expression
	SourceSpan  source.Span
}

func (a MatchArm) Span() source.Span { return a.SourceSpan }

// MatchExpression is `match value { arm, ... }`.
type MatchExpression struct {
	Value      Expression
	Arms       []MatchArm
	SourceSpan source.Span
}

func (e *MatchExpression) Span() source.Span { return e.SourceSpan }
