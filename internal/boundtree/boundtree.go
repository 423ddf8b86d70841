// Package boundtree defines linc's bound tree: the tree produced by
// package binder, parallel in shape to package ast but with every
// expression carrying its resolved types.Type and every operator
// resolved to a BoundBinaryOperator/BoundUnaryOperator.
package boundtree

import (
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
	"github.com/fosspointer/go-linc/internal/types"
)

// Expression is the closed family of bound expression nodes.
type Expression interface {
	Span() source.Span
	Type() *types.Type
}

// BoundBinaryOperator records the resolved operand/result types of a
// binary operator application, computed by the binder's operator-dispatch
// tables.
type BoundBinaryOperator struct {
	Kind       token.Kind
	LeftType   *types.Type
	RightType  *types.Type
	ReturnType *types.Type
}

// BoundUnaryOperator is the unary counterpart.
type BoundUnaryOperator struct {
	Kind       token.Kind
	OperandType *types.Type
	ReturnType  *types.Type
}

type LiteralExpression struct {
	TokenKind token.Kind
	Text      string
	Base      token.Base
	Ty        *types.Type
	SourceSpan source.Span
}

func (e *LiteralExpression) Span() source.Span { return e.SourceSpan }
func (e *LiteralExpression) Type() *types.Type { return e.Ty }

// Symbol is what an identifier resolves to: the kind of binding plus
// its (possibly function) type.
type SymbolKind int

const (
	SymVariable SymbolKind = iota
	SymFunction
	SymExternal
)

type Symbol struct {
	Name    string
	Kind    SymbolKind
	Ty      *types.Type
	Mutable bool
}

type IdentifierExpression struct {
	Sym        *Symbol
	SourceSpan source.Span
}

func (e *IdentifierExpression) Span() source.Span { return e.SourceSpan }
func (e *IdentifierExpression) Type() *types.Type { return e.Sym.Ty }

type UnaryExpression struct {
	Operator   BoundUnaryOperator
	Operand    Expression
	SourceSpan source.Span
}

func (e *UnaryExpression) Span() source.Span { return e.SourceSpan }
func (e *UnaryExpression) Type() *types.Type { return e.Operator.ReturnType }

type BinaryExpression struct {
	Left       Expression
	Operator   BoundBinaryOperator
	Right      Expression
	SourceSpan source.Span
}

func (e *BinaryExpression) Span() source.Span { return e.SourceSpan }
func (e *BinaryExpression) Type() *types.Type { return e.Operator.ReturnType }

// RangeExpression is a bound `a..b`; ElementType is Begin/End's common
// primitive type.
type RangeExpression struct {
	Begin, End  Expression
	Reversed    bool
	ElementType *types.Type
	SourceSpan  source.Span
}

func (e *RangeExpression) Span() source.Span { return e.SourceSpan }
func (e *RangeExpression) Type() *types.Type {
	n := uint64(2)
	return types.NewArray(e.ElementType, &n)
}

type IndexExpression struct {
	Array      Expression
	Index      Expression
	ElemType   *types.Type
	SourceSpan source.Span
}

func (e *IndexExpression) Span() source.Span { return e.SourceSpan }
func (e *IndexExpression) Type() *types.Type { return e.ElemType }

type AccessExpression struct {
	Target     Expression
	FieldIndex int
	FieldType  *types.Type
	SourceSpan source.Span
}

func (e *AccessExpression) Span() source.Span { return e.SourceSpan }
func (e *AccessExpression) Type() *types.Type { return e.FieldType }

// CallExpression is a bound call, ordinary or external. Callee names the
// resolved function or external for the interpreter's dispatch.
type CallExpression struct {
	Callee     string
	IsExternal bool
	Arguments  []Expression
	ReturnType *types.Type
	SourceSpan source.Span
}

func (e *CallExpression) Span() source.Span { return e.SourceSpan }
func (e *CallExpression) Type() *types.Type { return e.ReturnType }

type ConversionExpression struct {
	Target     *types.Type
	Operand    Expression
	SourceSpan source.Span
}

func (e *ConversionExpression) Span() source.Span { return e.SourceSpan }
func (e *ConversionExpression) Type() *types.Type { return e.Target }

type ArrayExpression struct {
	ElemType   *types.Type
	Elements   []Expression
	SourceSpan source.Span
}

func (e *ArrayExpression) Span() source.Span { return e.SourceSpan }
func (e *ArrayExpression) Type() *types.Type {
	n := uint64(len(e.Elements))
	return types.NewArray(e.ElemType, &n)
}

type StructureExpression struct {
	Ty         *types.Type
	FieldVals  []Expression
	SourceSpan source.Span
}

func (e *StructureExpression) Span() source.Span { return e.SourceSpan }
func (e *StructureExpression) Type() *types.Type { return e.Ty }

// BlockExpression is a bound block; its Type is Trailing's type, or void.
type BlockExpression struct {
	Body       []Statement
	Trailing   Expression
	Ty         *types.Type
	SourceSpan source.Span
}

func (e *BlockExpression) Span() source.Span { return e.SourceSpan }
func (e *BlockExpression) Type() *types.Type { return e.Ty }

type IfExpression struct {
	Condition  Expression
	Then       *BlockExpression
	Else       Expression
	Ty         *types.Type
	SourceSpan source.Span
}

func (e *IfExpression) Span() source.Span { return e.SourceSpan }
func (e *IfExpression) Type() *types.Type { return e.Ty }

type WhileExpression struct {
	Label      string
	Condition  Expression
	Body       *BlockExpression
	Finally    *BlockExpression
	Else       *BlockExpression
	SourceSpan source.Span
}

func (e *WhileExpression) Span() source.Span { return e.SourceSpan }
func (e *WhileExpression) Type() *types.Type { return types.NewPrimitive(types.Void) }

type LegacyForClause struct {
	Declaration Statement
	Test        Expression
	Step        Expression
}

type RangedForClause struct {
	Identifier  string
	Iterable    Expression
	ElementType *types.Type
	Reversed    bool
}

type ForExpression struct {
	Label      string
	IsRanged   bool
	Legacy     *LegacyForClause
	Ranged     *RangedForClause
	Body       *BlockExpression
	SourceSpan source.Span
}

func (e *ForExpression) Span() source.Span { return e.SourceSpan }
func (e *ForExpression) Type() *types.Type { return types.NewPrimitive(types.Void) }

type MatchArm struct {
	VariantIndex int
	BindName     string
	Body         Expression
}

type MatchExpression struct {
	Value      Expression
	EnumType   *types.Type
	Arms       []MatchArm
	Ty         *types.Type
	SourceSpan source.Span
}

func (e *MatchExpression) Span() source.Span { return e.SourceSpan }
func (e *MatchExpression) Type() *types.Type { return e.Ty }

// Statement is the closed family of bound statement nodes.
type Statement interface {
	Span() source.Span
}

type ExpressionStatement struct {
	Expression Expression
	SourceSpan source.Span
}

func (s *ExpressionStatement) Span() source.Span { return s.SourceSpan }

type VariableDeclaration struct {
	Sym        *Symbol
	Value      Expression // nil when the declared type supplies a zero value
	SourceSpan source.Span
}

func (s *VariableDeclaration) Span() source.Span { return s.SourceSpan }

type ReturnStatement struct {
	Value      Expression
	SourceSpan source.Span
}

func (s *ReturnStatement) Span() source.Span { return s.SourceSpan }

type BreakStatement struct {
	Label      string
	SourceSpan source.Span
}

func (s *BreakStatement) Span() source.Span { return s.SourceSpan }

type ContinueStatement struct {
	Label      string
	SourceSpan source.Span
}

func (s *ContinueStatement) Span() source.Span { return s.SourceSpan }

// FunctionDeclaration is a bound function. A monomorphised generic
// instance is a FunctionDeclaration of its own, stored in
// Program.Functions under its mangled name<T…> key.
type FunctionDeclaration struct {
	Name       string
	Parameters []*Symbol
	Defaults   []Expression // parallel to Parameters; nil entry means required
	ReturnType *types.Type
	Body       Expression
	SourceSpan source.Span
}

// Program is the root of the bound tree: every top-level function,
// structure, and enumeration declaration the binder accepted.
type Program struct {
	Functions     map[string]*FunctionDeclaration
	Structures    map[string]*types.Type
	Enumerations  map[string]*types.Type
	SourceSpan    source.Span
}
