package ast

import (
	"github.com/fosspointer/go-linc/internal/source"
)

func (*ExpressionStatement) statementNode()  {}
func (*DeclarationStatement) statementNode() {}
func (*ReturnStatement) statementNode()      {}
func (*BreakStatement) statementNode()       {}
func (*ContinueStatement) statementNode()    {}

// ExpressionStatement is an expression used for its side effect, followed
// by the statement terminator ';'.
type ExpressionStatement struct {
	Expression Expression
	SourceSpan source.Span
}

func (s *ExpressionStatement) Span() source.Span { return s.SourceSpan }

// DeclarationStatement wraps a block-scoped Declaration so it can appear
// among a block's Variant body entries.
type DeclarationStatement struct {
	Declaration Declaration
	SourceSpan  source.Span
}

func (s *DeclarationStatement) Span() source.Span { return s.SourceSpan }

// ReturnStatement is `return expr;`.
type ReturnStatement struct {
	Value      Expression // nil for a bare `return;` in a void function
	SourceSpan source.Span
}

func (s *ReturnStatement) Span() source.Span { return s.SourceSpan }

// BreakStatement is `break label?;`.
type BreakStatement struct {
	Label      string
	SourceSpan source.Span
}

func (s *BreakStatement) Span() source.Span { return s.SourceSpan }

// ContinueStatement is `continue label?;`.
type ContinueStatement struct {
	Label      string
	SourceSpan source.Span
}

func (s *ContinueStatement) Span() source.Span { return s.SourceSpan }
