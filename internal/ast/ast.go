// Package ast defines linc's unbound tree: the syntax produced by the
// parser before name resolution or typing. The three node families
// (Expression, Statement, Declaration) are closed Go interfaces with an
// unexported marker method rather than a class hierarchy with
// downcasting — callers switch on a concrete type in a type switch; the
// Go toolchain does not check such a switch for exhaustiveness.
package ast

import "github.com/fosspointer/go-linc/internal/source"

// Node is the common capability of every tree node: it knows its own span.
type Node interface {
	Span() source.Span
}

// Expression is the closed family of expression-form nodes. Every
// expression can appear as a statement or a block's trailing value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is the closed family of statement-form nodes.
type Statement interface {
	Node
	statementNode()
}

// Declaration is the closed family of top-level and block-scoped
// declaration nodes.
type Declaration interface {
	Node
	declarationNode()
}

// Variant is the result of parsing a block-body position, which yields
// exactly one of a Declaration, Statement, or Expression.
type Variant struct {
	Declaration Declaration
	Statement   Statement
	Expression  Expression
}

func (v Variant) Span() source.Span {
	switch {
	case v.Declaration != nil:
		return v.Declaration.Span()
	case v.Statement != nil:
		return v.Statement.Span()
	case v.Expression != nil:
		return v.Expression.Span()
	default:
		return source.Span{}
	}
}

// NodeListClause is a reusable delimited list of T.
type NodeListClause[T Node] struct {
	Items       []T
	ListSpan    source.Span
}

func (c NodeListClause[T]) Span() source.Span { return c.ListSpan }

// VariantClause holds either an A or a B, used where the grammar allows
// two alternative sub-forms in the same structural position (e.g. a typed
// vs. inferred parameter default).
type VariantClause[A, B Node] struct {
	A A
	B B
	IsA bool
}

func (c VariantClause[A, B]) Span() source.Span {
	if c.IsA {
		return c.A.Span()
	}
	return c.B.Span()
}

// Program is the root of the unbound tree: parse_program's output, a flat
// sequence of top-level declarations.
type Program struct {
	Declarations []Declaration
	SourceSpan   source.Span
}

func (p *Program) Span() source.Span { return p.SourceSpan }
