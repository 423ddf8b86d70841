package ast

import "github.com/fosspointer/go-linc/internal/source"

// TypeExpression is the unbound syntax for a type annotation — a name
// (possibly a generic type parameter), an array form, or a mutable
// qualifier. The binder resolves this to a *types.Type.
type TypeExpression struct {
	Name       string // primitive keyword, struct/enum name, or generic parameter
	Mutable    bool
	ArrayOf    *TypeExpression // non-nil for `[N]Base` / `[]Base`
	ArrayCount *uint64         // nil for an unbounded array
	SourceSpan source.Span
}

func (t TypeExpression) Span() source.Span { return t.SourceSpan }
