package ast

import "github.com/fosspointer/go-linc/internal/source"

func (*TypedVariableDeclaration) declarationNode()   {}
func (*InferredVariableDeclaration) declarationNode() {}
func (*FunctionDeclaration) declarationNode()        {}
func (*ExternalDeclaration) declarationNode()        {}
func (*StructureDeclaration) declarationNode()       {}
func (*EnumerationDeclaration) declarationNode()     {}

// TypedVariableDeclaration is `name : Type (= expr)?`. Value may be nil
// only when Type.Mutable is true (a mutable declaration may
// default-initialise to the type's zero value).
type TypedVariableDeclaration struct {
	Name       string
	Type       TypeExpression
	Value      Expression
	SourceSpan source.Span
}

func (d *TypedVariableDeclaration) Span() source.Span { return d.SourceSpan }

// InferredVariableDeclaration is `name (mut)? := expr`.
type InferredVariableDeclaration struct {
	Name       string
	Mutable    bool
	Value      Expression
	SourceSpan source.Span
}

func (d *InferredVariableDeclaration) Span() source.Span { return d.SourceSpan }

// Parameter is one `name: Type (= default)?` entry of a function's
// parameter list. Parameters with a Default must form a contiguous suffix.
type Parameter struct {
	Name       string
	Type       TypeExpression
	Default    Expression
	SourceSpan source.Span
}

func (p Parameter) Span() source.Span { return p.SourceSpan }

// GenericParameters holds the `<T1, T2, ...>` clause attached to a
// generic declaration; nil on a non-generic declaration.
type GenericParameters struct {
	Names      []string
	SourceSpan source.Span
}

// FunctionDeclaration is `(generic<...>)? fn name(params) (: RetType)? body`.
type FunctionDeclaration struct {
	Name       string
	Generics   *GenericParameters
	Parameters []Parameter
	ReturnType *TypeExpression // nil infers void
	Body       *BlockExpression
	SourceSpan source.Span
}

func (d *FunctionDeclaration) Span() source.Span { return d.SourceSpan }

// ExternalDeclaration is `ext name(Type, ...): Type` — no body, callable
// only as an external call.
type ExternalDeclaration struct {
	Name         string
	ArgTypes     []TypeExpression
	ReturnType   TypeExpression
	SourceSpan   source.Span
}

func (d *ExternalDeclaration) Span() source.Span { return d.SourceSpan }

// FieldDeclaration is one `name: Type` member of a structure declaration.
type FieldDeclaration struct {
	Name       string
	Type       TypeExpression
	SourceSpan source.Span
}

// StructureDeclaration is `struct name { field: Type; ... }`.
type StructureDeclaration struct {
	Name       string
	Generics   *GenericParameters
	Fields     []FieldDeclaration
	SourceSpan source.Span
}

func (d *StructureDeclaration) Span() source.Span { return d.SourceSpan }

// EnumeratorDeclaration is one `name(Type)?` variant of an enumeration.
type EnumeratorDeclaration struct {
	Name       string
	Payload    *TypeExpression // nil for a no-payload variant
	SourceSpan source.Span
}

// EnumerationDeclaration is `enum name { variant(Type), ... }`.
type EnumerationDeclaration struct {
	Name       string
	Generics   *GenericParameters
	Variants   []EnumeratorDeclaration
	SourceSpan source.Span
}

func (d *EnumerationDeclaration) Span() source.Span { return d.SourceSpan }
