// Package binder walks linc's unbound tree (package ast) and produces its
// bound tree (package boundtree): name resolution, type checking and
// inference, operator overload resolution, lvalue/mutability enforcement,
// and jump/label/loop validity.
package binder

import (
	"fmt"

	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/types"
)

// scope is one stacked level of the symbol table.
type scope struct {
	symbols map[string]*boundtree.Symbol
}

func newScope() *scope { return &scope{symbols: make(map[string]*boundtree.Symbol)} }

// loopFrame tracks one enclosing loop for break/continue/label validation.
type loopFrame struct {
	label string
}

// Binder holds all state threaded through a single binding pass. A fresh
// Binder is created per compilation, pipeline-scoped rather than
// process-wide, so two concurrent/independent compiles never share state.
type Binder struct {
	sink  *diag.Sink
	scopes []*scope

	functions    map[string]*ast.FunctionDeclaration
	externals    map[string]*ast.ExternalDeclaration
	structures   map[string]*ast.StructureDeclaration
	enumerations map[string]*ast.EnumerationDeclaration

	boundFunctions    map[string]*boundtree.FunctionDeclaration
	structTypes       map[string]*types.Type
	enumTypes         map[string]*types.Type

	loops []loopFrame
	labels map[string]bool

	inFunction         bool
	currentReturnType  *types.Type

	// typeAliases lets a generic instantiation bind a type parameter name
	// (e.g. "T") to a concrete types.Type for the duration of binding one
	// monomorphic instance; resolveType consults it before the primitive/
	// structure/enumeration tables.
	typeAliases map[string]*types.Type

	generics *genericCache
}

// New returns a Binder ready to bind a single ast.Program, reporting
// semantic errors to sink.
func New(sink *diag.Sink) *Binder {
	b := &Binder{
		sink:           sink,
		functions:      make(map[string]*ast.FunctionDeclaration),
		externals:      make(map[string]*ast.ExternalDeclaration),
		structures:     make(map[string]*ast.StructureDeclaration),
		enumerations:   make(map[string]*ast.EnumerationDeclaration),
		boundFunctions: make(map[string]*boundtree.FunctionDeclaration),
		structTypes:    make(map[string]*types.Type),
		enumTypes:      make(map[string]*types.Type),
		labels:         make(map[string]bool),
		typeAliases:    make(map[string]*types.Type),
		generics:       newGenericCache(),
	}
	b.pushScope()
	return b
}

func (b *Binder) pushScope() { b.scopes = append(b.scopes, newScope()) }
func (b *Binder) popScope()  { b.scopes = b.scopes[:len(b.scopes)-1] }

// declare registers name in the innermost scope, reporting a redeclaration
// error if it already exists there.
func (b *Binder) declare(name string, sym *boundtree.Symbol, span source.Span) {
	top := b.scopes[len(b.scopes)-1]
	if _, exists := top.symbols[name]; exists {
		b.errorf(span, "%q is already declared in this scope", name)
		return
	}
	top.symbols[name] = sym
}

// resolve looks up name innermost-first.
func (b *Binder) resolve(name string) (*boundtree.Symbol, bool) {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		if sym, ok := b.scopes[i].symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

func (b *Binder) errorf(span source.Span, format string, args ...any) {
	b.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Binder, Span: span, Message: fmt.Sprintf(format, args...)})
}

func (b *Binder) invalidType() *types.Type { return types.NewPrimitive(types.Invalid) }

// Bind runs the full binder pass over prog and returns the bound program.
// Declarations are hoisted in a first pass so mutually recursive functions
// and forward references to structures/enumerations resolve regardless of
// textual order.
func (b *Binder) Bind(prog *ast.Program) *boundtree.Program {
	b.hoistDeclarations(prog)
	b.bindTypeDeclarations()
	b.bindFunctionSignatures()

	for name := range b.functions {
		b.bindFunctionBody(name)
	}

	return &boundtree.Program{
		Functions:    b.boundFunctions,
		Structures:   b.structTypes,
		Enumerations: b.enumTypes,
		SourceSpan:   prog.SourceSpan,
	}
}

func (b *Binder) hoistDeclarations(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			if d.Generics != nil {
				b.generics.registerFunction(d)
				continue
			}
			if _, exists := b.functions[d.Name]; exists {
				b.errorf(d.SourceSpan, "function %q is already declared", d.Name)
				continue
			}
			b.functions[d.Name] = d
		case *ast.ExternalDeclaration:
			b.externals[d.Name] = d
		case *ast.StructureDeclaration:
			if d.Generics != nil {
				b.generics.registerStruct(d)
				continue
			}
			b.structures[d.Name] = d
		case *ast.EnumerationDeclaration:
			if d.Generics != nil {
				b.generics.registerEnum(d)
				continue
			}
			b.enumerations[d.Name] = d
		}
	}
}
