package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/types"
)

// bindVariant binds one ast.Variant — a block-body position yielding a
// Declaration, Statement, or Expression — into a single
// boundtree.Statement, wrapping a bare trailing expression used mid-block
// for its side effect.
func (b *Binder) bindVariant(v ast.Variant) boundtree.Statement {
	switch {
	case v.Declaration != nil:
		return b.bindDeclarationStatement(v.Declaration, v.Declaration.Span())
	case v.Statement != nil:
		return b.bindStatement(v.Statement)
	default:
		expr := b.bindExpression(v.Expression)
		return &boundtree.ExpressionStatement{Expression: expr, SourceSpan: v.Expression.Span()}
	}
}

func (b *Binder) bindStatement(stmt ast.Statement) boundtree.Statement {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		return &boundtree.ExpressionStatement{Expression: b.bindExpression(s.Expression), SourceSpan: s.SourceSpan}
	case *ast.DeclarationStatement:
		return b.bindDeclarationStatement(s.Declaration, s.SourceSpan)
	case *ast.ReturnStatement:
		return b.bindReturn(s)
	case *ast.BreakStatement:
		return b.bindBreak(s)
	case *ast.ContinueStatement:
		return b.bindContinue(s)
	default:
		b.errorf(stmt.Span(), "internal error: unhandled statement kind")
		return &boundtree.ExpressionStatement{SourceSpan: stmt.Span()}
	}
}

// bindDeclarationStatement binds a block-scoped variable declaration. Only
// TypedVariableDeclaration and InferredVariableDeclaration occur at block
// scope in practice; nested function/struct/enum declarations bind the
// same way as top level but aren't hoisted into b.boundFunctions (local
// function declarations are out of the core language's scope).
func (b *Binder) bindDeclarationStatement(decl ast.Declaration, span source.Span) boundtree.Statement {
	switch d := decl.(type) {
	case *ast.TypedVariableDeclaration:
		declaredType := b.resolveType(d.Type)
		var value boundtree.Expression
		if d.Value != nil {
			value = b.bindExpression(d.Value)
			if !types.AssignableTo(value.Type(), declaredType) {
				b.errorf(d.SourceSpan, "cannot assign %s to variable %q of type %s", value.Type(), d.Name, declaredType)
			}
		} else if !declaredType.Mutable {
			b.errorf(d.SourceSpan, "variable %q of non-mutable type %s requires an initial value", d.Name, declaredType)
		}
		sym := &boundtree.Symbol{Name: d.Name, Kind: boundtree.SymVariable, Ty: declaredType, Mutable: declaredType.Mutable}
		b.declare(d.Name, sym, d.SourceSpan)
		return &boundtree.VariableDeclaration{Sym: sym, Value: value, SourceSpan: d.SourceSpan}

	case *ast.InferredVariableDeclaration:
		value := b.bindExpression(d.Value)
		ty := value.Type()
		if d.Mutable {
			ty = types.Mut(ty)
		}
		sym := &boundtree.Symbol{Name: d.Name, Kind: boundtree.SymVariable, Ty: ty, Mutable: d.Mutable}
		b.declare(d.Name, sym, d.SourceSpan)
		return &boundtree.VariableDeclaration{Sym: sym, Value: value, SourceSpan: d.SourceSpan}

	default:
		b.errorf(span, "declaration not valid in this position")
		return &boundtree.ExpressionStatement{SourceSpan: span}
	}
}
