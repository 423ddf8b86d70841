package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/types"
)

// bindFunctionSignatures checks every hoisted function's parameter list
// for the contiguous default-argument suffix rule. Parameter and return
// types are resolved on demand by functionSignature, so call sites
// anywhere in the program — including ones that textually precede the
// declaration — can be arity/type-checked against a complete signature.
func (b *Binder) bindFunctionSignatures() {
	for _, decl := range b.functions {
		sawDefault := false
		for _, p := range decl.Parameters {
			if p.Default != nil {
				sawDefault = true
			} else if sawDefault {
				b.errorf(p.SourceSpan, "parameter %q without a default follows a defaulted parameter", p.Name)
			}
		}
	}
}

// functionSignature returns the resolved return type and parameter types
// of a hoisted function or external, used by call-site binding.
func (b *Binder) functionSignature(name string) (ret *types.Type, args []*types.Type, defaults []ast.Expression, isExternal bool, ok bool) {
	if decl, found := b.functions[name]; found {
		for _, p := range decl.Parameters {
			args = append(args, b.resolveType(p.Type))
			defaults = append(defaults, p.Default)
		}
		ret = types.NewPrimitive(types.Void)
		if decl.ReturnType != nil {
			ret = b.resolveType(*decl.ReturnType)
		}
		return ret, args, defaults, false, true
	}
	if decl, found := b.externals[name]; found {
		for _, t := range decl.ArgTypes {
			args = append(args, b.resolveType(t))
			defaults = append(defaults, nil)
		}
		ret = b.resolveType(decl.ReturnType)
		return ret, args, defaults, true, true
	}
	if ret, args, ok := internalSignature(name); ok {
		defaults = make([]ast.Expression, len(args))
		return ret, args, defaults, true, true
	}
	return nil, nil, nil, false, false
}

// bindFunctionBody binds one hoisted function's body and records the
// result in b.boundFunctions. Each function body is bound in a fresh
// scope seeded with its parameters.
func (b *Binder) bindFunctionBody(name string) {
	decl := b.functions[name]
	ret, argTypes, defaults, _, _ := b.functionSignature(name)

	b.pushScope()
	defer b.popScope()

	var params []*boundtree.Symbol
	var boundDefaults []boundtree.Expression
	for i, p := range decl.Parameters {
		sym := &boundtree.Symbol{Name: p.Name, Kind: boundtree.SymVariable, Ty: argTypes[i], Mutable: true}
		b.declare(p.Name, sym, p.SourceSpan)
		params = append(params, sym)
		if defaults[i] != nil {
			boundDefaults = append(boundDefaults, b.bindExpression(defaults[i]))
		} else {
			boundDefaults = append(boundDefaults, nil)
		}
	}

	prevInFunc, prevRet := b.inFunction, b.currentReturnType
	b.inFunction, b.currentReturnType = true, ret
	body := b.bindExpression(decl.Body)
	b.inFunction, b.currentReturnType = prevInFunc, prevRet

	// A void body (no trailing expression) yields its value through return
	// statements, each already checked against ret by bindReturn.
	if !isPrim(body.Type(), types.Void) && !types.AssignableTo(body.Type(), ret) {
		b.errorf(decl.Body.Span(), "function %q body type %s is not assignable to declared return type %s", name, body.Type(), ret)
	}

	b.boundFunctions[name] = &boundtree.FunctionDeclaration{
		Name: name, Parameters: params, Defaults: boundDefaults, ReturnType: ret, Body: body, SourceSpan: decl.SourceSpan,
	}
}
