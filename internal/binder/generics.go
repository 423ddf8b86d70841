package binder

import (
	"strings"

	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/types"
)

// genericCache holds every `generic<...>`-qualified declaration hoisted
// from the program, keyed by name, plus the monomorphic instances bound
// so far: a cache of (generic_id, concrete_type_args…) → bound_decl,
// populated on first request.
type genericCache struct {
	functions map[string]*ast.FunctionDeclaration
	structs   map[string]*ast.StructureDeclaration
	enums     map[string]*ast.EnumerationDeclaration

	// instances maps a mangled "name<args>" key to whether it has already
	// been bound, so a second call with identical concrete types reuses
	// the cached boundtree.FunctionDeclaration instead of re-binding.
	instances map[string]bool
}

func newGenericCache() *genericCache {
	return &genericCache{
		functions: make(map[string]*ast.FunctionDeclaration),
		structs:   make(map[string]*ast.StructureDeclaration),
		enums:     make(map[string]*ast.EnumerationDeclaration),
		instances: make(map[string]bool),
	}
}

func (g *genericCache) registerFunction(d *ast.FunctionDeclaration) { g.functions[d.Name] = d }
func (g *genericCache) registerStruct(d *ast.StructureDeclaration)  { g.structs[d.Name] = d }
func (g *genericCache) registerEnum(d *ast.EnumerationDeclaration)  { g.enums[d.Name] = d }

// mangle renders a monomorphic instance's cache key, e.g. "max<i32>".
func mangle(name string, args []*types.Type) string {
	var parts []string
	for _, a := range args {
		parts = append(parts, a.String())
	}
	return name + "<" + strings.Join(parts, ",") + ">"
}

// bindGenericCallIfApplicable handles a call to a name registered as a
// generic function. Type arguments are inferred from the call's actual
// argument expressions against the declaration's parameter type
// expressions (matching a bare generic-parameter name positionally).
// Explicit `name<T>(...)` call syntax is unsupported, so inference from
// argument types is the sole resolution mechanism (see DESIGN.md).
func (b *Binder) bindGenericCallIfApplicable(e *ast.CallExpression) (boundtree.Expression, bool) {
	decl, ok := b.generics.functions[e.Callee]
	if !ok {
		return nil, false
	}

	boundArgs := make([]boundtree.Expression, len(e.Arguments))
	for i, a := range e.Arguments {
		boundArgs[i] = b.bindExpression(a)
	}

	subst := make(map[string]*types.Type)
	for _, name := range decl.Generics.Names {
		subst[name] = b.invalidType()
	}
	for i, param := range decl.Parameters {
		if i >= len(boundArgs) {
			break
		}
		if _, isParam := subst[param.Type.Name]; isParam && param.Type.ArrayOf == nil {
			subst[param.Type.Name] = boundArgs[i].Type()
		}
	}

	var concreteArgs []*types.Type
	for _, name := range decl.Generics.Names {
		concreteArgs = append(concreteArgs, subst[name])
	}
	key := mangle(e.Callee, concreteArgs)
	mangledName := key

	if !b.generics.instances[key] {
		b.generics.instances[key] = true
		b.instantiateFunction(mangledName, decl, subst)
	}

	ret, paramTypes, _, _, _ := b.functionSignature(mangledName)
	for i, a := range boundArgs {
		if i < len(paramTypes) && !types.AssignableTo(a.Type(), paramTypes[i]) {
			b.errorf(e.Arguments[i].Span(), "argument %d to %q expects %s, got %s", i+1, e.Callee, paramTypes[i], a.Type())
		}
	}

	return &boundtree.CallExpression{Callee: mangledName, Arguments: boundArgs, ReturnType: ret, SourceSpan: e.SourceSpan}, true
}

// instantiateFunction binds one monomorphic copy of a generic function
// under mangledName, with subst supplying each generic parameter's
// concrete type via b.typeAliases for the duration of the bind.
func (b *Binder) instantiateFunction(mangledName string, decl *ast.FunctionDeclaration, subst map[string]*types.Type) {
	prevAliases := b.typeAliases
	b.typeAliases = make(map[string]*types.Type, len(subst))
	for k, v := range subst {
		b.typeAliases[k] = v
	}
	defer func() { b.typeAliases = prevAliases }()

	b.functions[mangledName] = decl
	b.bindFunctionBody(mangledName)
}
