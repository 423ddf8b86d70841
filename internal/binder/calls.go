package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/types"
)

// bindCall enforces the call-arity rule: required ≤ given ≤ total; each
// given argument must be assignable to its parameter's type
// (types.AssignableTo); missing trailing arguments are filled from
// defaults. Ordinary and external calls share this rule, differing only
// in where the signature comes from.
func (b *Binder) bindCall(e *ast.CallExpression) boundtree.Expression {
	if inst, ok := b.bindGenericCallIfApplicable(e); ok {
		return inst
	}

	ret, paramTypes, defaults, isExternal, ok := b.functionSignature(e.Callee)
	if !ok {
		b.errorf(e.SourceSpan, "call to undeclared function %q", e.Callee)
		return &boundtree.CallExpression{Callee: e.Callee, ReturnType: b.invalidType(), SourceSpan: e.SourceSpan}
	}

	required := 0
	for _, d := range defaults {
		if d == nil {
			required++
		} else {
			break
		}
	}
	total := len(paramTypes)

	if len(e.Arguments) < required || len(e.Arguments) > total {
		b.errorf(e.SourceSpan, "call to %q has %d arguments, expected between %d and %d", e.Callee, len(e.Arguments), required, total)
	}

	var args []boundtree.Expression
	for i := 0; i < total; i++ {
		if i < len(e.Arguments) {
			bound := b.bindExpression(e.Arguments[i])
			if i < len(paramTypes) && !types.AssignableTo(bound.Type(), paramTypes[i]) {
				b.errorf(e.Arguments[i].Span(), "argument %d to %q expects %s, got %s", i+1, e.Callee, paramTypes[i], bound.Type())
			}
			args = append(args, bound)
			continue
		}
		if defaults[i] != nil {
			args = append(args, b.bindExpression(defaults[i]))
		}
	}

	return &boundtree.CallExpression{Callee: e.Callee, IsExternal: isExternal, Arguments: args, ReturnType: ret, SourceSpan: e.SourceSpan}
}
