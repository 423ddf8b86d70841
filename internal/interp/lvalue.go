package interp

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/value"
)

// lvalue is a settable reference resolved from an expression: an
// identifier, an array index, or a structure field access. Mutating
// operators require an lvalue; operating on a temporary pushes an error.
type lvalue struct {
	get func() value.Value
	set func(value.Value)
}

// resolveLvalue returns the settable reference addressed by expr, or
// ok=false with a diagnostic already pushed if expr is not one of the
// three lvalue-producing forms.
func (i *Interpreter) resolveLvalue(expr boundtree.Expression) (lvalue, bool) {
	switch e := expr.(type) {
	case *boundtree.IdentifierExpression:
		cell, ok := i.lookup(e.Sym.Name)
		if !ok {
			return lvalue{}, false
		}
		return lvalue{get: func() value.Value { return *cell }, set: func(v value.Value) { *cell = v }}, true

	case *boundtree.IndexExpression:
		arrLV, ok := i.resolveLvalue(e.Array)
		if !ok {
			return lvalue{}, false
		}
		idxC := i.Evaluate(e.Index)
		if isUnwinding(idxC) {
			return lvalue{}, false
		}
		idx := int(idxC.Value.AsInt64())
		return lvalue{
			get: func() value.Value {
				arr := arrLV.get()
				if idx < 0 || idx >= len(arr.Elems) {
					return value.InvalidValue
				}
				return arr.Elems[idx]
			},
			set: func(v value.Value) {
				arr := arrLV.get()
				if idx < 0 || idx >= len(arr.Elems) {
					i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "array index out of bounds"})
					return
				}
				arr.Elems[idx] = v
				arrLV.set(arr)
			},
		}, true

	case *boundtree.AccessExpression:
		targetLV, ok := i.resolveLvalue(e.Target)
		if !ok {
			return lvalue{}, false
		}
		idx := e.FieldIndex
		return lvalue{
			get: func() value.Value {
				s := targetLV.get()
				if idx < 0 || idx >= len(s.Fields) {
					return value.InvalidValue
				}
				return s.Fields[idx]
			},
			set: func(v value.Value) {
				s := targetLV.get()
				if idx < 0 || idx >= len(s.Fields) {
					return
				}
				s.Fields[idx] = v
				targetLV.set(s)
			},
		}, true

	default:
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: expr.Span(), Message: "operand is not an lvalue"})
		return lvalue{}, false
	}
}
