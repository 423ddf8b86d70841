package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/types"
)

// bindReturn implements return-statement binding: `return e` requires
// in_function, and e's type must be assignable to the current function's
// return type.
func (b *Binder) bindReturn(s *ast.ReturnStatement) boundtree.Statement {
	if !b.inFunction {
		b.errorf(s.SourceSpan, "return statement outside of a function")
	}

	var value boundtree.Expression
	if s.Value != nil {
		value = b.bindExpression(s.Value)
	} else {
		value = &boundtree.LiteralExpression{Ty: types.NewPrimitive(types.Void), SourceSpan: s.SourceSpan}
	}

	if b.inFunction && !types.AssignableTo(value.Type(), b.currentReturnType) {
		b.errorf(s.SourceSpan, "return value type %s is not assignable to function return type %s", value.Type(), b.currentReturnType)
	}

	return &boundtree.ReturnStatement{Value: value, SourceSpan: s.SourceSpan}
}

// bindBreak/bindContinue require in_loop; a label must name an enclosing
// loop.
func (b *Binder) bindBreak(s *ast.BreakStatement) boundtree.Statement {
	b.checkLoopLabel(s.Label, s.SourceSpan)
	return &boundtree.BreakStatement{Label: s.Label, SourceSpan: s.SourceSpan}
}

func (b *Binder) bindContinue(s *ast.ContinueStatement) boundtree.Statement {
	b.checkLoopLabel(s.Label, s.SourceSpan)
	return &boundtree.ContinueStatement{Label: s.Label, SourceSpan: s.SourceSpan}
}

func (b *Binder) checkLoopLabel(label string, span source.Span) {
	if len(b.loops) == 0 {
		b.errorf(span, "break/continue outside of a loop")
		return
	}
	if label == "" {
		return
	}
	for _, f := range b.loops {
		if f.label == label {
			return
		}
	}
	b.errorf(span, "label %q does not name an enclosing loop", label)
}
