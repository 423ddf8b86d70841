package interp

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/value"
)

// execStatement runs one bound statement, returning a non-Normal Control
// when it triggers return/break/continue unwinding.
func (i *Interpreter) execStatement(stmt boundtree.Statement) Control {
	switch s := stmt.(type) {
	case *boundtree.ExpressionStatement:
		return i.Evaluate(s.Expression)

	case *boundtree.VariableDeclaration:
		v := value.VoidValue
		if s.Value != nil {
			c := i.Evaluate(s.Value)
			if isUnwinding(c) {
				return c
			}
			v = c.Value
		}
		i.declare(s.Sym.Name, v)
		return normal(value.VoidValue)

	case *boundtree.ReturnStatement:
		v := value.VoidValue
		if s.Value != nil {
			c := i.Evaluate(s.Value)
			if isUnwinding(c) {
				return c
			}
			v = c.Value
		}
		return Control{Signal: Return, Value: v}

	case *boundtree.BreakStatement:
		return Control{Signal: Break, Label: s.Label}

	case *boundtree.ContinueStatement:
		return Control{Signal: Continue, Label: s.Label}

	default:
		return normal(value.VoidValue)
	}
}
