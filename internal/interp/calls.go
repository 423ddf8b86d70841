package interp

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/value"
)

func (i *Interpreter) evalCall(e *boundtree.CallExpression) Control {
	args := make([]value.Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		c := i.Evaluate(a)
		if isUnwinding(c) {
			return c
		}
		args[idx] = c.Value
	}

	if e.IsExternal {
		return i.callExternal(e, args)
	}
	return i.callFunction(e.Callee, args)
}

// callFunction invokes an ordinary user-defined function: a fresh scope
// seeded with its parameters, its body evaluated, and a Return control
// caught and unwrapped into the call's result — control flow never
// unwinds past the frame that owns it.
func (i *Interpreter) callFunction(name string, args []value.Value) Control {
	decl, ok := i.program.Functions[name]
	if !ok {
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Message: "call to undefined function " + name + " at runtime"})
		return normal(value.InvalidValue)
	}

	i.pushScope()
	defer i.popScope()
	for idx, p := range decl.Parameters {
		if idx < len(args) {
			i.declare(p.Name, args[idx])
		} else {
			i.declare(p.Name, value.VoidValue)
		}
	}

	c := i.Evaluate(decl.Body)
	if c.Signal == Return {
		return normal(c.Value)
	}
	if isUnwinding(c) {
		// A break/continue escaping a function body is a binder defect,
		// not something the interpreter can sensibly act on; surface it
		// as the function's result rather than propagate past the frame.
		return normal(c.Value)
	}
	return c
}
