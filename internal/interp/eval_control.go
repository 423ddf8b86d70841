package interp

import (
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/value"
)

func (i *Interpreter) evalBlock(e *boundtree.BlockExpression) Control {
	i.pushScope()
	defer i.popScope()
	for _, stmt := range e.Body {
		c := i.execStatement(stmt)
		if isUnwinding(c) {
			return c
		}
	}
	if e.Trailing != nil {
		return i.Evaluate(e.Trailing)
	}
	return normal(value.VoidValue)
}

func (i *Interpreter) evalIf(e *boundtree.IfExpression) Control {
	condC := i.Evaluate(e.Condition)
	if isUnwinding(condC) {
		return condC
	}
	if condC.Value.Bool_ {
		return i.Evaluate(e.Then)
	}
	if e.Else != nil {
		return i.Evaluate(e.Else)
	}
	return normal(value.VoidValue)
}

// runLoopIteration evaluates one pass of a loop's body and decides how its
// enclosing loop should react: stop=true means the loop must stop — either
// because it matched a break/return (exit carries the Control to return,
// which may itself be Normal for a plain break) or because an unmatched
// labelled break/continue must propagate past this loop.
func (i *Interpreter) runLoopIteration(label string, body *boundtree.BlockExpression) (exit Control, stop bool) {
	bodyC := i.Evaluate(body)
	switch bodyC.Signal {
	case Return:
		return bodyC, true
	case Break:
		if bodyC.Label == "" || bodyC.Label == label {
			return normal(value.VoidValue), true
		}
		return bodyC, true
	case Continue:
		if bodyC.Label != "" && bodyC.Label != label {
			return bodyC, true
		}
		return normal(value.VoidValue), false
	default:
		return normal(value.VoidValue), false
	}
}

// evalWhile implements while/finally/else. finally always runs once the
// loop has stopped for any reason, and else runs only when the loop ran
// to a normal (condition-false) exit without ever breaking — a resolved
// open question documented in DESIGN.md.
func (i *Interpreter) evalWhile(e *boundtree.WhileExpression) Control {
	exit, broke := i.runWhileLoop(e)

	if !broke && exit.Signal == Normal && e.Else != nil {
		c := i.Evaluate(e.Else)
		if isUnwinding(c) {
			exit = c
		}
	}

	if e.Finally != nil {
		fc := i.Evaluate(e.Finally)
		if isUnwinding(fc) {
			return fc
		}
	}

	if exit.Signal != Normal {
		return exit
	}
	return normal(value.VoidValue)
}

func (i *Interpreter) runWhileLoop(e *boundtree.WhileExpression) (exit Control, broke bool) {
	for {
		condC := i.Evaluate(e.Condition)
		if isUnwinding(condC) {
			return condC, false
		}
		if !condC.Value.Bool_ {
			return normal(value.VoidValue), false
		}

		bodyExit, stop := i.runLoopIteration(e.Label, e.Body)
		if stop {
			if bodyExit.Signal == Normal {
				return normal(value.VoidValue), true
			}
			return bodyExit, false
		}
	}
}

func (i *Interpreter) evalFor(e *boundtree.ForExpression) Control {
	if e.IsRanged {
		return i.evalRangedFor(e)
	}
	return i.evalLegacyFor(e)
}

func (i *Interpreter) evalLegacyFor(e *boundtree.ForExpression) Control {
	i.pushScope()
	defer i.popScope()

	declC := i.execStatement(e.Legacy.Declaration)
	if isUnwinding(declC) {
		return declC
	}

	for {
		testC := i.Evaluate(e.Legacy.Test)
		if isUnwinding(testC) {
			return testC
		}
		if !testC.Value.Bool_ {
			return normal(value.VoidValue)
		}

		exit, stop := i.runLoopIteration(e.Label, e.Body)
		if stop {
			if exit.Signal == Normal {
				return normal(value.VoidValue)
			}
			return exit
		}

		stepC := i.Evaluate(e.Legacy.Step)
		if isUnwinding(stepC) {
			return stepC
		}
	}
}

// evalRangedFor handles all three ranged-iteration sources: a string
// (char elements), an array (its element type), and a range expression
// (honouring Reversed — a reversed range iterates inclusively from
// end-1 down to begin).
func (i *Interpreter) evalRangedFor(e *boundtree.ForExpression) Control {
	i.pushScope()
	defer i.popScope()
	cell := i.declare(e.Ranged.Identifier, value.VoidValue)

	step := func(v value.Value) (Control, bool) {
		*cell = v
		return i.runLoopIteration(e.Label, e.Body)
	}
	finish := func(exit Control, stop bool) (Control, bool) {
		if !stop {
			return Control{}, false
		}
		if exit.Signal == Normal {
			return normal(value.VoidValue), true
		}
		return exit, true
	}

	if rangeExpr, ok := e.Ranged.Iterable.(*boundtree.RangeExpression); ok {
		beginC := i.Evaluate(rangeExpr.Begin)
		if isUnwinding(beginC) {
			return beginC
		}
		endC := i.Evaluate(rangeExpr.End)
		if isUnwinding(endC) {
			return endC
		}
		begin, end := beginC.Value.AsInt64(), endC.Value.AsInt64()
		prim := rangeExpr.ElementType.Prim
		makeVal := func(v int64) value.Value {
			if prim.IsSigned() {
				return value.NewSigned(prim, v)
			}
			return value.NewUnsigned(prim, uint64(v))
		}

		if rangeExpr.Reversed {
			for v := end - 1; v >= begin; v-- {
				if exit, done := finish(step(makeVal(v))); done {
					return exit
				}
			}
		} else {
			for v := begin; v < end; v++ {
				if exit, done := finish(step(makeVal(v))); done {
					return exit
				}
			}
		}
		return normal(value.VoidValue)
	}

	iterC := i.Evaluate(e.Ranged.Iterable)
	if isUnwinding(iterC) {
		return iterC
	}

	var elems []value.Value
	switch {
	case iterC.Value.Kind == value.KindArray:
		elems = iterC.Value.Elems
	case iterC.Value.Tag == value.String:
		for _, r := range iterC.Value.Str {
			elems = append(elems, value.NewChar(r))
		}
	}

	for _, el := range elems {
		if exit, done := finish(step(el)); done {
			return exit
		}
	}
	return normal(value.VoidValue)
}

// evalMatch dispatches on the runtime enumerator's VariantIndex, binding
// an arm's BindName (when present) to the unwrapped payload before
// evaluating the arm body.
func (i *Interpreter) evalMatch(e *boundtree.MatchExpression) Control {
	valC := i.Evaluate(e.Value)
	if isUnwinding(valC) {
		return valC
	}
	v := valC.Value

	for _, arm := range e.Arms {
		if arm.VariantIndex != v.VariantIndex {
			continue
		}
		if arm.BindName == "" {
			return i.Evaluate(arm.Body)
		}
		i.pushScope()
		payload := value.VoidValue
		if v.Payload != nil {
			payload = *v.Payload
		}
		i.declare(arm.BindName, payload)
		c := i.Evaluate(arm.Body)
		i.popScope()
		return c
	}

	i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "no match arm covers variant " + v.VariantName})
	return normal(value.InvalidValue)
}
