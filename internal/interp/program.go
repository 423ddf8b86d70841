package interp

import (
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/types"
	"github.com/fosspointer/go-linc/internal/value"
)

// Run evaluates the program: it calls the user-defined function named
// main, passing the CLI argument list as a string-array value when main
// declares a parameter, and derives the process exit code from main's
// return type. ok is false when main could not be run at all (missing,
// or an unsupported return type) — the caller (cmd/linc) is responsible
// for turning a pushed Error into the compilation-failure exit code.
func (i *Interpreter) Run() (exitCode int, ok bool) {
	decl, found := i.program.Functions["main"]
	if !found {
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Message: "no function named main"})
		return 0, false
	}

	var args []value.Value
	if len(decl.Parameters) >= 1 {
		elems := make([]value.Value, len(i.Args))
		for idx, a := range i.Args {
			elems[idx] = value.NewString(a)
		}
		args = []value.Value{value.NewArray(types.NewPrimitive(types.String), elems)}
	}

	exitCode, ok = i.runGuarded(func() Control { return i.callFunction("main", args) }, decl.ReturnType)
	return exitCode, ok
}

// runGuarded calls fn, recovering a sys_exit panic into its requested
// code (see external.go's exitRequest), then maps a Normal/Return control
// to an exit code by ret's primitive (void → 0; u8/i8/i16/i32 → that
// value; anything else is a diagnostic).
func (i *Interpreter) runGuarded(fn func() Control, ret *types.Type) (exitCode int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if req, isExit := r.(exitRequest); isExit {
				exitCode, ok = req.code, true
				return
			}
			panic(r)
		}
	}()

	c := fn()
	if c.Signal != Normal && c.Signal != Return {
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Message: "break/continue escaped main with no enclosing loop"})
		return 0, false
	}

	if ret.Kind != types.VariantPrimitive {
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Message: "main must return void or an integral type"})
		return 0, false
	}

	switch ret.Prim {
	case types.Void:
		return 0, true
	case types.U8, types.I8, types.I16, types.I32:
		return int(c.Value.AsInt64()), true
	default:
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Message: "main must return void or an integral type"})
		return 0, false
	}
}
