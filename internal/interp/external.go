package interp

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/types"
	"github.com/fosspointer/go-linc/internal/value"
)

// exitRequest unwinds the whole evaluator, past every call frame and loop,
// when the program invokes sys_exit. The Control sentinel covers
// return/break/continue, which always stop at a known frame (function or
// loop); a process exit has no such frame, so it uses a panic/recover
// idiom for truly orthogonal unwinding rather than growing Control with a
// case every intermediate frame would have to special-case.
type exitRequest struct{ code int }

// callExternal implements the fixed external/internal call vocabulary.
// User-declared `ext` functions outside this vocabulary have no runtime
// body to call (they name an FFI boundary outside this core's scope) and
// report a diagnostic instead.
func (i *Interpreter) callExternal(e *boundtree.CallExpression, args []value.Value) Control {
	switch e.Callee {
	case "puts":
		fmt.Fprint(i.Stdout, args[0].Str)
		return normal(value.VoidValue)

	case "putln":
		fmt.Fprintln(i.Stdout, args[0].Str)
		return normal(value.VoidValue)

	case "putc":
		fmt.Fprint(i.Stdout, string(args[0].Ch))
		return normal(value.VoidValue)

	case "readc":
		r, _, err := i.Stdin.ReadRune()
		if err != nil {
			return normal(value.NewChar(0))
		}
		return normal(value.NewChar(r))

	case "readln":
		if args[0].Str != "" {
			fmt.Fprint(i.Stdout, args[0].Str)
		}
		line, err := i.Stdin.ReadString('\n')
		if err != nil && line == "" {
			return normal(value.NewString(""))
		}
		return normal(value.NewString(trimNewline(line)))

	case "readraw":
		buf := make([]byte, 4096)
		n, _ := i.Stdin.Read(buf)
		return normal(value.NewString(string(buf[:n])))

	case "system":
		cmd := exec.Command("sh", "-c", args[0].Str)
		cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, i.Stdout, i.Stderr
		err := cmd.Run()
		if err == nil {
			return normal(value.NewSigned(types.I32, 0))
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return normal(value.NewSigned(types.I32, int64(exitErr.ExitCode())))
		}
		return normal(value.NewSigned(types.I32, -1))

	case "sys_read":
		return i.sysRead(args)
	case "sys_write":
		return i.sysWrite(args)
	case "sys_open":
		return i.sysOpen(args)
	case "sys_close":
		return i.sysClose(args)
	case "sys_exit":
		panic(exitRequest{code: int(args[0].AsInt64())})

	default:
		i.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Interpreter, Span: e.SourceSpan, Message: "external function " + e.Callee + " has no runtime implementation"})
		return normal(value.InvalidValue)
	}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// sysRead/sysWrite/sysOpen/sysClose implement the thin POSIX syscall
// vocabulary: a negative errno-shaped value on failure. File descriptors
// are tracked in a small per-interpreter table since linc
// programs address them by plain i32, not *os.File.
func (i *Interpreter) sysRead(args []value.Value) Control {
	fd := int(args[0].AsInt64())
	count := args[1].U
	buf := make([]byte, count)
	var n int
	var err error
	if fd == 0 {
		n, err = i.Stdin.Read(buf)
	} else {
		f, ok := i.files[fd]
		if !ok {
			return normal(value.NewSigned(types.I32, -9)) // EBADF
		}
		n, err = f.Read(buf)
	}
	if err != nil && n == 0 {
		return normal(value.NewSigned(types.I32, 0))
	}
	return normal(value.NewSigned(types.I32, int64(n)))
}

func (i *Interpreter) sysWrite(args []value.Value) Control {
	fd := int(args[0].AsInt64())
	data := args[1].Str
	switch fd {
	case 1:
		n, _ := fmt.Fprint(i.Stdout, data)
		return normal(value.NewSigned(types.I32, int64(n)))
	case 2:
		n, _ := fmt.Fprint(i.Stderr, data)
		return normal(value.NewSigned(types.I32, int64(n)))
	}
	f, ok := i.files[fd]
	if !ok {
		return normal(value.NewSigned(types.I32, -9)) // EBADF
	}
	n, err := f.WriteString(data)
	if err != nil {
		return normal(value.NewSigned(types.I32, -5)) // EIO
	}
	return normal(value.NewSigned(types.I32, int64(n)))
}

func (i *Interpreter) sysOpen(args []value.Value) Control {
	path := args[0].Str
	flags := int(args[1].AsInt64())
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return normal(value.NewSigned(types.I32, -2)) // ENOENT
	}
	fd := i.nextFD
	i.nextFD++
	i.files[fd] = f
	return normal(value.NewSigned(types.I32, int64(fd)))
}

func (i *Interpreter) sysClose(args []value.Value) Control {
	fd := int(args[0].AsInt64())
	f, ok := i.files[fd]
	if !ok {
		return normal(value.NewSigned(types.I32, -9)) // EBADF
	}
	delete(i.files, fd)
	if err := f.Close(); err != nil {
		return normal(value.NewSigned(types.I32, -5)) // EIO
	}
	return normal(value.NewSigned(types.I32, 0))
}
