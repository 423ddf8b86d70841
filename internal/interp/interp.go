package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/value"
)

// reservedFDs is where the sys_open file-descriptor table starts
// allocating, past stdin/stdout/stderr which sys_read/sys_write address
// directly without consulting the table.
const reservedFDs = 3

// scope is one stacked level of the interpreter's identifier map. Values
// are stored behind a pointer so index/field lvalues taken from an outer
// scope keep working after inner scopes that shadow the same name pop.
// Scope exit destroys identifiers in LIFO order, innermost first.
type scope struct {
	values map[string]*value.Value
}

func newScope() *scope { return &scope{values: make(map[string]*value.Value)} }

// Interpreter holds all state for one program run: the bound program, the
// stacked identifier map, and I/O streams for the external call
// vocabulary. A fresh Interpreter is created per run.
type Interpreter struct {
	program *boundtree.Program
	sink    *diag.Sink
	scopes  []*scope

	Stdin  *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer

	Args []string

	files  map[int]*os.File
	nextFD int
}

// Option configures an Interpreter at construction, the same
// functional-option style used for the lexer.
type Option func(*Interpreter)

func WithStdin(r io.Reader) Option  { return func(i *Interpreter) { i.Stdin = bufio.NewReader(r) } }
func WithStdout(w io.Writer) Option { return func(i *Interpreter) { i.Stdout = w } }
func WithStderr(w io.Writer) Option { return func(i *Interpreter) { i.Stderr = w } }
func WithArgs(args []string) Option { return func(i *Interpreter) { i.Args = args } }

// New returns an Interpreter ready to evaluate program, reporting runtime
// diagnostics to sink.
func New(program *boundtree.Program, sink *diag.Sink, opts ...Option) *Interpreter {
	i := &Interpreter{
		program: program,
		sink:    sink,
		Stdin:   bufio.NewReader(os.Stdin),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		files:   make(map[int]*os.File),
		nextFD:  reservedFDs,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.pushScope()
	return i
}

func (i *Interpreter) pushScope() { i.scopes = append(i.scopes, newScope()) }
func (i *Interpreter) popScope()  { i.scopes = i.scopes[:len(i.scopes)-1] }

func (i *Interpreter) declare(name string, v value.Value) *value.Value {
	top := i.scopes[len(i.scopes)-1]
	cell := new(value.Value)
	*cell = v
	top.values[name] = cell
	return cell
}

func (i *Interpreter) lookup(name string) (*value.Value, bool) {
	for s := len(i.scopes) - 1; s >= 0; s-- {
		if cell, ok := i.scopes[s].values[name]; ok {
			return cell, true
		}
	}
	return nil, false
}
