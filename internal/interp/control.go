// Package interp is linc's tree-walking evaluator over the bound tree
// (package boundtree). Control flow is a non-exceptional Control sentinel
// returned alongside every evaluation, not a thrown/panicked exception.
package interp

import "github.com/fosspointer/go-linc/internal/value"

// Signal tags how an evaluation completed.
type Signal int

const (
	Normal Signal = iota
	Return
	Break
	Continue
)

// Control carries an evaluation's completion signal plus its payload
// value (meaningful for Normal and Return) and target label (meaningful
// for Break/Continue when labelled). Every evaluate* method returns a
// Control instead of throwing; loop and function frames inspect it and
// act on it directly.
type Control struct {
	Signal Signal
	Value  value.Value
	Label  string
}

func normal(v value.Value) Control { return Control{Signal: Normal, Value: v} }

func isUnwinding(c Control) bool { return c.Signal != Normal }
