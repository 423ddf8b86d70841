// Package fold implements linc's constant folder: a pure bound-tree →
// bound-tree rewrite. Folding never changes observable behaviour — it
// never elides a side-effecting operand — and non-foldable expressions
// are reproduced structurally rather than mutated in place.
package fold

import "github.com/fosspointer/go-linc/internal/boundtree"

// Pass names one independently toggleable rewrite, in the same
// string-enum-plus-functional-option shape used elsewhere in this module
// for optional per-call behaviour, retargeted here from instructions to
// bound-tree nodes since linc has no bytecode layer.
type Pass string

const (
	PassLiteral      Pass = "literal-fold"
	PassBranch       Pass = "branch-select"
	PassShortCircuit Pass = "short-circuit"
)

// Option toggles a Pass on or off for one Fold call.
type Option func(*config)

type config struct {
	enabled map[Pass]bool
}

func defaultConfig() config {
	return config{enabled: map[Pass]bool{
		PassLiteral:      true,
		PassBranch:       true,
		PassShortCircuit: true,
	}}
}

func (c config) isEnabled(p Pass) bool {
	if c.enabled == nil {
		return true
	}
	enabled, ok := c.enabled[p]
	if !ok {
		return true
	}
	return enabled
}

// WithPass enables or disables one Pass.
func WithPass(pass Pass, enabled bool) Option {
	return func(c *config) {
		if c.enabled == nil {
			c.enabled = make(map[Pass]bool)
		}
		c.enabled[pass] = enabled
	}
}

type folder struct {
	cfg config
}

// Fold returns a new bound Program with every function body folded.
// Structures and Enumerations carry no executable expressions and pass
// through unchanged.
func Fold(prog *boundtree.Program, opts ...Option) *boundtree.Program {
	f := &folder{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&f.cfg)
	}

	functions := make(map[string]*boundtree.FunctionDeclaration, len(prog.Functions))
	for name, fn := range prog.Functions {
		functions[name] = f.foldFunction(fn)
	}

	return &boundtree.Program{
		Functions:    functions,
		Structures:   prog.Structures,
		Enumerations: prog.Enumerations,
		SourceSpan:   prog.SourceSpan,
	}
}

func (f *folder) foldFunction(fn *boundtree.FunctionDeclaration) *boundtree.FunctionDeclaration {
	defaults := make([]boundtree.Expression, len(fn.Defaults))
	for i, d := range fn.Defaults {
		if d != nil {
			defaults[i] = f.foldExpr(d)
		}
	}
	return &boundtree.FunctionDeclaration{
		Name:       fn.Name,
		Parameters: fn.Parameters,
		Defaults:   defaults,
		ReturnType: fn.ReturnType,
		Body:       f.foldExpr(fn.Body),
		SourceSpan: fn.SourceSpan,
	}
}

func asLiteral(e boundtree.Expression) (*boundtree.LiteralExpression, bool) {
	lit, ok := e.(*boundtree.LiteralExpression)
	return lit, ok
}
