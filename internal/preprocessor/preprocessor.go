// Package preprocessor performs token-stream macro expansion on a lexed
// program: #include, #guard, object-like #define, parameterised #macro,
// and a final token-glue pass.
package preprocessor

import (
	"path/filepath"

	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/lexer"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// definition is an object-like #define's registered expansion.
type definition struct {
	name string
	body []token.Token
}

// macro is a parameterised #macro's registered expansion.
type macro struct {
	name string
	args []string
	body []token.Token
}

// Loader resolves an #include path to source text and reports whether a
// given path exists, so the Expander can search include roots without
// depending on the filesystem directly. The production loader reads from
// disk (see files.go); tests supply an in-memory Loader.
type Loader interface {
	Load(path string) (string, bool)
	exists(path string) bool
}

// Expander runs the expansion pass over one file's token stream, threading
// shared state (the guard set, the include-root search path) across the
// recursive expansions of #include and macro invocation.
type Expander struct {
	sink        *diag.Sink
	srcMap      *source.Map
	loader      Loader
	includeDirs []string
	guarded     map[string]bool
	seedDefs    []definition
}

// New returns an Expander over sink/srcMap/loader. includeDirs are extra
// roots searched (after the includer's own directory) for a non-absolute
// #include path, matching the CLI's `-I` flag.
func New(sink *diag.Sink, srcMap *source.Map, loader Loader, includeDirs ...string) *Expander {
	return &Expander{sink: sink, srcMap: srcMap, loader: loader, includeDirs: includeDirs, guarded: make(map[string]bool)}
}

// Seed pre-registers an object-like definition, used to implement the
// CLI's `-D name=value` flag.
func (e *Expander) Seed(name, value string) {
	e.seedDefs = append(e.seedDefs, definition{name: name, body: literalTokens(value)})
}

// literalTokens lexes a `-D`-flag value into a token sequence so it splices
// the same way a `#define NAME value` body would.
func literalTokens(value string) []token.Token {
	sink := diag.NewSink()
	l := lexer.New(value, "<command-line>", sink)
	toks := l.Tokenize()
	if len(toks) > 0 && toks[len(toks)-1].Kind == token.EOF {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// Expand runs the full expansion pass (directives, macros, then the glue
// pass) over tokens scanned from filepath and returns the resulting token
// stream with its trailing EOF preserved.
func (e *Expander) Expand(tokens []token.Token, path string) []token.Token {
	st := &expansionState{
		defs:   append([]definition(nil), e.seedDefs...),
		macros: nil,
	}
	out := e.run(tokens, path, st)
	return glue(out, e.sink)
}

type expansionState struct {
	defs   []definition
	macros []macro
}

func (st *expansionState) clone() *expansionState {
	return &expansionState{
		defs:   append([]definition(nil), st.defs...),
		macros: append([]macro(nil), st.macros...),
	}
}

// run performs directive/identifier expansion only (no glue pass — that
// happens once, at the outermost Expand call, over the fully-spliced
// stream).
func (e *Expander) run(tokens []token.Token, path string, st *expansionState) []token.Token {
	c := &cursor{tokens: tokens, sink: e.sink}

	if c.atGuardDirective() {
		c.consume() // '#'
		c.consume() // 'guard'
		e.guarded[toAbsolute(path)] = true
	}

	var out []token.Token
	for {
		tok, ok := c.peek()
		if !ok || tok.Kind == token.EOF {
			break
		}

		if tok.Kind == token.Identifier {
			c.consume()
			if expanded, matched := e.expandIdentifier(tok, c, path, st); matched {
				out = append(out, expanded...)
				continue
			}
			out = append(out, tok)
			continue
		}

		if tok.Kind != token.PreprocSpecifier {
			out = append(out, tok)
			c.consume()
			continue
		}

		c.consume() // '#'
		directive, ok := c.expect(token.Identifier, "expected a preprocessor directive name")
		if !ok {
			continue
		}

		switch directive.Value {
		case "include":
			out = append(out, e.expandInclude(c, path, st)...)
		case "define":
			e.expandDefine(c, st)
		case "macro":
			e.expandMacro(c, st)
		case "guard":
			e.sink.Errorf(diag.Preprocessor, directive.Span, "include guard must be at the beginning of the file")
		default:
			e.sink.Errorf(diag.Preprocessor, directive.Span, "invalid preprocessor directive %q", directive.Value)
		}
	}

	return out
}

func (e *Expander) expandIdentifier(id token.Token, c *cursor, path string, st *expansionState) ([]token.Token, bool) {
	for _, d := range st.defs {
		if d.name == id.Value {
			return d.body, true
		}
	}

	for _, m := range st.macros {
		if m.name == id.Value {
			return e.expandMacroInvocation(m, c, path, st), true
		}
	}

	return nil, false
}

func (e *Expander) expandDefine(c *cursor, st *expansionState) {
	name, ok := c.expect(token.Identifier, "expected an identifier after #define")
	if !ok {
		return
	}
	var body []token.Token
	for {
		tok, ok := c.peek()
		if !ok || tok.Kind == token.EOF || tok.Kind == token.PreprocSpecifier {
			break
		}
		body = append(body, tok)
		c.consume()
	}
	c.consume() // closing '#'
	st.defs = append(st.defs, definition{name: name.Value, body: body})
}

func (e *Expander) expandMacro(c *cursor, st *expansionState) {
	name, ok := c.expect(token.Identifier, "expected an identifier after #macro")
	if !ok {
		return
	}
	if _, ok := c.expect(token.ParenLeft, "expected '(' in macro declaration"); !ok {
		return
	}

	var args []string
	for {
		tok, ok := c.peek()
		if !ok || tok.Kind != token.Identifier {
			break
		}
		c.consume()
		args = append(args, tok.Value)
		if next, ok := c.peek(); ok && next.Kind == token.ParenRight {
			c.consume()
			break
		}
		c.expect(token.Comma, "expected ',' between macro parameters")
	}

	var body []token.Token
	for {
		tok, ok := c.peek()
		if !ok || tok.Kind == token.EOF || tok.Kind == token.PreprocSpecifier {
			break
		}
		body = append(body, tok)
		c.consume()
	}
	c.expect(token.PreprocSpecifier, "expected closing '#' after macro body")

	st.macros = append(st.macros, macro{name: name.Value, args: args, body: body})
}

// expandMacroInvocation captures the comma-delimited, parenthesis-balanced
// argument lists of a macro call, substitutes them into the macro body,
// and recursively re-preprocesses the result with the caller's tables —
// the same algorithm as linc's own Preprocessor::operator().
func (e *Expander) expandMacroInvocation(m macro, c *cursor, path string, st *expansionState) []token.Token {
	openParen, ok := c.peek()
	if !ok || openParen.Kind != token.ParenLeft {
		e.sink.Errorf(diag.Preprocessor, c.spanHere(), "expected '(' in invocation of macro %q", m.name)
		return nil
	}
	c.consume()

	var arguments [][]token.Token
	arguments = append(arguments, nil)
	depth := 0
	for {
		tok, ok := c.peek()
		if !ok {
			break
		}
		if tok.Kind == token.ParenRight && depth == 0 {
			break
		}
		if tok.Kind == token.ParenLeft {
			depth++
		} else if tok.Kind == token.ParenRight {
			depth--
		}
		c.consume()
		arguments[len(arguments)-1] = append(arguments[len(arguments)-1], tok)

		if next, ok := c.peek(); ok && next.Kind == token.Comma && depth == 0 {
			c.consume()
			arguments = append(arguments, nil)
		}
	}
	if depth != 0 {
		e.sink.Errorf(diag.Preprocessor, c.spanHere(), "unmatched parentheses in invocation of macro %q", m.name)
	}
	c.expect(token.ParenRight, "expected ')' to close macro invocation")

	body := embedArguments(m, arguments)
	return e.run(body, path, st.clone())
}

func embedArguments(m macro, arguments [][]token.Token) []token.Token {
	var out []token.Token
	for _, tok := range m.body {
		if tok.Kind == token.Identifier {
			found := false
			for i, argName := range m.args {
				if tok.Value == argName && i < len(arguments) {
					out = append(out, arguments[i]...)
					found = true
					break
				}
			}
			if found {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func (e *Expander) expandInclude(c *cursor, includerPath string, st *expansionState) []token.Token {
	lit, ok := c.expect(token.StringLiteral, "expected a string literal after #include")
	if !ok {
		return nil
	}

	target := e.resolveInclude(lit.Value, includerPath)
	if target == "" {
		e.sink.Warnf(diag.Preprocessor, lit.Span, "include directive target %q does not exist", lit.Value)
		return nil
	}
	if e.guarded[toAbsolute(target)] {
		return nil
	}

	text, ok := e.loader.Load(target)
	if !ok {
		e.sink.Warnf(diag.Preprocessor, lit.Span, "include directive target %q does not exist", lit.Value)
		return nil
	}
	if e.srcMap != nil {
		e.srcMap.AddFile(target, text)
	}

	sub := lexer.New(text, target, e.sink)
	tokens := sub.Tokenize()
	return e.run(tokens, target, st.clone())
}

func (e *Expander) resolveInclude(requested, includerPath string) string {
	if filepath.IsAbs(requested) {
		if e.loader.exists(requested) {
			return requested
		}
		return ""
	}

	candidates := []string{filepath.Join(filepath.Dir(includerPath), requested)}
	for _, dir := range e.includeDirs {
		candidates = append(candidates, filepath.Join(dir, requested))
	}
	for _, candidate := range candidates {
		if e.loader.exists(candidate) {
			return candidate
		}
	}
	return ""
}

func toAbsolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// glue rewrites every `Identifier GlueSpecifier Identifier` triple in
// tokens into a single identifier whose value concatenates the two,
// repeating left-to-right so `a$b$c` glues to `abc`.
func glue(tokens []token.Token, sink *diag.Sink) []token.Token {
	out := append([]token.Token(nil), tokens...)

	for i := 0; i+2 < len(out); {
		if out[i].Kind == token.Identifier && out[i+1].Kind == token.GlueSpecifier {
			if out[i+2].Kind != token.Identifier {
				sink.Errorf(diag.Preprocessor, out[i].Span, "cannot glue %q to a non-identifier", out[i].Value)
				i++
				continue
			}
			glued := token.Token{
				Kind:   token.Identifier,
				Value:  out[i].Value + out[i+2].Value,
				HasVal: true,
				Span:   out[i].Span.Join(out[i+2].Span),
			}
			out = append(out[:i], append([]token.Token{glued}, out[i+3:]...)...)
			continue
		}
		i++
	}

	return out
}

