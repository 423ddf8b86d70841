// Package parser turns a preprocessed token stream into linc's unbound
// tree (package ast) by recursive descent with a Pratt expression core.
package parser

import (
	"fmt"

	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// Parser consumes a flat token slice (already lexed and preprocessed) and
// produces a *ast.Program, pushing diagnostics to sink as it goes rather
// than aborting on the first syntax error: insert a synthetic token of
// the expected kind, report, and continue.
type Parser struct {
	tokens []token.Token
	pos    int
	sink   *diag.Sink
	defs   *defTable
}

// New returns a Parser over tokens, reporting syntax errors to sink.
func New(tokens []token.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink, defs: newDefTable()}
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) > 0 {
			return p.tokens[len(p.tokens)-1]
		}
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		if len(p.tokens) > 0 {
			return p.tokens[len(p.tokens)-1]
		}
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(kind token.Kind) bool {
	return p.current().Kind == kind
}

// expect consumes the current token if it matches kind; otherwise it
// reports a syntactic error and fabricates a synthetic token of the
// expected kind so the caller can keep building a tree.
func (p *Parser) expect(kind token.Kind) token.Token {
	if p.at(kind) {
		return p.advance()
	}
	tok := p.current()
	p.sink.Errorf(diag.Parser, tok.Span, "expected %s, got %s", kind, tok.Kind)
	return token.Token{Kind: kind, Span: tok.Span}
}

func (p *Parser) joinSpan(start source.Span) source.Span {
	if p.pos == 0 {
		return start
	}
	last := p.tokens[min(p.pos-1, len(p.tokens)-1)]
	return start.Join(last.Span)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ParseProgram implements parse_program: repeatedly parses declarations
// until EOF.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.current().Span
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		before := p.pos
		decl := p.parseDeclaration()
		if decl != nil {
			prog.Declarations = append(prog.Declarations, decl)
		}
		if p.pos == before {
			// Guard against an unconsuming parse path stalling forever.
			p.advance()
		}
	}
	prog.SourceSpan = p.joinSpan(start)
	return prog
}

func (p *Parser) errorf(span source.Span, format string, args ...any) {
	p.sink.Push(diag.Report{Severity: diag.Error, Stage: diag.Parser, Span: span, Message: fmt.Sprintf(format, args...)})
}
