package parser

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/token"
)

// parseTypeExpression parses a type annotation: a bare name (primitive
// keyword, struct/enum name, or generic parameter), optionally qualified
// `mut`, or an array form `[N]Base` / `[]Base`.
func (p *Parser) parseTypeExpression() ast.TypeExpression {
	start := p.current()
	mutable := false
	if p.at(token.KeywordMut) {
		p.advance()
		mutable = true
	}

	if p.at(token.SquareLeft) {
		p.advance()
		var count *uint64
		if p.current().Kind.IsLiteral() {
			lit := p.advance()
			if n, ok := parseUintLiteral(lit.Value); ok {
				count = &n
			}
		}
		p.expect(token.SquareRight)
		base := p.parseTypeExpression()
		return ast.TypeExpression{ArrayOf: &base, ArrayCount: count, Mutable: mutable, SourceSpan: start.Span.Join(base.Span())}
	}

	name := p.expect(token.Identifier)
	return ast.TypeExpression{Name: name.Value, Mutable: mutable, SourceSpan: start.Span.Join(name.Span)}
}

func parseUintLiteral(s string) (uint64, bool) {
	var n uint64
	if s == "" {
		return 0, false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + uint64(ch-'0')
	}
	return n, true
}

// parseGenericParameters parses the optional `<T1, T2, ...>` clause
// following the `generic` keyword. The lexer tokenises '<'/'>' as
// Less/Greater, so this is a dedicated hand-rolled scan rather than the
// Pratt loop's comparison operators.
func (p *Parser) parseGenericParameters() *ast.GenericParameters {
	if !p.at(token.KeywordGeneric) {
		return nil
	}
	start := p.advance()
	p.expect(token.Less)
	var names []string
	for !p.at(token.Greater) && !p.at(token.EOF) {
		name := p.expect(token.Identifier)
		names = append(names, name.Value)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.Greater)
	return &ast.GenericParameters{Names: names, SourceSpan: start.Span.Join(end.Span)}
}
