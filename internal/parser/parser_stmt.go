package parser

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/token"
)

// parseFlowStatement parses `return expr?;`, `break label?;`, and
// `continue label?;`.
func (p *Parser) parseFlowStatement() ast.Statement {
	switch p.current().Kind {
	case token.KeywordReturn:
		start := p.advance()
		var value ast.Expression
		if !p.at(token.Terminator) {
			value = p.ParseExpression(1)
		}
		end := p.expect(token.Terminator)
		span := start.Span.Join(end.Span)
		return &ast.ReturnStatement{Value: value, SourceSpan: span}

	case token.KeywordBreak:
		start := p.advance()
		label := ""
		if p.at(token.Identifier) {
			label = p.advance().Value
		}
		end := p.expect(token.Terminator)
		return &ast.BreakStatement{Label: label, SourceSpan: start.Span.Join(end.Span)}

	case token.KeywordContinue:
		start := p.advance()
		label := ""
		if p.at(token.Identifier) {
			label = p.advance().Value
		}
		end := p.expect(token.Terminator)
		return &ast.ContinueStatement{Label: label, SourceSpan: start.Span.Join(end.Span)}

	default:
		tok := p.current()
		p.errorf(tok.Span, "expected a flow statement")
		p.advance()
		return &ast.ExpressionStatement{Expression: &ast.LiteralExpression{Token: tok, SourceSpan: tok.Span}, SourceSpan: tok.Span}
	}
}
