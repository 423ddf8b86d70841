package parser

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/token"
)

func (p *Parser) parseIf() ast.Expression {
	start := p.advance() // 'if'
	cond := p.ParseExpression(1)
	then := p.parseBlock()

	expr := &ast.IfExpression{Condition: cond, Then: then}
	if p.at(token.KeywordElse) {
		p.advance()
		if p.at(token.KeywordIf) {
			expr.Else = p.parseIf()
		} else {
			expr.Else = p.parseBlock()
		}
	}
	expr.SourceSpan = p.joinSpan(start.Span)
	return expr
}

func (p *Parser) parseWhile(label string) ast.Expression {
	start := p.advance() // 'while'
	cond := p.ParseExpression(1)
	body := p.parseBlock()

	expr := &ast.WhileExpression{Label: label, Condition: cond, Body: body}
	if p.at(token.KeywordFinally) {
		p.advance()
		expr.Finally = p.parseBlock()
	}
	if p.at(token.KeywordElse) {
		p.advance()
		expr.Else = p.parseBlock()
	}
	expr.SourceSpan = p.joinSpan(start.Span)
	return expr
}

// parseFor distinguishes the legacy `decl; test; step` clause from the
// ranged `ident in iterable` clause by probing for 'in' after the first
// identifier. A legacy declaration always starts with an identifier too,
// so the distinguishing lookahead is the token immediately after that
// identifier.
func (p *Parser) parseFor(label string) ast.Expression {
	start := p.advance() // 'for'

	if p.at(token.Identifier) && p.peekAt(1).Kind == token.KeywordIn {
		ident := p.advance()
		p.advance() // 'in'
		iterable := p.ParseExpression(1)
		body := p.parseBlock()
		return &ast.ForExpression{
			Label:      label,
			IsRanged:   true,
			Ranged:     &ast.RangedForClause{Identifier: ident.Value, Iterable: iterable},
			Body:       body,
			SourceSpan: start.Span.Join(body.Span()),
		}
	}

	p.defs.push()
	defer p.defs.pop()

	decl := p.parseDeclarationOrNil()
	p.expect(token.Terminator)
	test := p.ParseExpression(1)
	p.expect(token.Terminator)
	step := p.ParseExpression(1)
	body := p.parseBlock()

	return &ast.ForExpression{
		Label:      label,
		IsRanged:   false,
		Legacy:     &ast.LegacyForClause{Declaration: decl, Test: test, Step: step},
		Body:       body,
		SourceSpan: start.Span.Join(body.Span()),
	}
}

func (p *Parser) parseMatch() ast.Expression {
	start := p.advance() // 'match'
	value := p.ParseExpression(1)
	p.expect(token.BraceLeft)

	var arms []ast.MatchArm
	for !p.at(token.BraceRight) && !p.at(token.EOF) {
		arms = append(arms, p.parseMatchArm())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.BraceRight)
	return &ast.MatchExpression{Value: value, Arms: arms, SourceSpan: start.Span.Join(end.Span)}
}

// parseMatchArm parses `Enum::Variant(bind)? -> body` or a bare
// identifier pattern `name -> body` matched structurally by the binder.
func (p *Parser) parseMatchArm() ast.MatchArm {
	start := p.current()
	enumName := ""
	variantName := p.expect(token.Identifier).Value

	if p.at(token.DoubleColon) {
		p.advance()
		enumName = variantName
		variantName = p.expect(token.Identifier).Value
	}

	bindName := ""
	if p.at(token.ParenLeft) {
		p.advance()
		bindName = p.expect(token.Identifier).Value
		p.expect(token.ParenRight)
	}

	p.expect(token.Arrow)
	body := p.ParseExpression(1)

	return ast.MatchArm{EnumName: enumName, VariantName: variantName, BindName: bindName, Body: body, SourceSpan: start.Span.Join(body.Span())}
}
