package parser

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/token"
)

// ParseExpression is a precedence-climbing parse_expression(min_prec):
// a unary operator above min_prec binds a primary; otherwise a range
// expression is parsed (which itself recurses into the modifier chain).
// The binary loop then folds while an operator of precedence ≥ min_prec
// remains, honouring associativity.
func (p *Parser) ParseExpression(minPrec int) ast.Expression {
	left := p.parseUnaryOrRange(minPrec)

	for {
		op := p.current()
		prec := token.BinaryPrecedence(op.Kind)
		if prec == 0 || prec < minPrec {
			break
		}
		p.advance()

		nextMin := prec + 1
		if op.Kind.Associativity() == token.RightAssoc {
			nextMin = prec
		}
		right := p.ParseExpression(nextMin)
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right, SourceSpan: left.Span().Join(right.Span())}
	}

	return left
}

func (p *Parser) parseUnaryOrRange(minPrec int) ast.Expression {
	tok := p.current()
	loopLabel := tok.Kind == token.BitwiseNot && p.peekAt(1).Kind == token.Identifier &&
		(p.peekAt(2).Kind == token.KeywordWhile || p.peekAt(2).Kind == token.KeywordFor)
	if tok.Kind.IsUnaryOperator() && token.UnaryPrecedence() >= minPrec && !p.isTypeofColon(tok) && !loopLabel {
		p.advance()
		operand := p.ParseExpression(token.UnaryPrecedence())
		return &ast.UnaryExpression{Operator: tok, Operand: operand, SourceSpan: tok.Span.Join(operand.Span())}
	}
	if tok.Kind == token.Colon {
		// Prefix ':' is the typeof operator; an infix ':' is a type
		// annotation and never reaches this position because the
		// declaration parser consumes it directly.
		p.advance()
		operand := p.ParseExpression(token.UnaryPrecedence())
		return &ast.UnaryExpression{Operator: tok, Operand: operand, SourceSpan: tok.Span.Join(operand.Span())}
	}
	return p.parseRangeExpression()
}

// isTypeofColon exists only to document that Colon is handled by its own
// branch above rather than IsUnaryOperator's generic unary path, since
// typeof is the sole lexical overload among the unary set.
func (p *Parser) isTypeofColon(tok token.Token) bool {
	return tok.Kind == token.Colon
}

func (p *Parser) parseRangeExpression() ast.Expression {
	begin := p.parseModifierChain()
	if !p.at(token.RangeSpecifier) {
		return begin
	}
	p.advance() // '..'
	end := p.parseModifierChain()
	return &ast.RangeExpression{Begin: begin, End: end, Reversed: false, SourceSpan: begin.Span().Join(end.Span())}
}

// parseModifierChain parses a primary expression followed by any number of
// postfix `[index]` / `.field` modifiers, which bind tighter than any
// operator.
func (p *Parser) parseModifierChain() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch p.current().Kind {
		case token.SquareLeft:
			p.advance()
			idx := p.ParseExpression(1)
			end := p.expect(token.SquareRight)
			expr = &ast.IndexExpression{Array: expr, Index: idx, SourceSpan: expr.Span().Join(end.Span)}
		case token.Dot:
			p.advance()
			field := p.expect(token.Identifier)
			expr = &ast.AccessExpression{Target: expr, Field: field.Value, SourceSpan: expr.Span().Join(field.Span)}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.current()

	switch tok.Kind {
	case token.ParenLeft:
		p.advance()
		inner := p.ParseExpression(1)
		end := p.expect(token.ParenRight)
		_ = end
		return inner

	case token.KeywordAs:
		return p.parseConversion()

	case token.SquareLeft:
		return p.parseArrayLiteral()

	case token.BraceLeft:
		return p.parseBlock()

	case token.KeywordIf:
		return p.parseIf()

	case token.KeywordWhile:
		return p.parseWhile("")

	case token.KeywordFor:
		return p.parseFor("")

	case token.BitwiseNot:
		// Only a loop-label marker when immediately followed by an identifier
		// then `while`/`for`; otherwise it's the bitwise-not unary operator,
		// already handled in parseUnaryOrRange before reaching here in that
		// case. Reaching parsePrimary with BitwiseNot therefore always means
		// a label.
		return p.parseLabelledLoop()

	case token.KeywordMatch:
		return p.parseMatch()

	case token.Identifier:
		return p.parseIdentifierOrCallOrStruct()

	default:
		if tok.Kind.IsLiteral() {
			p.advance()
			return &ast.LiteralExpression{Token: tok, SourceSpan: tok.Span}
		}
		p.errorf(tok.Span, "unexpected token %s in expression", tok.Kind)
		p.advance()
		return &ast.LiteralExpression{Token: token.Token{Kind: token.Invalid, Span: tok.Span}, SourceSpan: tok.Span}
	}
}

func (p *Parser) parseLabelledLoop() ast.Expression {
	p.advance() // '~'
	name := p.expect(token.Identifier)
	switch p.current().Kind {
	case token.KeywordWhile:
		return p.parseWhile(name.Value)
	case token.KeywordFor:
		return p.parseFor(name.Value)
	default:
		p.errorf(p.current().Span, "expected 'while' or 'for' after loop label")
		return p.parsePrimary()
	}
}

func (p *Parser) parseConversion() ast.Expression {
	start := p.advance() // 'as'
	target := p.parseTypeExpression()
	p.expect(token.ParenLeft)
	operand := p.ParseExpression(1)
	end := p.expect(token.ParenRight)
	_ = end
	return &ast.ConversionExpression{TargetType: target, Operand: operand, SourceSpan: start.Span.Join(operand.Span())}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.advance() // '['
	var elems []ast.Expression
	for !p.at(token.SquareRight) && !p.at(token.EOF) {
		elems = append(elems, p.ParseExpression(1))
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.SquareRight)
	return &ast.ArrayExpression{Elements: elems, SourceSpan: start.Span.Join(end.Span)}
}

// parseIdentifierOrCallOrStruct disambiguates `name`, `name(args)` (call,
// classified ordinary vs external via the parser's definition table), and
// `Name{field: v, ...}` (structure literal) — all of which start with an
// identifier.
func (p *Parser) parseIdentifierOrCallOrStruct() ast.Expression {
	name := p.advance()

	switch p.current().Kind {
	case token.ParenLeft:
		p.advance()
		var args []ast.Expression
		for !p.at(token.ParenRight) && !p.at(token.EOF) {
			args = append(args, p.ParseExpression(1))
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		end := p.expect(token.ParenRight)
		isExternal := p.defs.isExternal(name.Value)
		return &ast.CallExpression{Callee: name.Value, Arguments: args, IsExternal: isExternal, SourceSpan: name.Span.Join(end.Span)}

	case token.BraceLeft:
		return p.parseStructureLiteral(name)

	default:
		return &ast.IdentifierExpression{Name: name.Value, SourceSpan: name.Span}
	}
}

func (p *Parser) parseStructureLiteral(name token.Token) ast.Expression {
	p.advance() // '{'
	var fieldNames []string
	var fieldVals []ast.Expression
	for !p.at(token.BraceRight) && !p.at(token.EOF) {
		field := p.expect(token.Identifier)
		p.expect(token.Colon)
		val := p.ParseExpression(1)
		fieldNames = append(fieldNames, field.Value)
		fieldVals = append(fieldVals, val)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.BraceRight)
	return &ast.StructureExpression{TypeName: name.Value, FieldNames: fieldNames, FieldVals: fieldVals, SourceSpan: name.Span.Join(end.Span)}
}

func (p *Parser) parseBlock() *ast.BlockExpression {
	start := p.expect(token.BraceLeft)
	block := &ast.BlockExpression{}
	p.defs.push()
	defer p.defs.pop()

	for !p.at(token.BraceRight) && !p.at(token.EOF) {
		v := p.parseVariant()
		if p.at(token.BraceRight) && v.Expression != nil {
			block.Trailing = v.Expression
			break
		}
		block.Body = append(block.Body, v)
	}
	end := p.expect(token.BraceRight)
	block.SourceSpan = start.Span.Join(end.Span)
	return block
}

// parseVariant implements parse_variant: a block-body position yields a
// Declaration, a Statement, or an Expression.
func (p *Parser) parseVariant() ast.Variant {
	switch p.current().Kind {
	case token.KeywordFn, token.KeywordExt, token.KeywordStruct, token.KeywordEnum, token.KeywordGeneric:
		return ast.Variant{Declaration: p.parseDeclaration()}

	case token.KeywordReturn, token.KeywordBreak, token.KeywordContinue:
		return ast.Variant{Statement: p.parseFlowStatement()}

	case token.Identifier:
		if decl, ok := p.tryParseVariableDeclaration(); ok {
			p.expect(token.Terminator)
			return ast.Variant{Declaration: decl}
		}
		fallthrough

	default:
		expr := p.ParseExpression(1)
		if p.at(token.Terminator) {
			end := p.advance()
			return ast.Variant{Statement: &ast.ExpressionStatement{Expression: expr, SourceSpan: expr.Span().Join(end.Span)}}
		}
		return ast.Variant{Expression: expr}
	}
}
