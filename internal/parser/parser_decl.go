package parser

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/token"
)

// parseDeclaration dispatches on the leading keyword/identifier to one of
// the six declaration forms: function, external, structure, enumeration,
// generic, or variable.
func (p *Parser) parseDeclaration() ast.Declaration {
	switch p.current().Kind {
	case token.KeywordFn:
		return p.parseFunctionDeclaration(nil)
	case token.KeywordExt:
		return p.parseExternalDeclaration()
	case token.KeywordStruct:
		return p.parseStructureDeclaration(nil)
	case token.KeywordEnum:
		return p.parseEnumerationDeclaration(nil)
	case token.KeywordGeneric:
		generics := p.parseGenericParameters()
		switch p.current().Kind {
		case token.KeywordFn:
			return p.parseFunctionDeclaration(generics)
		case token.KeywordStruct:
			return p.parseStructureDeclaration(generics)
		case token.KeywordEnum:
			return p.parseEnumerationDeclaration(generics)
		default:
			p.errorf(p.current().Span, "expected a declaration after generic parameter list")
			return nil
		}
	default:
		if decl, ok := p.tryParseVariableDeclaration(); ok {
			p.expect(token.Terminator)
			return decl
		}
		p.errorf(p.current().Span, "expected a declaration, got %s", p.current().Kind)
		p.advance()
		return nil
	}
}

// parseDeclarationOrNil is used by the legacy for-clause, whose first
// segment is always a variable declaration.
func (p *Parser) parseDeclarationOrNil() ast.Declaration {
	decl, ok := p.tryParseVariableDeclaration()
	if !ok {
		p.errorf(p.current().Span, "expected a variable declaration")
		return nil
	}
	return decl
}

// tryParseVariableDeclaration speculatively parses `name : Type (= expr)?`
// or `name (mut)? := expr`, restoring position and returning ok=false if
// the identifier isn't followed by one of those two forms — in which case
// the caller falls back to parsing a plain expression.
func (p *Parser) tryParseVariableDeclaration() (ast.Declaration, bool) {
	if !p.at(token.Identifier) {
		return nil, false
	}
	save := p.pos
	name := p.advance()

	switch p.current().Kind {
	case token.Colon:
		p.advance()
		ty := p.parseTypeExpression()
		end := ty.Span()
		var value ast.Expression
		if p.at(token.Assign) {
			p.advance()
			value = p.ParseExpression(1)
			end = value.Span()
		}
		p.defs.declare(name.Value, defVariable)
		return &ast.TypedVariableDeclaration{Name: name.Value, Type: ty, Value: value, SourceSpan: name.Span.Join(end)}, true

	case token.KeywordMut:
		if p.peekAt(1).Kind == token.ColonEquals {
			p.advance() // 'mut'
			p.advance() // ':='
			value := p.ParseExpression(1)
			p.defs.declare(name.Value, defVariable)
			return &ast.InferredVariableDeclaration{Name: name.Value, Mutable: true, Value: value, SourceSpan: name.Span.Join(value.Span())}, true
		}
		p.pos = save
		return nil, false

	case token.ColonEquals:
		p.advance()
		value := p.ParseExpression(1)
		p.defs.declare(name.Value, defVariable)
		return &ast.InferredVariableDeclaration{Name: name.Value, Value: value, SourceSpan: name.Span.Join(value.Span())}, true

	default:
		p.pos = save
		return nil, false
	}
}

func (p *Parser) parseParameterList() []ast.Parameter {
	p.expect(token.ParenLeft)
	var params []ast.Parameter
	seenDefault := false
	for !p.at(token.ParenRight) && !p.at(token.EOF) {
		name := p.expect(token.Identifier)
		p.expect(token.Colon)
		ty := p.parseTypeExpression()
		var def ast.Expression
		if p.at(token.Assign) {
			p.advance()
			def = p.ParseExpression(1)
			seenDefault = true
		} else if seenDefault {
			p.errorf(name.Span, "non-default parameter %q follows a default parameter", name.Value)
		}
		params = append(params, ast.Parameter{Name: name.Value, Type: ty, Default: def, SourceSpan: name.Span.Join(ty.Span())})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.ParenRight)
	return params
}

func (p *Parser) parseFunctionDeclaration(generics *ast.GenericParameters) ast.Declaration {
	start := p.advance() // 'fn'
	name := p.expect(token.Identifier)
	p.defs.declare(name.Value, defFunction)

	p.defs.push()
	defer p.defs.pop()

	params := p.parseParameterList()
	for _, param := range params {
		p.defs.declare(param.Name, defVariable)
	}

	var ret *ast.TypeExpression
	if p.at(token.Colon) {
		p.advance()
		t := p.parseTypeExpression()
		ret = &t
	}
	body := p.parseBlock()

	return &ast.FunctionDeclaration{
		Name: name.Value, Generics: generics, Parameters: params, ReturnType: ret, Body: body,
		SourceSpan: start.Span.Join(body.Span()),
	}
}

func (p *Parser) parseExternalDeclaration() ast.Declaration {
	start := p.advance() // 'ext'
	name := p.expect(token.Identifier)
	p.defs.declare(name.Value, defExternal)

	p.expect(token.ParenLeft)
	var argTypes []ast.TypeExpression
	for !p.at(token.ParenRight) && !p.at(token.EOF) {
		argTypes = append(argTypes, p.parseTypeExpression())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.ParenRight)
	p.expect(token.Colon)
	ret := p.parseTypeExpression()

	return &ast.ExternalDeclaration{Name: name.Value, ArgTypes: argTypes, ReturnType: ret, SourceSpan: start.Span.Join(ret.Span())}
}

func (p *Parser) parseStructureDeclaration(generics *ast.GenericParameters) ast.Declaration {
	start := p.advance() // 'struct'
	name := p.expect(token.Identifier)
	p.defs.declare(name.Value, defTypename)

	p.expect(token.BraceLeft)
	var fields []ast.FieldDeclaration
	for !p.at(token.BraceRight) && !p.at(token.EOF) {
		fname := p.expect(token.Identifier)
		p.expect(token.Colon)
		ty := p.parseTypeExpression()
		fields = append(fields, ast.FieldDeclaration{Name: fname.Value, Type: ty, SourceSpan: fname.Span.Join(ty.Span())})
		if p.at(token.Terminator) {
			p.advance()
			continue
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.BraceRight)

	return &ast.StructureDeclaration{Name: name.Value, Generics: generics, Fields: fields, SourceSpan: start.Span.Join(end.Span)}
}

func (p *Parser) parseEnumerationDeclaration(generics *ast.GenericParameters) ast.Declaration {
	start := p.advance() // 'enum'
	name := p.expect(token.Identifier)
	p.defs.declare(name.Value, defTypename)

	p.expect(token.BraceLeft)
	var variants []ast.EnumeratorDeclaration
	for !p.at(token.BraceRight) && !p.at(token.EOF) {
		vname := p.expect(token.Identifier)
		var payload *ast.TypeExpression
		if p.at(token.ParenLeft) {
			p.advance()
			t := p.parseTypeExpression()
			payload = &t
			p.expect(token.ParenRight)
		}
		variants = append(variants, ast.EnumeratorDeclaration{Name: vname.Value, Payload: payload, SourceSpan: vname.Span})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.BraceRight)

	return &ast.EnumerationDeclaration{Name: name.Value, Generics: generics, Variants: variants, SourceSpan: start.Span.Join(end.Span)}
}
