package preprocessor

import (
	"github.com/fosspointer/go-linc/internal/diag"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/token"
)

// cursor is a simple forward-only reader over a token slice, used while a
// single file's directives are being recognised. It never backtracks past
// what it has already consumed, matching the preprocessor's own one-pass
// contract.
type cursor struct {
	tokens []token.Token
	index  int
	sink   *diag.Sink
}

func (c *cursor) peek() (token.Token, bool) {
	if c.index >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[c.index], true
}

func (c *cursor) consume() token.Token {
	if c.index >= len(c.tokens) {
		return token.Token{Kind: token.EOF}
	}
	tok := c.tokens[c.index]
	c.index++
	return tok
}

func (c *cursor) expect(kind token.Kind, message string) (token.Token, bool) {
	tok, ok := c.peek()
	if ok && tok.Kind == kind {
		return c.consume(), true
	}
	c.sink.Errorf(diag.Preprocessor, c.spanHere(), "%s", message)
	return token.Token{}, false
}

func (c *cursor) spanHere() source.Span {
	if tok, ok := c.peek(); ok {
		return tok.Span
	}
	if len(c.tokens) > 0 {
		return c.tokens[len(c.tokens)-1].Span
	}
	return source.Span{}
}

// atGuardDirective reports whether the cursor is positioned at a leading
// "#guard" — the only position a guard directive is recognized.
func (c *cursor) atGuardDirective() bool {
	first, ok := c.peek()
	if !ok || first.Kind != token.PreprocSpecifier {
		return false
	}
	if c.index+1 >= len(c.tokens) {
		return false
	}
	second := c.tokens[c.index+1]
	return second.Kind == token.Identifier && second.Value == "guard"
}
