// Package token defines the lexical vocabulary of linc: token kinds,
// positions, and the Token value itself.
package token

// Kind enumerates every distinguishable token produced by the lexer.
type Kind int

const (
	Invalid Kind = iota
	EOF

	Identifier

	// Literal forms. One kind per numeric width, plus character, string,
	// and boolean literals. A bare, unsuffixed literal is classified as
	// I32Literal (integral) or F32Literal (floating) by scanNumber's
	// no-suffix default; suffixed literals are looked up in suffixKinds —
	// see lexer/numbers.go.
	I8Literal
	I16Literal
	I32Literal
	I64Literal
	U8Literal
	U16Literal
	U32Literal
	U64Literal
	F32Literal
	F64Literal
	CharLiteral
	StringLiteral
	TrueLiteral
	FalseLiteral

	// Keywords.
	KeywordFn
	KeywordExt
	KeywordStruct
	KeywordEnum
	KeywordGeneric
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordFinally
	KeywordFor
	KeywordIn
	KeywordMatch
	KeywordReturn
	KeywordBreak
	KeywordContinue
	KeywordMut
	KeywordAs

	// Brackets and punctuation symbols.
	ParenLeft
	ParenRight
	SquareLeft
	SquareRight
	BraceLeft
	BraceRight
	Comma
	Colon
	DoubleColon
	Dot
	Arrow
	Terminator       // ';'
	RangeSpecifier   // ".."
	PreprocSpecifier // '#'
	GlueSpecifier    // '$' token-glue operator used by the preprocessor
	ColonEquals      // ":="

	// Arithmetic operators.
	Plus
	Minus
	Star
	Slash
	Percent
	Increment
	Decrement

	// Comparison operators.
	Equals
	NotEquals
	Greater
	Less
	GreaterEqual
	LessEqual

	// Logical operators.
	LogicalAnd
	LogicalOr
	LogicalNot

	// Bitwise operators.
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseNot // '~'; the parser also reads this as a loop-label marker in `~ident while/for`
	ShiftLeft
	ShiftRight

	// Assignment and compound-assignment operators.
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign

	// Stringify operator. The typeof operator shares the Colon spelling
	// (':') and is disambiguated from a type annotation by the parser
	// based on position — a prefix occurrence is typeof, an infix one
	// after a name is a type annotation.
	Stringify // '@'
)

// keywords maps the literal spelling of a keyword to its Kind. Built once;
// consulted by the lexer after scanning a word that isn't a literal.
var keywords = map[string]Kind{
	"fn":       KeywordFn,
	"ext":      KeywordExt,
	"struct":   KeywordStruct,
	"enum":     KeywordEnum,
	"generic":  KeywordGeneric,
	"if":       KeywordIf,
	"else":     KeywordElse,
	"while":    KeywordWhile,
	"finally":  KeywordFinally,
	"for":      KeywordFor,
	"in":       KeywordIn,
	"match":    KeywordMatch,
	"return":   KeywordReturn,
	"break":    KeywordBreak,
	"continue": KeywordContinue,
	"mut":      KeywordMut,
	"as":       KeywordAs,
	"true":     TrueLiteral,
	"false":    FalseLiteral,
}

// LookupIdent classifies a scanned word as a keyword kind or a plain
// Identifier.
func LookupIdent(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return Identifier
}

// IsLiteral reports whether kind denotes a literal token.
func (k Kind) IsLiteral() bool {
	switch k {
	case I8Literal, I16Literal, I32Literal, I64Literal,
		U8Literal, U16Literal, U32Literal, U64Literal,
		F32Literal, F64Literal, CharLiteral, StringLiteral,
		TrueLiteral, FalseLiteral:
		return true
	default:
		return false
	}
}

// IsBinaryOperator reports whether kind can introduce a binary expression
// in the Pratt parser's precedence loop.
func (k Kind) IsBinaryOperator() bool {
	_, ok := binaryPrecedence[k]
	return ok
}

// IsUnaryOperator reports whether kind can introduce a unary expression.
func (k Kind) IsUnaryOperator() bool {
	switch k {
	case Plus, Minus, LogicalNot, BitwiseNot, Increment, Decrement, Stringify, Colon:
		return true
	default:
		return false
	}
}

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "end of file", Identifier: "identifier",
	I8Literal: "i8 literal", I16Literal: "i16 literal", I32Literal: "i32 literal", I64Literal: "i64 literal",
	U8Literal: "u8 literal", U16Literal: "u16 literal", U32Literal: "u32 literal", U64Literal: "u64 literal",
	F32Literal: "f32 literal", F64Literal: "f64 literal", CharLiteral: "char literal", StringLiteral: "string literal",
	TrueLiteral: "true", FalseLiteral: "false",
	KeywordFn: "fn", KeywordExt: "ext", KeywordStruct: "struct", KeywordEnum: "enum", KeywordGeneric: "generic",
	KeywordIf: "if", KeywordElse: "else", KeywordWhile: "while", KeywordFinally: "finally", KeywordFor: "for",
	KeywordIn: "in", KeywordMatch: "match", KeywordReturn: "return", KeywordBreak: "break", KeywordContinue: "continue",
	KeywordMut: "mut", KeywordAs: "as",
	ParenLeft: "(", ParenRight: ")", SquareLeft: "[", SquareRight: "]", BraceLeft: "{", BraceRight: "}",
	Comma: ",", Colon: ":", DoubleColon: "::", Dot: ".", Arrow: "->", Terminator: ";", RangeSpecifier: "..",
	PreprocSpecifier: "#", GlueSpecifier: "$", ColonEquals: ":=",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Increment: "++", Decrement: "--",
	Equals: "==", NotEquals: "!=", Greater: ">", Less: "<", GreaterEqual: ">=", LessEqual: "<=",
	LogicalAnd: "&&", LogicalOr: "||", LogicalNot: "!",
	BitwiseAnd: "&", BitwiseOr: "|", BitwiseXor: "^", BitwiseNot: "~", ShiftLeft: "<<", ShiftRight: ">>",
	Assign: "=", AddAssign: "+=", SubAssign: "-=", MulAssign: "*=", DivAssign: "/=", ModAssign: "%=",
	Stringify: "@",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
