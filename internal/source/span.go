// Package source tracks file identity and line/column positions across
// textual inclusion so diagnostics can always point back at the original
// source text, even when that text was spliced in by the preprocessor.
package source

import "fmt"

// Position is a single point in a source file, tracked in rune counts
// (not byte offsets or display width) to stay correct across UTF-8 input.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span covers the text of a token or subtree: a start and end position,
// both carrying file identity so rendering never needs global line
// renumbering across an include chain.
type Span struct {
	File      string
	LineStart int
	LineEnd   int
	ColStart  int
	ColEnd    int
}

// NewSpan builds a Span from two Positions in the same file.
func NewSpan(start, end Position) Span {
	return Span{
		File:      start.File,
		LineStart: start.Line,
		LineEnd:   end.Line,
		ColStart:  start.Column,
		ColEnd:    end.Column,
	}
}

// Start returns the Span's leading Position.
func (s Span) Start() Position {
	return Position{File: s.File, Line: s.LineStart, Column: s.ColStart}
}

// End returns the Span's trailing Position.
func (s Span) End() Position {
	return Position{File: s.File, Line: s.LineEnd, Column: s.ColEnd}
}

// Join returns the smallest Span covering both s and other. Both must share
// a file; Join panics otherwise, since cross-file spans are meaningless
// (every node's span lies within its parent's, and parents never straddle
// an include boundary after splicing).
func (s Span) Join(other Span) Span {
	if s.File == "" {
		return other
	}
	if other.File == "" {
		return s
	}
	if s.File != other.File {
		panic(fmt.Sprintf("source: cannot join spans from different files %q and %q", s.File, other.File))
	}

	joined := s
	if other.LineStart < joined.LineStart || (other.LineStart == joined.LineStart && other.ColStart < joined.ColStart) {
		joined.LineStart, joined.ColStart = other.LineStart, other.ColStart
	}
	if other.LineEnd > joined.LineEnd || (other.LineEnd == joined.LineEnd && other.ColEnd > joined.ColEnd) {
		joined.LineEnd, joined.ColEnd = other.LineEnd, other.ColEnd
	}
	return joined
}

func (s Span) String() string {
	if s.LineStart == s.LineEnd {
		return fmt.Sprintf("%s:%d:%d-%d", s.File, s.LineStart, s.ColStart, s.ColEnd)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.LineStart, s.ColStart, s.LineEnd, s.ColEnd)
}
