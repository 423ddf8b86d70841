package source

import (
	"strings"
	"unicode/utf8"
)

// Line is one source line as seen by the lexer: its text, the file it
// textually belongs to, and its line number within that file. Splicing an
// #include target in place keeps the includee's own File/OriginalLine so
// diagnostics against spliced lines still point at the file that actually
// contains them.
type Line struct {
	Text               string
	File               string
	OriginalLineNumber int
}

// File is one absolute source path's line records, in file order.
type File struct {
	Path  string
	Lines []Line
}

// Map is the source map: every file read during a single pipeline run,
// keyed by absolute path. It is pipeline-scoped, not process-global, so
// independent compilations never share state.
type Map struct {
	files map[string]*File
	order []string
}

// NewMap returns an empty source map.
func NewMap() *Map {
	return &Map{files: make(map[string]*File)}
}

// AddFile splits text into Line records under path and registers it. Text
// is assumed LF-terminated; a trailing empty line from a final "\n" is
// dropped so line counts match what an editor would show.
func (m *Map) AddFile(path, text string) *File {
	rawLines := strings.Split(text, "\n")
	if n := len(rawLines); n > 0 && rawLines[n-1] == "" {
		rawLines = rawLines[:n-1]
	}

	f := &File{Path: path}
	for i, text := range rawLines {
		f.Lines = append(f.Lines, Line{Text: text, File: path, OriginalLineNumber: i + 1})
	}

	if _, exists := m.files[path]; !exists {
		m.order = append(m.order, path)
	}
	m.files[path] = f
	return f
}

// File returns the registered File for path, or nil.
func (m *Map) File(path string) *File {
	return m.files[path]
}

// Has reports whether path has already been registered.
func (m *Map) Has(path string) bool {
	_, ok := m.files[path]
	return ok
}

// LineText returns the text of a given 1-based line number within path, or
// "" if out of range. Used to render the caret-annotated diagnostic
// snippets in diag.Render.
func (m *Map) LineText(path string, line int) string {
	f := m.files[path]
	if f == nil || line < 1 || line > len(f.Lines) {
		return ""
	}
	return f.Lines[line-1].Text
}

// RuneColumn converts a byte offset within a line's text into a 1-based
// rune column, matching the lexer's own rune-counted columns.
func RuneColumn(lineText string, byteOffset int) int {
	if byteOffset > len(lineText) {
		byteOffset = len(lineText)
	}
	return utf8.RuneCountInString(lineText[:byteOffset]) + 1
}
