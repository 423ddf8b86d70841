package source

import "testing"

func TestSpanJoinExpandsToCover(t *testing.T) {
	a := Span{File: "f.linc", LineStart: 2, ColStart: 5, LineEnd: 2, ColEnd: 10}
	b := Span{File: "f.linc", LineStart: 1, ColStart: 1, LineEnd: 3, ColEnd: 2}
	got := a.Join(b)
	want := Span{File: "f.linc", LineStart: 1, ColStart: 1, LineEnd: 3, ColEnd: 2}
	if got != want {
		t.Errorf("Join() = %+v, want %+v", got, want)
	}
}

func TestSpanJoinWithEmptySpanReturnsOther(t *testing.T) {
	a := Span{}
	b := Span{File: "f.linc", LineStart: 1, ColStart: 1, LineEnd: 1, ColEnd: 3}
	if got := a.Join(b); got != b {
		t.Errorf("Join(empty, b) = %+v, want %+v", got, b)
	}
	if got := b.Join(a); got != b {
		t.Errorf("Join(b, empty) = %+v, want %+v", got, b)
	}
}

func TestSpanJoinDifferentFilesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Join across different files should panic")
		}
	}()
	a := Span{File: "a.linc", LineStart: 1, ColStart: 1, LineEnd: 1, ColEnd: 1}
	b := Span{File: "b.linc", LineStart: 1, ColStart: 1, LineEnd: 1, ColEnd: 1}
	a.Join(b)
}

func TestMapAddFileDropsTrailingEmptyLine(t *testing.T) {
	m := NewMap()
	f := m.AddFile("x.linc", "fn main() {}\n")
	if len(f.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1 (trailing blank line from final \\n dropped)", len(f.Lines))
	}
	if f.Lines[0].Text != "fn main() {}" {
		t.Errorf("Lines[0].Text = %q", f.Lines[0].Text)
	}
}

func TestMapHasAndLineText(t *testing.T) {
	m := NewMap()
	if m.Has("missing.linc") {
		t.Errorf("Has(missing.linc) = true before registration")
	}
	m.AddFile("a.linc", "line1\nline2\nline3\n")
	if !m.Has("a.linc") {
		t.Errorf("Has(a.linc) = false after registration")
	}
	if got := m.LineText("a.linc", 2); got != "line2" {
		t.Errorf("LineText(a.linc, 2) = %q, want %q", got, "line2")
	}
	if got := m.LineText("a.linc", 99); got != "" {
		t.Errorf("LineText out of range = %q, want empty", got)
	}
}

func TestRuneColumnCountsRunesNotBytes(t *testing.T) {
	line := "héllo"
	// "h" (1 byte) + "é" (2 bytes) = 3-byte offset, covering 2 runes.
	if got := RuneColumn(line, 3); got != 3 {
		t.Errorf("RuneColumn(%q, 3) = %d, want 3", line, got)
	}
}
