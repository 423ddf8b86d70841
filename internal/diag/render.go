package diag

import (
	"fmt"
	"strings"

	"github.com/fosspointer/go-linc/internal/source"
)

const (
	ansiBoldRed = "\033[1;31m"
	ansiBold    = "\033[1m"
	ansiReset   = "\033[0m"
)

// Render formats a Report with a line-numbered source gutter and a caret
// pointing at the offending column. color enables ANSI highlighting; the
// core stays terminal-agnostic and leaves the isatty decision to the CLI
// (see cmd/linc).
func Render(r Report, m *source.Map, color bool) string {
	var sb strings.Builder

	if r.Span.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", r.Severity, r.Span.File, r.Span.LineStart, r.Span.ColStart)
	} else {
		fmt.Fprintf(&sb, "%s\n", r.Severity)
	}

	if m != nil && r.Span.File != "" {
		lineText := m.LineText(r.Span.File, r.Span.LineStart)
		if lineText != "" {
			gutter := fmt.Sprintf("%4d | ", r.Span.LineStart)
			sb.WriteString(gutter)
			sb.WriteString(lineText)
			sb.WriteByte('\n')

			col := r.Span.ColStart
			if col < 1 {
				col = 1
			}
			sb.WriteString(strings.Repeat(" ", len(gutter)+col-1))
			if color {
				sb.WriteString(ansiBoldRed)
			}
			sb.WriteByte('^')
			if color {
				sb.WriteString(ansiReset)
			}
			sb.WriteByte('\n')
		}
	}

	if color {
		sb.WriteString(ansiBold)
	}
	sb.WriteString(r.Message)
	if color {
		sb.WriteString(ansiReset)
	}

	return sb.String()
}

// RenderAll renders every report in s in insertion order, one per
// paragraph, joined by blank lines.
func RenderAll(s *Sink, m *source.Map, color bool) string {
	reports := s.Reports()
	parts := make([]string, len(reports))
	for i, r := range reports {
		parts[i] = Render(r, m, color)
	}
	return strings.Join(parts, "\n\n")
}
