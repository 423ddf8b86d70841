// Package diag is the pipeline's diagnostics sink — the sole mechanism by
// which every stage signals a semantic problem. Stages never return error
// codes up the tree; they push a Report and carry on, so a single run can
// surface many problems at once.
package diag

import (
	"fmt"
	"strings"

	"github.com/fosspointer/go-linc/internal/source"
)

// Severity classifies how serious a Report is.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Stage names the pipeline stage that raised a Report.
type Stage int

const (
	Environment Stage = iota
	Lexer
	Preprocessor
	Parser
	Binder
	Interpreter
)

func (s Stage) String() string {
	switch s {
	case Environment:
		return "environment"
	case Lexer:
		return "lexer"
	case Preprocessor:
		return "preprocessor"
	case Parser:
		return "parser"
	case Binder:
		return "binder"
	case Interpreter:
		return "interpreter"
	default:
		return "unknown"
	}
}

// Report is a single structured diagnostic.
type Report struct {
	Severity Severity
	Stage    Stage
	Span     source.Span
	Message  string
}

// Line renders a Report in a stable text-line format:
// "<TYPE> <stage>:<file>:<line>[:<col>] <message>".
func (r Report) Line() string {
	var sb strings.Builder
	sb.WriteString(r.Severity.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Stage.String())
	if r.Span.File != "" {
		sb.WriteByte(':')
		sb.WriteString(r.Span.File)
		fmt.Fprintf(&sb, ":%d", r.Span.LineStart)
		if r.Span.ColStart != 0 {
			fmt.Fprintf(&sb, ":%d", r.Span.ColStart)
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	return sb.String()
}

// Sink is a pipeline-scoped, ordered collection of Reports. A Sink is
// constructed per compilation, never shared as a package-level global, so
// independent runs (e.g. concurrent tests) never interfere with each
// other's diagnostics.
type Sink struct {
	reports []Report
}

// NewSink returns an empty, pipeline-scoped sink.
func NewSink() *Sink {
	return &Sink{}
}

// Push appends a Report, preserving insertion order.
func (s *Sink) Push(r Report) {
	s.reports = append(s.reports, r)
}

// Errorf pushes an Error-severity Report built from a format string.
func (s *Sink) Errorf(stage Stage, span source.Span, format string, args ...any) {
	s.Push(Report{Severity: Error, Stage: stage, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Warnf pushes a Warning-severity Report built from a format string.
func (s *Sink) Warnf(stage Stage, span source.Span, format string, args ...any) {
	s.Push(Report{Severity: Warning, Stage: stage, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Infof pushes an Info-severity Report built from a format string.
func (s *Sink) Infof(stage Stage, span source.Span, format string, args ...any) {
	s.Push(Report{Severity: Info, Stage: stage, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Reports returns every Report pushed so far, in insertion order.
func (s *Sink) Reports() []Report {
	return s.reports
}

// HasError reports whether any Error-severity Report has been pushed.
func (s *Sink) HasError() bool {
	for _, r := range s.reports {
		if r.Severity == Error {
			return true
		}
	}
	return false
}

// HasWarning reports whether any Warning-severity Report has been pushed.
func (s *Sink) HasWarning() bool {
	for _, r := range s.reports {
		if r.Severity == Warning {
			return true
		}
	}
	return false
}

// ErrorsInStage returns only the Error-severity Reports raised by stage,
// used by the pipeline driver to decide whether to abort before the next
// stage: the pipeline stops before the next stage whenever the sink
// contains any Error from the current stage, never mid-stage.
func (s *Sink) ErrorsInStage(stage Stage) []Report {
	var out []Report
	for _, r := range s.reports {
		if r.Stage == stage && r.Severity == Error {
			out = append(out, r)
		}
	}
	return out
}
