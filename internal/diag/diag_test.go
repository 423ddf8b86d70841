package diag

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/source"
)

func TestReportLineFormat(t *testing.T) {
	r := Report{
		Severity: Error,
		Stage:    Binder,
		Span:     source.Span{File: "main.linc", LineStart: 3, ColStart: 7},
		Message:  "undeclared identifier 'x'",
	}
	want := "ERROR binder:main.linc:3:7 undeclared identifier 'x'"
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestReportLineOmitsColumnWhenZero(t *testing.T) {
	r := Report{Severity: Warning, Stage: Lexer, Span: source.Span{File: "a.linc", LineStart: 1}, Message: "m"}
	want := "WARNING lexer:a.linc:1 m"
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestReportLineOmitsFileWhenAbsent(t *testing.T) {
	r := Report{Severity: Info, Stage: Environment, Message: "starting"}
	want := "INFO environment starting"
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestSinkHasErrorAndWarning(t *testing.T) {
	s := NewSink()
	if s.HasError() || s.HasWarning() {
		t.Fatalf("fresh sink should report neither error nor warning")
	}
	s.Warnf(Parser, source.Span{}, "unused %s", "label")
	if s.HasError() {
		t.Errorf("HasError() = true after only a warning")
	}
	if !s.HasWarning() {
		t.Errorf("HasWarning() = false, want true")
	}
	s.Errorf(Parser, source.Span{}, "unexpected token")
	if !s.HasError() {
		t.Errorf("HasError() = false after an Errorf push")
	}
	if len(s.Reports()) != 2 {
		t.Errorf("Reports() len = %d, want 2", len(s.Reports()))
	}
}

func TestSinkErrorsInStageFiltersBySeverityAndStage(t *testing.T) {
	s := NewSink()
	s.Errorf(Lexer, source.Span{}, "bad char")
	s.Warnf(Lexer, source.Span{}, "shadowed")
	s.Errorf(Parser, source.Span{}, "expected ';'")

	lexErrs := s.ErrorsInStage(Lexer)
	if len(lexErrs) != 1 {
		t.Fatalf("ErrorsInStage(Lexer) len = %d, want 1", len(lexErrs))
	}
	if lexErrs[0].Message != "bad char" {
		t.Errorf("ErrorsInStage(Lexer)[0].Message = %q, want %q", lexErrs[0].Message, "bad char")
	}
	if len(s.ErrorsInStage(Binder)) != 0 {
		t.Errorf("ErrorsInStage(Binder) should be empty")
	}
}

func TestSinkPreservesInsertionOrder(t *testing.T) {
	s := NewSink()
	s.Infof(Lexer, source.Span{}, "first")
	s.Infof(Parser, source.Span{}, "second")
	reports := s.Reports()
	if reports[0].Message != "first" || reports[1].Message != "second" {
		t.Errorf("Reports() out of insertion order: %+v", reports)
	}
}
