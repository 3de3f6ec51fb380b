package runnable_test

import (
	"errors"
	"testing"

	"github.com/keurnel/supdef/internal/pragma"
	"github.com/keurnel/supdef/internal/runnable"
	"github.com/keurnel/supdef/internal/supdeferrors"
)

type stubCompiler struct {
	artifact string
	exitCode int
	err      error
	gotBody  string
	gotLang  pragma.Language
}

func (s *stubCompiler) Compile(body string, lang pragma.Language) (string, int, error) {
	s.gotBody = body
	s.gotLang = lang
	return s.artifact, s.exitCode, s.err
}

type stubRunner struct {
	stdout, stderr string
	exitCode       int
	err            error
	gotArtifact    string
}

func (s *stubRunner) Run(artifactPath string) (string, string, int, error) {
	s.gotArtifact = artifactPath
	return s.stdout, s.stderr, s.exitCode, s.err
}

func TestEvaluate_Stdout(t *testing.T) {
	p := &pragma.Pragma{Language: pragma.LangC, Op: pragma.OpStdout, Body: `puts("$1");`}
	compiler := &stubCompiler{artifact: "/tmp/a.out"}
	runner := &stubRunner{stdout: "hi\n"}

	got, err := runnable.Evaluate("ECHO", p, []string{"hi"}, compiler, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi\n" {
		t.Errorf("got %q", got)
	}
	if compiler.gotBody != `puts("hi");` {
		t.Errorf("expected substitution applied before compile, got %q", compiler.gotBody)
	}
}

func TestEvaluate_Stderr(t *testing.T) {
	p := &pragma.Pragma{Language: pragma.LangC, Op: pragma.OpStderr}
	compiler := &stubCompiler{artifact: "/tmp/a.out"}
	runner := &stubRunner{stderr: "oops\n"}

	got, err := runnable.Evaluate("M", p, nil, compiler, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "oops\n" {
		t.Errorf("got %q", got)
	}
}

func TestEvaluate_Retcode(t *testing.T) {
	p := &pragma.Pragma{Language: pragma.LangC, Op: pragma.OpRetcode}
	compiler := &stubCompiler{artifact: "/tmp/a.out"}
	runner := &stubRunner{exitCode: 7}

	got, err := runnable.Evaluate("M", p, nil, compiler, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "7" {
		t.Errorf("got %q", got)
	}
}

func TestEvaluate_TrycompileSuccess(t *testing.T) {
	p := &pragma.Pragma{Language: pragma.LangC, Op: pragma.OpTrycompile}
	compiler := &stubCompiler{artifact: "/tmp/a.out", exitCode: 0}
	runner := &stubRunner{}

	got, err := runnable.Evaluate("M", p, nil, compiler, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1" {
		t.Errorf("got %q, want \"1\"", got)
	}
	if runner.gotArtifact != "" {
		t.Error("expected trycompile to never invoke the runner")
	}
}

func TestEvaluate_TrycompileFailure(t *testing.T) {
	p := &pragma.Pragma{Language: pragma.LangC, Op: pragma.OpTrycompile}
	compiler := &stubCompiler{artifact: "/tmp/a.out", exitCode: 1}
	runner := &stubRunner{}

	got, err := runnable.Evaluate("M", p, nil, compiler, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestEvaluate_NonTrycompileCompileFailureIsFatal(t *testing.T) {
	p := &pragma.Pragma{Language: pragma.LangC, Op: pragma.OpStdout}
	compiler := &stubCompiler{artifact: "/tmp/a.out", exitCode: 1}
	runner := &stubRunner{}

	_, err := runnable.Evaluate("M", p, nil, compiler, runner)
	var compileErr *supdeferrors.CompileFailedError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected CompileFailedError, got %v", err)
	}
}

func TestEvaluate_ExecuteFailureIsFatal(t *testing.T) {
	p := &pragma.Pragma{Language: pragma.LangC, Op: pragma.OpStdout}
	compiler := &stubCompiler{artifact: "/tmp/a.out"}
	runner := &stubRunner{err: errors.New("exec format error")}

	_, err := runnable.Evaluate("M", p, nil, compiler, runner)
	var execErr *supdeferrors.ExecuteFailedError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecuteFailedError, got %v", err)
	}
}

func TestEvaluate_UnsupportedLanguage(t *testing.T) {
	p := &pragma.Pragma{Language: "rust", Op: pragma.OpStdout}
	_, err := runnable.Evaluate("M", p, nil, &stubCompiler{}, &stubRunner{})
	var langErr *supdeferrors.UnsupportedLanguageError
	if !errors.As(err, &langErr) {
		t.Fatalf("expected UnsupportedLanguageError, got %v", err)
	}
}
