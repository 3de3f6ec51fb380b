// Package runnable implements SupDef's Runnable Evaluator (spec.md §4.9,
// component C9): positional substitution followed by a compile-then-run
// subprocess pipeline, selecting one of four output channels.
//
// Subprocess control is isolated behind the Compiler/Runner interfaces
// per spec.md §9 ("this makes the core testable with a stub compiler"),
// grounded on the teacher's OsStat/OsReadFile package-var indirection
// style (internal/lineMap/source.go) generalised to whole interfaces.
package runnable

import (
	"strconv"

	"github.com/keurnel/supdef/internal/pragma"
	"github.com/keurnel/supdef/internal/substitute"
	"github.com/keurnel/supdef/internal/supdeferrors"
)

// Compiler compiles body (already argument-substituted) in the given
// language, returning the artifact path and the compiler process's own
// exit code. A non-nil error means the compiler could not be invoked at
// all (e.g. the executable is missing); a non-zero exitCode with a nil
// error means the compiler ran and rejected the input, which trycompile
// is allowed to observe rather than treat as fatal.
type Compiler interface {
	Compile(body string, lang pragma.Language) (artifactPath string, exitCode int, err error)
}

// Runner executes a compiled artifact, capturing its standard streams
// and exit code.
type Runner interface {
	Run(artifactPath string) (stdout, stderr string, exitCode int, err error)
}

// Evaluate runs the full C9 pipeline for one Runnable pragma invocation
// and returns the replacement text for its op channel.
func Evaluate(macroName string, p *pragma.Pragma, args []string, compiler Compiler, runner Runner) (string, error) {
	if p.Language != pragma.LangC && p.Language != pragma.LangCPP {
		return "", &supdeferrors.UnsupportedLanguageError{Macro: macroName, Language: string(p.Language)}
	}

	body := substitute.Substitute(p.Body, args)

	artifact, exitCode, err := compiler.Compile(body, p.Language)
	if err != nil {
		return "", &supdeferrors.CompileFailedError{Macro: macroName, Err: err}
	}

	if exitCode != 0 {
		cleanupArtifact(compiler, artifact)
		if p.Op == pragma.OpTrycompile {
			return "", nil
		}
		return "", &supdeferrors.CompileFailedError{Macro: macroName, Err: errExitCode(exitCode)}
	}

	if p.Op == pragma.OpTrycompile {
		cleanupArtifact(compiler, artifact)
		return "1", nil
	}

	stdout, stderr, code, err := runner.Run(artifact)
	if err != nil {
		return "", &supdeferrors.ExecuteFailedError{Macro: macroName, Err: err}
	}

	switch p.Op {
	case pragma.OpStdout:
		return stdout, nil
	case pragma.OpStderr:
		return stderr, nil
	case pragma.OpRetcode:
		return strconv.Itoa(code), nil
	default:
		return "", &supdeferrors.UnsupportedLanguageError{Macro: macroName, Language: string(p.Language)}
	}
}

type errExitCode int

func (e errExitCode) Error() string {
	return "compiler exited with status " + strconv.Itoa(int(e))
}

// artifactCleaner is implemented by Compilers (such as Process) that
// need to release resources for an artifact that is never handed to a
// Runner (a successful trycompile, or a compile that exited non-zero).
type artifactCleaner interface {
	Cleanup(artifactPath string) error
}

func cleanupArtifact(compiler Compiler, artifactPath string) {
	if c, ok := compiler.(artifactCleaner); ok {
		_ = c.Cleanup(artifactPath)
	}
}
