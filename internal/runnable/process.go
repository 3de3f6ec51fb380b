package runnable

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/keurnel/supdef/internal/config"
	"github.com/keurnel/supdef/internal/pragma"
)

// Process is the production Compiler/Runner: it materialises a runnable
// macro's substituted body to a temporary input file, invokes the
// configured compiler command line, and executes the resulting
// artifact, per spec.md §4.9 steps 2-6.
type Process struct {
	CCPath          string
	CmdlineTemplate string
}

// NewProcess builds a Process from a resolved Config.
func NewProcess(cfg config.Config) *Process {
	return &Process{CCPath: cfg.CCPath, CmdlineTemplate: cfg.CCCmdline}
}

func sourceExt(lang pragma.Language) string {
	if lang == pragma.LangCPP {
		return ".cpp"
	}
	return ".c"
}

// Compile writes body to a fresh temporary file, builds the compiler
// invocation from the configured template, and runs it. The temporary
// input/output pair lives in its own directory so Run (or, when the
// artifact is never run, Cleanup) can release it in one step on every
// exit path.
func (p *Process) Compile(body string, lang pragma.Language) (artifactPath string, exitCode int, err error) {
	dir, err := os.MkdirTemp("", "supdef-runnable-")
	if err != nil {
		return "", 0, fmt.Errorf("creating temp directory: %w", err)
	}

	inFile := filepath.Join(dir, "input"+sourceExt(lang))
	if err := os.WriteFile(inFile, []byte(body), 0o600); err != nil {
		os.RemoveAll(dir)
		return "", 0, fmt.Errorf("writing temp input file: %w", err)
	}

	outFile := filepath.Join(dir, "artifact")

	argv, err := buildCmdline(p.CmdlineTemplate, p.CCPath, inFile, lang, outFile)
	if err != nil {
		os.RemoveAll(dir)
		return "", 0, err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return outFile, 0, nil
	}
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return outFile, exitErr.ExitCode(), nil
	}
	os.RemoveAll(dir)
	return "", 0, fmt.Errorf("invoking compiler %s: %w", p.CCPath, runErr)
}

// Run executes artifactPath, capturing its stdout, stderr, and exit
// code, then removes the temporary directory Compile created for it.
func (p *Process) Run(artifactPath string) (stdout, stderr string, exitCode int, err error) {
	defer os.RemoveAll(filepath.Dir(artifactPath))

	cmd := exec.Command(artifactPath)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	if runErr == nil {
		return outBuf.String(), errBuf.String(), 0, nil
	}
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return outBuf.String(), errBuf.String(), exitErr.ExitCode(), nil
	}
	return "", "", 0, fmt.Errorf("executing artifact %s: %w", artifactPath, runErr)
}

// Cleanup releases the temporary directory backing artifactPath when it
// is never handed to Run, which is the case for a successful trycompile
// evaluation and for a compile that exited non-zero.
func (p *Process) Cleanup(artifactPath string) error {
	return os.RemoveAll(filepath.Dir(artifactPath))
}

// buildCmdline substitutes the three placeholders in template and
// shell-splits the result into an argv slice. #IN# expands to
// "-x<lang> <infile> -x none", per spec.md §6.
func buildCmdline(template, ccPath, inFile string, lang pragma.Language, outFile string) ([]string, error) {
	inFragment := fmt.Sprintf("-x%s %s -x none", lang, inFile)

	replaced := strings.NewReplacer(
		config.PlaceholderCC, ccPath,
		config.PlaceholderIn, inFragment,
		config.PlaceholderOut, outFile,
	).Replace(template)

	return splitCmdline(replaced)
}

// splitCmdline tokenises a shell-splittable string: whitespace-separated
// fields, with single- or double-quoted spans kept as one field and
// their quotes stripped. Delegates to mattn/go-shellwords, the same
// shell-splitter monogon's bazel_cc_fix uses to break apart a recorded
// compiler invocation's command line (compilationDBEntry.Command) into
// argv, rather than a hand-rolled tokenizer.
func splitCmdline(s string) ([]string, error) {
	fields, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("compiler command line: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("compiler command line is empty")
	}
	return fields, nil
}
