// Package config builds the single immutable Configuration value that is
// threaded through every SupDef component, replacing the global mutable
// state (compiler path, compiler template, search paths, debug flag) the
// original tool kept as module-level variables (see spec.md §9).
package config

import (
	"fmt"
	"os"
	"strings"
)

// Default compiler command-line template and compiler path, matching the
// three-placeholder contract documented in spec.md §6. The original tool
// hard-coded a distribution-specific GCC invocation; SupDef instead points
// at a vendored toolchain path that the companion bootstrap tooling
// installs, overridable via --cc/--cc-cmdline.
const (
	DefaultCCCmdline = "#CC# -x none -O2 -ffreestanding -nostdlib #IN# -o #OUT#"
	DefaultCCPath    = "toolchain/install/bin/x86_64-elf-gcc"
)

// Placeholders required in any --cc-cmdline template.
const (
	PlaceholderCC  = "#CC#"
	PlaceholderIn  = "#IN#"
	PlaceholderOut = "#OUT#"
)

// Config is the immutable configuration threaded through the pipeline.
// Construct it exclusively through New.
type Config struct {
	// SearchPaths is the ordered list of -I/--include directories,
	// consulted in the order given on the command line.
	SearchPaths []string
	// CCPath is the compiler executable invoked by runnable macros.
	CCPath string
	// CCCmdline is the shell-splittable command-line template.
	CCCmdline string
	// Debug enables verbose tracing (-d/--debug).
	Debug bool
	// OutputPath is the destination file; empty means stdout.
	OutputPath string
}

// Params collects the raw, as-parsed CLI flag values that feed New.
type Params struct {
	SearchPaths []string
	CCPath      string
	CCCmdline   string
	Debug       bool
	OutputPath  string
}

// Confirm asks the operator whether to continue with a default value
// after a non-fatal configuration error, matching the original tool's
// _handle_error prompt-and-abort contract from spec.md §7.
type Confirm func(prompt string) bool

// StdinConfirm prompts on stderr and reads a y/N answer from stdin.
func StdinConfirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// New validates p and returns a ready-to-use Config. --cc-cmdline and --cc
// are validated and, on failure, the operator is asked (via confirm)
// whether to continue with the corresponding default; a "no" answer is
// reported as an error so the caller can exit 1 (spec.md §7's non-fatal
// path, refusal terminates with exit 1).
func New(p Params, confirm Confirm) (Config, error) {
	cfg := Config{
		SearchPaths: append([]string(nil), p.SearchPaths...),
		CCPath:      DefaultCCPath,
		CCCmdline:   DefaultCCCmdline,
		Debug:       p.Debug,
		OutputPath:  p.OutputPath,
	}

	if p.CCCmdline != "" {
		if err := ValidateCmdlineTemplate(p.CCCmdline); err != nil {
			if !confirm(fmt.Sprintf("%v; use the default command line instead?", err)) {
				return Config{}, fmt.Errorf("user aborted: %w", err)
			}
		} else {
			cfg.CCCmdline = p.CCCmdline
		}
	}

	if p.CCPath != "" {
		if _, err := os.Stat(p.CCPath); err != nil {
			if !confirm(fmt.Sprintf("specified compiler path %q does not exist; use the default instead?", p.CCPath)) {
				return Config{}, fmt.Errorf("user aborted: compiler path %q does not exist", p.CCPath)
			}
		} else {
			cfg.CCPath = p.CCPath
		}
	}

	return cfg, nil
}

// ValidateCmdlineTemplate reports an error naming the first placeholder
// missing from template, per spec.md §6 ("missing any placeholder is
// rejected at configuration time").
func ValidateCmdlineTemplate(template string) error {
	for _, ph := range []string{PlaceholderCC, PlaceholderIn, PlaceholderOut} {
		if !strings.Contains(template, ph) {
			return fmt.Errorf("compiler command line is missing placeholder %s", ph)
		}
	}
	return nil
}
