// Package expander implements SupDef's Expander (spec.md §4.7, component
// C7): the per-invocation recursive expansion algorithm and the
// top-level fixed-point driver that repeats it until a full pass
// replaces nothing.
//
// Grounded on the teacher's v0/kasm/preProcessing/macros.go
// (PreProcessingReplaceMacroCalls), generalised from its single-pass,
// regex-driven %N replacement to spec.md's recursive, literal-aware
// invocation scanning and fixed-point re-scan loop.
package expander

import (
	"github.com/keurnel/supdef/internal/invocation"
	"github.com/keurnel/supdef/internal/pragma"
	"github.com/keurnel/supdef/internal/registry"
	"github.com/keurnel/supdef/internal/runnable"
	"github.com/keurnel/supdef/internal/substitute"
	"github.com/keurnel/supdef/internal/supdeferrors"
)

// Evaluator isolates the Runnable half of expansion (C9) so Expand can
// be exercised with a stub compiler/runner in tests.
type Evaluator struct {
	Compiler runnable.Compiler
	Runner   runnable.Runner
}

// Expand runs the fixed-point driver described in spec.md §4.7: repeated
// left-to-right passes over text, each splicing in every invocation's
// expansion result, until a pass replaces zero invocations.
func Expand(file, text string, reg *registry.Registry, eval *Evaluator) (string, error) {
	for {
		next, replacements, err := pass(file, text, reg, eval)
		if err != nil {
			return "", err
		}
		if replacements == 0 {
			return next, nil
		}
		text = next
	}
}

// pass performs one full left-to-right scan-and-replace stage.
func pass(file, text string, reg *registry.Registry, eval *Evaluator) (string, int, error) {
	cursor := 0
	count := 0

	for {
		raw, err := invocation.Next(file, text, reg.Has, cursor)
		if err != nil {
			return "", 0, err
		}
		if raw == nil {
			return text, count, nil
		}

		result, err := expandOne(file, raw.Name, text[raw.ArgStart:raw.ArgEnd], reg, eval)
		if err != nil {
			return "", 0, err
		}

		before := text[:raw.Start]
		after := text[raw.End:]
		text = before + result + after
		cursor = raw.Start + len(result)
		count++
	}
}

// expandOne resolves a single invocation: split its arguments, expand
// any inner invocations found in each argument, then substitute via the
// Define or Runnable pragma it names.
func expandOne(file, name, argText string, reg *registry.Registry, eval *Evaluator) (string, error) {
	p, ok := reg.Lookup(name)
	if !ok {
		// invocation.Next only surfaces names satisfying reg.Has, so this
		// indicates the registry changed between the scan and the lookup.
		return "", &supdeferrors.UnknownMacroError{Name: name}
	}

	args := invocation.SplitArgs(argText)
	for i, arg := range args {
		if len(arg) < 3 {
			// Too short to contain a macro call (shortest possible
			// invocation is a 1-char name plus "()" = 3 bytes).
			continue
		}
		expandedArg, err := Expand(file, arg, reg, eval)
		if err != nil {
			return "", err
		}
		args[i] = expandedArg
	}

	switch p.Kind {
	case pragma.Define:
		return substitute.Substitute(p.Body, args), nil
	case pragma.Runnable:
		return runnable.Evaluate(name, p, args, eval.Compiler, eval.Runner)
	default:
		return "", &supdeferrors.UnknownMacroError{Name: name}
	}
}
