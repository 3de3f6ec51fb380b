// Package pipeline wires the nine SupDef components (C1-C9) into the
// single per-document operation the CLI drives: load the import tree,
// build the macro registry, and expand the root unit to a fixed point.
//
// Grounded on the teacher's cmd/cli/cmd/x86_64/assemble_file.go
// orchestration style (resolveFilePath/readSourceFile/preProcess, each
// step wrapped with %w error context).
package pipeline

import (
	"fmt"

	"github.com/keurnel/supdef/internal/config"
	"github.com/keurnel/supdef/internal/debugtrace"
	"github.com/keurnel/supdef/internal/expander"
	"github.com/keurnel/supdef/internal/registry"
	"github.com/keurnel/supdef/internal/runnable"
	"github.com/keurnel/supdef/internal/supdeflog"
	"github.com/keurnel/supdef/internal/unit"
)

// Run loads inputPath and its import tree, builds the macro registry
// across the whole tree, and returns the root unit's fully-expanded
// text (spec.md §2's "root unit's fully-expanded text is emitted").
func Run(cfg config.Config, inputPath string) (string, error) {
	supdeflog.Debugf("loading %s", inputPath)
	root, err := unit.Load(inputPath, cfg.SearchPaths)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", inputPath, err)
	}

	reg := registry.Build(root)
	supdeflog.Debugf("registered %d macro(s): %v", len(reg.Names()), reg.Names())

	eval := &expander.Evaluator{
		Compiler: runnable.NewProcess(cfg),
		Runner:   runnable.NewProcess(cfg),
	}

	var trace *debugtrace.Context
	if cfg.Debug {
		trace = debugtrace.New(root.Path)
		recordNormalise(trace, root)
	}

	out, err := expander.Expand(root.Path, root.Text, reg, eval)
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", inputPath, err)
	}

	if root.Tracker != nil {
		root.Tracker.Snapshot("expand", out)
	}

	if trace != nil {
		trace.SetStage("expand")
		trace.TraceChange(debugtrace.Loc(root.Path, 0), "macro expansion to fixed point", root.Text, out)
		emitTrace(trace)
	}

	return out, nil
}

// recordNormalise walks the whole import tree and, for every unit carrying
// a line tracker, compares its original on-disk text against the
// post-C1/C2 (backslash/comment/pragma) text, recording a trace entry only
// when the two differ — the same "before vs. after a stage" shape Run uses
// for its expand entry.
func recordNormalise(trace *debugtrace.Context, u *unit.InputUnit) {
	trace.SetStage("normalise+pragma-scan")
	if u.Tracker != nil {
		trace.TraceChange(debugtrace.Loc(u.Path, 0), "backslash-strip, comment-elision, pragma-scan", u.Tracker.Original(), u.Text)
	}
	for _, child := range u.Children {
		recordNormalise(trace, child)
	}
}

// emitTrace renders every recorded entry through the debug logger, so
// -d/--debug surfaces the full trace without the CLI layer having to know
// about debugtrace's internal entry shape.
func emitTrace(trace *debugtrace.Context) {
	for _, e := range trace.Entries() {
		supdeflog.Debugf("%s", e.String())
		if diff := e.Diff(); diff != "" {
			supdeflog.Debugf("%s", diff)
		}
	}
}
